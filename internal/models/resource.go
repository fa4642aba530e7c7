package models

// State discriminates a Resource.
type State int

const (
	StateLoading State = iota
	StateSuccess
	StateFailure
)

func (s State) String() string {
	switch s {
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	default:
		return "loading"
	}
}

// Resource is one value of a use-case stream: a loading indicator, a
// successful result or a failure.
type Resource[T any] struct {
	State   State
	Loading bool
	Data    T
	Err     error
}

func Loading[T any](loading bool) Resource[T] {
	return Resource[T]{State: StateLoading, Loading: loading}
}

func Success[T any](data T) Resource[T] {
	return Resource[T]{State: StateSuccess, Data: data}
}

func Failure[T any](err error) Resource[T] {
	return Resource[T]{State: StateFailure, Err: err}
}

// FailureWith is a failure that still carries the last confirmed data.
func FailureWith[T any](data T, err error) Resource[T] {
	return Resource[T]{State: StateFailure, Data: data, Err: err}
}

// Terminal reports whether r is a success or a failure.
func (r Resource[T]) Terminal() bool {
	return r.State != StateLoading
}

// Await drains ch and returns its terminal value. A stream that closes
// without one yields ErrStreamClosed.
func Await[T any](ch <-chan Resource[T]) (T, error) {
	var (
		last  Resource[T]
		found bool
	)
	for r := range ch {
		if r.Terminal() {
			last, found = r, true
		}
	}
	if !found {
		var zero T
		return zero, ErrStreamClosed
	}
	if last.State == StateFailure {
		return last.Data, last.Err
	}
	return last.Data, nil
}

// Collect drains ch and returns every value it produced.
func Collect[T any](ch <-chan Resource[T]) []Resource[T] {
	var out []Resource[T]
	for r := range ch {
		out = append(out, r)
	}
	return out
}
