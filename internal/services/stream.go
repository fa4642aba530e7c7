package services

import (
	"context"

	"clicktoeat/internal/models"
)

// streamBuffer covers the longest stream a use-case emits, so producers never
// block on a subscriber that stopped reading.
const streamBuffer = 3

// run streams fn: a loading value, then exactly one terminal value.
func run[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) <-chan models.Resource[T] {
	ch := make(chan models.Resource[T], streamBuffer)
	go func() {
		defer close(ch)
		if !send(ctx, ch, models.Loading[T](true)) {
			return
		}
		data, err := fn(ctx)
		if err != nil {
			send(ctx, ch, models.FailureWith(data, err))
			return
		}
		send(ctx, ch, models.Success(data))
	}()
	return ch
}

// failNow is a stream holding a single failure and no loading value.
func failNow[T any](err error) <-chan models.Resource[T] {
	ch := make(chan models.Resource[T], 1)
	ch <- models.Failure[T](err)
	close(ch)
	return ch
}

func send[T any](ctx context.Context, ch chan<- models.Resource[T], r models.Resource[T]) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case ch <- r:
		return true
	case <-ctx.Done():
		return false
	}
}
