package models

import (
	"errors"
	"net/http"
	"strings"
)

// FieldError is a validation failure attributable to one named input.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// FieldErrors is the error produced by client-side validation or by a 400
// response from the backend.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, f := range fe {
		parts = append(parts, f.Field+": "+f.Error)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// DefaultError is a message-only failure. Status carries the upstream HTTP
// status when the error came from a response, zero otherwise.
type DefaultError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func (e *DefaultError) Error() string {
	return e.Message
}

func NewDefaultError(message string) *DefaultError {
	return &DefaultError{Message: message}
}

var (
	ErrNotLoggedIn       = &DefaultError{Status: http.StatusUnauthorized, Message: "you must be logged in"}
	ErrUnreadableBody    = &DefaultError{Message: "unable to read response body."}
	ErrRestaurantsFailed = &DefaultError{Message: "unable to fetch latest restaurant data"}
	ErrConflictingVote   = &DefaultError{Message: "comment is both liked and disliked by the same user"}
	ErrStreamClosed      = errors.New("models: stream closed without a result")
)

// AsFieldErrors unwraps err into field errors.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// AsDefault unwraps err into a default error.
func AsDefault(err error) (*DefaultError, bool) {
	var de *DefaultError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
