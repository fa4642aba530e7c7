package handlers

import "clicktoeat/internal/models"

// Frame is the wire form of one stream value sent over a websocket.
type Frame struct {
	State   string             `json:"state"`
	Loading bool               `json:"loading"`
	Data    any                `json:"data,omitempty"`
	Status  int                `json:"status,omitempty"`
	Error   string             `json:"error,omitempty"`
	Errors  models.FieldErrors `json:"errors,omitempty"`
}

func NewFrame[T any](r models.Resource[T]) Frame {
	f := Frame{State: r.State.String(), Loading: r.Loading}
	switch r.State {
	case models.StateSuccess:
		f.Data = r.Data
	case models.StateFailure:
		f.Status = ErrorStatus(r.Err)
		f.Error = r.Err.Error()
		if fe, ok := models.AsFieldErrors(r.Err); ok {
			f.Errors = fe
		}
	}
	return f
}
