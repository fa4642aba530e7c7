package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"clicktoeat/internal/models"
)

type errorResponse struct {
	Error  string             `json:"error"`
	Errors models.FieldErrors `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorStatus maps a use-case error to the status the gateway answers with.
// Upstream client errors keep their status, everything else from the backend
// becomes a bad gateway.
func ErrorStatus(err error) int {
	if _, ok := models.AsFieldErrors(err); ok {
		return http.StatusBadRequest
	}
	if de, ok := models.AsDefault(err); ok {
		if de.Status >= 400 && de.Status < 500 {
			return de.Status
		}
		return http.StatusBadGateway
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	status := ErrorStatus(err)
	logger := zerolog.Ctx(r.Context())
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		logger.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	resp := errorResponse{Error: err.Error()}
	if fe, ok := models.AsFieldErrors(err); ok {
		resp = errorResponse{Error: "validation failed", Errors: fe}
	} else if _, ok := models.AsDefault(err); !ok && status == http.StatusInternalServerError {
		resp.Error = http.StatusText(status)
	}
	writeJSON(w, status, resp)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &models.DefaultError{Status: http.StatusBadRequest, Message: "invalid request body"}
	}
	return nil
}
