package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/storekit/commerce-api/internal/validation"
)

// ErrorResponse is the error envelope for every non-2xx response.
// Fields is only populated for validation failures.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in the standard envelope
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, ErrorResponse{Error: message}, logger)
}

// WriteRequestError writes the 400 response for a decode or validation
// failure reported by validation.DecodeAndValidate
func WriteRequestError(w http.ResponseWriter, err error, logger *slog.Logger) {
	if errors.Is(err, validation.ErrMalformedBody) {
		WriteError(w, http.StatusBadRequest, "Invalid request body", logger)
		return
	}
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:  "Validation failed",
		Fields: validation.Fields(err),
	}, logger)
}
