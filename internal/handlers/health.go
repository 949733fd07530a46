package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

// version is stamped into every health response; bump on release
const version = "0.2.0"

// HealthHandler provides the health check endpoint
type HealthHandler struct {
	storage string
	logger  *slog.Logger
}

// NewHealthHandler creates a health handler reporting the configured
// storage backend
func NewHealthHandler(storage string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		storage: storage,
		logger:  logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Storage   string    `json:"storage"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Storage:   h.storage,
		Version:   version,
		Timestamp: time.Now().UTC(),
	}, h.logger)
}
