package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// HealthHandler provides health check endpoint
type HealthHandler struct {
	logger   *slog.Logger
	products int
}

// NewHealthHandler creates a new health handler reporting the loaded catalog size
func NewHealthHandler(logger *slog.Logger, products int) *HealthHandler {
	return &HealthHandler{
		logger:   logger,
		products: products,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status          string    `json:"status"`
	Timestamp       time.Time `json:"timestamp"`
	Version         string    `json:"version"`
	CatalogProducts int       `json:"catalogProducts"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:          "healthy",
		Timestamp:       time.Now().UTC(),
		Version:         Version,
		CatalogProducts: h.products,
	}

	WriteJSON(w, http.StatusOK, response, h.logger)
}
