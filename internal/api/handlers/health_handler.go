package handlers

import (
	"net/http"

	"github.com/campusconnect/portal-be/internal/monitoring"
)

// HealthHandler serves a host health snapshot.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Get returns current host stats.
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, monitoring.Snapshot())
}
