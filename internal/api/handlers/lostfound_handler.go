package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/campusconnect/portal-be/internal/models"
	"github.com/campusconnect/portal-be/internal/services"
)

// LostFoundHandler handles HTTP requests for the lost-and-found board.
type LostFoundHandler struct {
	service  services.LostFoundServiceProvider
	eventSvc services.EventServiceProvider
}

// NewLostFoundHandler creates a new LostFoundHandler.
func NewLostFoundHandler(service services.LostFoundServiceProvider, eventSvc services.EventServiceProvider) *LostFoundHandler {
	return &LostFoundHandler{service: service, eventSvc: eventSvc}
}

// LostFoundPayload is the create request body. Unknown fields are rejected.
type LostFoundPayload struct {
	ItemName string `json:"itemName"`
	Status   string `json:"status"`
	Location string `json:"location"`
}

// Create handles posting a new lost-and-found report.
func (h *LostFoundHandler) Create(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var payload LostFoundPayload
	if err := dec.Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	item, err := h.service.Create(models.LostFoundItem{
		ItemName: payload.ItemName,
		Status:   payload.Status,
		Location: payload.Location,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create lost-and-found item")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	if err := h.eventSvc.Record("lostfound.created", "info", "Lost-and-found item posted: "+item.ItemName); err != nil {
		log.Error().Err(err).Msg("Failed to record lostfound event")
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"item":    item,
	})
}

// List handles retrieving all lost-and-found reports.
func (h *LostFoundHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list lost-and-found items")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}
	respondJSON(w, http.StatusOK, items)
}
