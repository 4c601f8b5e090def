package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/campusconnect/portal-be/internal/services"
	ws "github.com/campusconnect/portal-be/internal/websocket"
)

// AnnounceHandler fans announcements out to all connected websocket clients.
type AnnounceHandler struct {
	hub      *ws.Hub
	eventSvc services.EventServiceProvider
}

// NewAnnounceHandler creates a new AnnounceHandler.
func NewAnnounceHandler(hub *ws.Hub, eventSvc services.EventServiceProvider) *AnnounceHandler {
	return &AnnounceHandler{hub: hub, eventSvc: eventSvc}
}

// AnnouncePayload is the request body for an announcement.
type AnnouncePayload struct {
	Message string `json:"message"`
}

// Announce broadcasts the message to every connected client. The response is
// acknowledged immediately, independent of individual deliveries.
func (h *AnnounceHandler) Announce(w http.ResponseWriter, r *http.Request) {
	var payload AnnouncePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Message == "" {
		respondError(w, http.StatusBadRequest, "message is required")
		return
	}

	h.hub.Broadcast <- ws.NewAnnouncementMessage(payload.Message)

	if err := h.eventSvc.Record("announcement.sent", "info", payload.Message); err != nil {
		log.Error().Err(err).Msg("Failed to record announcement event")
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}
