package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/campusconnect/portal-be/internal/models"
	"github.com/campusconnect/portal-be/internal/services"
)

// RideHandler handles HTTP requests for the ride-share board.
type RideHandler struct {
	service  services.RideServiceProvider
	eventSvc services.EventServiceProvider
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(service services.RideServiceProvider, eventSvc services.EventServiceProvider) *RideHandler {
	return &RideHandler{service: service, eventSvc: eventSvc}
}

// RidePayload is the create request body. Unknown fields are rejected.
type RidePayload struct {
	Departure   string `json:"departure"`
	Destination string `json:"destination"`
	Time        string `json:"time"`
}

// Create handles posting a new ride-share offer.
func (h *RideHandler) Create(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var payload RidePayload
	if err := dec.Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	ride, err := h.service.Create(models.Ride{
		Departure:   payload.Departure,
		Destination: payload.Destination,
		Time:        payload.Time,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create ride")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	if err := h.eventSvc.Record("ride.created", "info", "Ride offered: "+ride.Departure+" to "+ride.Destination); err != nil {
		log.Error().Err(err).Msg("Failed to record ride event")
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"ride":    ride,
	})
}

// List handles retrieving all ride-share offers.
func (h *RideHandler) List(w http.ResponseWriter, r *http.Request) {
	rides, err := h.service.List()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list rides")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}
	respondJSON(w, http.StatusOK, rides)
}
