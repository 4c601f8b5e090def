package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/campusconnect/portal-be/internal/models"
	"github.com/campusconnect/portal-be/internal/services"
)

// ExchangeHandler handles HTTP requests for the exchange board.
type ExchangeHandler struct {
	service  services.ExchangeServiceProvider
	eventSvc services.EventServiceProvider
}

// NewExchangeHandler creates a new ExchangeHandler.
func NewExchangeHandler(service services.ExchangeServiceProvider, eventSvc services.EventServiceProvider) *ExchangeHandler {
	return &ExchangeHandler{service: service, eventSvc: eventSvc}
}

// ExchangePayload is the create request body. Unknown fields are rejected.
type ExchangePayload struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Create handles posting a new exchange post.
func (h *ExchangeHandler) Create(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var payload ExchangePayload
	if err := dec.Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	post, err := h.service.Create(models.ExchangePost{
		Title:       payload.Title,
		Type:        payload.Type,
		Description: payload.Description,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create exchange post")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	if err := h.eventSvc.Record("exchange.created", "info", "Exchange post created: "+post.Title); err != nil {
		log.Error().Err(err).Msg("Failed to record exchange event")
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"ex":      post,
	})
}

// List handles retrieving all exchange posts.
func (h *ExchangeHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.List()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list exchange posts")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}
	respondJSON(w, http.StatusOK, posts)
}
