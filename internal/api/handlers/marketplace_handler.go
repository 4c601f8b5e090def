package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/campusconnect/portal-be/internal/models"
	"github.com/campusconnect/portal-be/internal/services"
)

// MarketplaceHandler handles HTTP requests for the marketplace board.
type MarketplaceHandler struct {
	service  services.MarketplaceServiceProvider
	eventSvc services.EventServiceProvider
}

// NewMarketplaceHandler creates a new MarketplaceHandler.
func NewMarketplaceHandler(service services.MarketplaceServiceProvider, eventSvc services.EventServiceProvider) *MarketplaceHandler {
	return &MarketplaceHandler{service: service, eventSvc: eventSvc}
}

// MarketplacePayload is the create request body. Unknown fields are rejected.
type MarketplacePayload struct {
	ItemName    string  `json:"itemName"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Condition   string  `json:"condition"`
}

// Create handles posting a new marketplace listing.
func (h *MarketplaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var payload MarketplacePayload
	if err := dec.Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	item, err := h.service.Create(models.MarketplaceItem{
		ItemName:    payload.ItemName,
		Price:       payload.Price,
		Description: payload.Description,
		Condition:   payload.Condition,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create marketplace item")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	if err := h.eventSvc.Record("marketplace.created", "info", "Marketplace listing posted: "+item.ItemName); err != nil {
		log.Error().Err(err).Msg("Failed to record marketplace event")
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"item":    item,
	})
}

// List handles retrieving all marketplace listings.
func (h *MarketplaceHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list marketplace items")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}
	respondJSON(w, http.StatusOK, items)
}
