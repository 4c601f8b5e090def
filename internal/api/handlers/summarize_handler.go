package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/campusconnect/portal-be/internal/services"
)

// SummarizeHandler handles text summarization requests.
type SummarizeHandler struct {
	summarizer *services.Summarizer
}

// NewSummarizeHandler creates a new SummarizeHandler.
func NewSummarizeHandler(summarizer *services.Summarizer) *SummarizeHandler {
	return &SummarizeHandler{summarizer: summarizer}
}

// SummarizePayload is the request body for summarization.
type SummarizePayload struct {
	Text string `json:"text"`
}

// Summarize truncates the submitted text to the configured cutoff.
func (h *SummarizeHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var payload SummarizePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	summary, err := h.summarizer.Summarize(payload.Text)
	if err != nil {
		if errors.Is(err, services.ErrEmptyText) {
			respondError(w, http.StatusBadRequest, services.ErrEmptyText.Error())
			return
		}
		log.Error().Err(err).Msg("Failed to summarize text")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	if h.summarizer.Template {
		respondJSON(w, http.StatusOK, map[string]string{"result": summary.Result})
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"category": summary.Category,
		"priority": summary.Priority,
		"summary":  summary.Text,
	})
}
