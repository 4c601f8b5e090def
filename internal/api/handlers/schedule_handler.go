package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/campusconnect/portal-be/internal/models"
	"github.com/campusconnect/portal-be/internal/services"
)

// ScheduleHandler handles HTTP requests for scheduled announcements.
type ScheduleHandler struct {
	service services.ScheduleServiceProvider
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(service services.ScheduleServiceProvider) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// SchedulePayload is the create request body. Unknown fields are rejected.
type SchedulePayload struct {
	Name           string `json:"name"`
	CronExpression string `json:"cronExpression"`
	Message        string `json:"message"`
	IsActive       *bool  `json:"isActive"`
}

// Create handles registering a new scheduled announcement.
func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var payload SchedulePayload
	if err := dec.Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if payload.Name == "" || payload.CronExpression == "" || payload.Message == "" {
		respondError(w, http.StatusBadRequest, "name, cronExpression and message required")
		return
	}

	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	schedule, err := h.service.CreateSchedule(models.Schedule{
		Name:           payload.Name,
		CronExpression: payload.CronExpression,
		Message:        payload.Message,
		IsActive:       active,
	})
	if err != nil {
		if strings.Contains(err.Error(), "invalid cron expression") {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Error().Err(err).Msg("Failed to create schedule")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"schedule": schedule,
	})
}

// List handles retrieving all scheduled announcements.
func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.service.GetAllSchedules()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list schedules")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}
	respondJSON(w, http.StatusOK, schedules)
}
