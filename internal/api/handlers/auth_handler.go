package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/campusconnect/portal-be/internal/auth"
	"github.com/campusconnect/portal-be/internal/services"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	service  services.UserServiceProvider
	eventSvc services.EventServiceProvider
	tokens   *auth.Manager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserServiceProvider, eventSvc services.EventServiceProvider, tokens *auth.Manager) *AuthHandler {
	return &AuthHandler{service: service, eventSvc: eventSvc, tokens: tokens}
}

// CredentialsPayload defines the structure for register and login requests.
type CredentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles new user registration.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Username == "" || payload.Password == "" {
		respondError(w, http.StatusBadRequest, "username and password required")
		return
	}

	user, err := h.service.Register(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			respondError(w, http.StatusBadRequest, services.ErrUsernameTaken.Error())
			return
		}
		log.Error().Err(err).Str("username", payload.Username).Msg("Failed to register user")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	if err := h.eventSvc.Record("user.registered", "info", fmt.Sprintf("User '%s' registered.", user.Username)); err != nil {
		log.Error().Err(err).Msg("Failed to record registration event")
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "User registered successfully!",
	})
}

// Login handles user authentication and session token generation.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Username == "" || payload.Password == "" {
		respondError(w, http.StatusBadRequest, "username and password required")
		return
	}

	user, err := h.service.Authenticate(payload.Username, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			respondError(w, http.StatusUnauthorized, services.ErrUserNotFound.Error())
		case errors.Is(err, services.ErrWrongPassword):
			log.Warn().Str("username", payload.Username).Msg("Failed authentication attempt")
			respondError(w, http.StatusUnauthorized, services.ErrWrongPassword.Error())
		default:
			log.Error().Err(err).Str("username", payload.Username).Msg("Login failed")
			respondError(w, http.StatusInternalServerError, "server error")
		}
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to generate session token")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
	})
}
