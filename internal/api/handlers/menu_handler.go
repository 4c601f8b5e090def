package handlers

import "net/http"

// MenuHandler serves the static mess-menu payload.
type MenuHandler struct{}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler() *MenuHandler {
	return &MenuHandler{}
}

// GetMessMenu returns the fixed menu of the day.
func (h *MenuHandler) GetMessMenu(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"breakfast": "Poha, Tea, Fruits",
		"lunch":     "Rice, Dal, Vegetables",
		"snacks":    "Samosa, Juice",
		"dinner":    "Chapati, Paneer, Salad",
	})
}
