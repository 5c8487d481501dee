package handlers

import (
	"net/http"

	"github.com/vort-x/platform/middleware"
	"github.com/vort-x/platform/models"
	"github.com/vort-x/platform/services"
)

type SettingsHandler struct {
	userService services.UserService
}

func NewSettingsHandler(us services.UserService) *SettingsHandler {
	return &SettingsHandler{userService: us}
}

// GetThemeHandler handles GET /settings/theme
func (h *SettingsHandler) GetThemeHandler(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.UserFromContext(r.Context())
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	theme, err := h.userService.GetTheme(r.Context(), actor.ID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"theme": theme}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetThemeHandler handles PUT /settings/theme
func (h *SettingsHandler) SetThemeHandler(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.UserFromContext(r.Context())
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	var input struct {
		Theme models.ThemePreference `json:"theme"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.userService.SetTheme(r.Context(), actor.ID, input.Theme); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"theme": input.Theme}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
