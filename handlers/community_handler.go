package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vort-x/platform/middleware"
	"github.com/vort-x/platform/services"
)

type CommunityHandler struct {
	communityService services.CommunityService
}

func NewCommunityHandler(cs services.CommunityService) *CommunityHandler {
	return &CommunityHandler{communityService: cs}
}

// ListHandler handles GET /communities
func (h *CommunityHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	communities, err := h.communityService.ListCommunities(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"communities": communities}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreateHandler handles POST /communities
func (h *CommunityHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input services.CreateCommunityInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	community, err := h.communityService.CreateCommunity(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"community": community}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetByNameHandler handles GET /communities/{communityName}
func (h *CommunityHandler) GetByNameHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "communityName")

	community, err := h.communityService.GetCommunityByName(r.Context(), name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"community": community}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetMessagesHandler handles GET /communities/{communityName}/channels/{channelName}/messages
func (h *CommunityHandler) GetMessagesHandler(w http.ResponseWriter, r *http.Request) {
	communityName := chi.URLParam(r, "communityName")
	channelName := chi.URLParam(r, "channelName")

	messages, err := h.communityService.GetMessages(r.Context(), communityName, channelName)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"messages": messages}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// PostMessageHandler handles POST /communities/{communityName}/channels/{channelName}/messages
func (h *CommunityHandler) PostMessageHandler(w http.ResponseWriter, r *http.Request) {
	communityName := chi.URLParam(r, "communityName")
	channelName := chi.URLParam(r, "channelName")

	actor, err := middleware.UserFromContext(r.Context())
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	var input struct {
		Content string `json:"content"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	message, err := h.communityService.PostMessage(r.Context(), actor, communityName, channelName, input.Content)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"message": message}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
