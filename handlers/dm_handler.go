package handlers

import (
	"net/http"

	"github.com/vort-x/platform/middleware"
	"github.com/vort-x/platform/services"
)

type DMHandler struct {
	dmService services.DMService
}

func NewDMHandler(ds services.DMService) *DMHandler {
	return &DMHandler{dmService: ds}
}

// ListHandler handles GET /dms
func (h *DMHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	conversations, err := h.dmService.ListConversations(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"conversations": conversations}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetHandler handles GET /dms/{conversationID}. Opening a conversation
// clears its unread counter.
func (h *DMHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "conversationID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.dmService.MarkRead(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	conversation, err := h.dmService.GetConversation(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"conversation": conversation}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SendMessageHandler handles POST /dms/{conversationID}/messages
func (h *DMHandler) SendMessageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "conversationID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

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

	message, err := h.dmService.SendMessage(r.Context(), actor, id, input.Content)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"message": message}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
