package handlers

import (
	"net/http"

	"github.com/vort-x/platform/services"
)

type SearchHandler struct {
	searchService services.SearchService
}

func NewSearchHandler(ss services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: ss}
}

// SearchHandler handles GET /search?q=
func (h *SearchHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	// A failing search collaborator is indistinguishable from an empty
	// match; the client only ever sees a result list.
	results := h.searchService.Search(r.Context(), query)

	if err := writeJSON(w, http.StatusOK, jsonResponse{"results": results}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
