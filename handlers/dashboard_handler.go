package handlers

import (
	"net/http"

	"github.com/vort-x/platform/middleware"
	"github.com/vort-x/platform/services"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(ds services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds}
}

// SummaryHandler handles GET /dashboard
func (h *DashboardHandler) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.UserFromContext(r.Context())
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	summary, err := h.dashboardService.Summary(r.Context(), actor)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"dashboard": summary}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
