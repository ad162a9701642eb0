package handlers

import (
	"net/http"

	"github.com/Dosada05/swiss-tournament/services"
)

type DashboardHandler struct {
	statsService services.StatsService
}

func NewDashboardHandler(s services.StatsService) *DashboardHandler {
	return &DashboardHandler{statsService: s}
}

// Stats godoc
// @Summary      Tournament totals
// @Tags         stats
// @Produce      json
// @Success      200  {object}  models.TournamentStats
// @Router       /stats [get]
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.GetStats(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, stats, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
