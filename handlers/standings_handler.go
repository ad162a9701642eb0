package handlers

import (
	"net/http"

	"github.com/Dosada05/swiss-tournament/services"
)

type StandingsHandler struct {
	tournamentService services.TournamentService
	publishService    services.PublishService
}

func NewStandingsHandler(ts services.TournamentService, ps services.PublishService) *StandingsHandler {
	return &StandingsHandler{
		tournamentService: ts,
		publishService:    ps,
	}
}

// Standings godoc
// @Summary      Current standings
// @Description  Ordered by wins, then fewer matches played, then player id.
// @Tags         standings
// @Produce      json
// @Success      200  {array}   models.PlayerStanding
// @Failure      503  {object}  map[string]string
// @Router       /standings [get]
func (h *StandingsHandler) Standings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.tournamentService.Standings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Pairings godoc
// @Summary      Pairings for the next round
// @Tags         standings
// @Produce      json
// @Success      200  {array}   models.Pairing
// @Failure      409  {object}  map[string]string
// @Router       /pairings [get]
func (h *StandingsHandler) Pairings(w http.ResponseWriter, r *http.Request) {
	pairings, err := h.tournamentService.SwissPairings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"pairings": pairings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Publish godoc
// @Summary      Export standings and pairings to object storage
// @Tags         standings
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  storage.UploadResult
// @Failure      501  {object}  map[string]string
// @Router       /standings/publish [post]
func (h *StandingsHandler) Publish(w http.ResponseWriter, r *http.Request) {
	result, err := h.publishService.PublishStandings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"export": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
