package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/swiss-tournament/services"
)

type MatchHandler struct {
	tournamentService services.TournamentService
}

func NewMatchHandler(ts services.TournamentService) *MatchHandler {
	return &MatchHandler{tournamentService: ts}
}

type reportMatchInput struct {
	WinnerID *int `json:"winner_id"`
	LoserID  *int `json:"loser_id"`
}

// Report godoc
// @Summary      Record a match result
// @Tags         matches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      reportMatchInput  true  "Winner and loser ids"
// @Success      201    {object}  models.Match
// @Failure      400    {object}  map[string]string
// @Failure      422    {object}  map[string]string
// @Router       /matches [post]
func (h *MatchHandler) Report(w http.ResponseWriter, r *http.Request) {
	var input reportMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.WinnerID == nil || input.LoserID == nil {
		badRequestResponse(w, r, errors.New("winner_id and loser_id are required"))
		return
	}

	match, err := h.tournamentService.ReportMatch(r.Context(), *input.WinnerID, *input.LoserID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteAll godoc
// @Summary      Clear the match history
// @Tags         matches
// @Security     BearerAuth
// @Success      204
// @Router       /matches [delete]
func (h *MatchHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.tournamentService.DeleteMatches(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
