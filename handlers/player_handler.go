package handlers

import (
	"net/http"

	"github.com/Dosada05/swiss-tournament/services"
)

type PlayerHandler struct {
	tournamentService services.TournamentService
}

func NewPlayerHandler(ts services.TournamentService) *PlayerHandler {
	return &PlayerHandler{tournamentService: ts}
}

type registerPlayerInput struct {
	Name string `json:"name"`
}

// Register godoc
// @Summary      Register a player
// @Tags         players
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      registerPlayerInput  true  "Player name"
// @Success      201    {object}  models.Player
// @Failure      400    {object}  map[string]string
// @Router       /players [post]
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input registerPlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.tournamentService.RegisterPlayer(r.Context(), input.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Count godoc
// @Summary      Number of registered players
// @Tags         players
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /players/count [get]
func (h *PlayerHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.tournamentService.CountPlayers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"count": count}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteAll godoc
// @Summary      Remove every player and every match
// @Tags         players
// @Security     BearerAuth
// @Success      204
// @Router       /players [delete]
func (h *PlayerHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.tournamentService.DeletePlayers(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
