package models

type TournamentStats struct {
	PlayersTotal    int `json:"players_total"`
	MatchesTotal    int `json:"matches_total"`
	RoundsCompleted int `json:"rounds_completed"`
}
