package models

// PlayerStanding is derived from match history and never stored.
type PlayerStanding struct {
	PlayerID int    `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Wins     int    `json:"wins" db:"wins"`
	Matches  int    `json:"matches" db:"matches"`
}

// Losses is the number of matches the player did not win.
func (s PlayerStanding) Losses() int {
	return s.Matches - s.Wins
}
