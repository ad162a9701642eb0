package models

import "time"

// Match is an immutable result: exactly one winner and one loser, no draws.
type Match struct {
	ID        int       `json:"id" db:"id"`
	WinnerID  int       `json:"winner_id" db:"winner_id"`
	LoserID   int       `json:"loser_id" db:"loser_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
