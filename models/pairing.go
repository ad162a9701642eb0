package models

// Pairing assigns two players to each other for the next round.
// Player 1 always holds the higher standings position.
type Pairing struct {
	Player1ID   int    `json:"id1"`
	Player1Name string `json:"name1"`
	Player2ID   int    `json:"id2"`
	Player2Name string `json:"name2"`
}
