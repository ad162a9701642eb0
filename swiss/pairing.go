package swiss

import (
	"fmt"

	"github.com/Dosada05/swiss-tournament/models"
)

// Pair builds the next round from ranked standings.
// Even positions are zipped with odd positions, so rank 0 meets rank 1,
// rank 2 meets rank 3 and so on.
func Pair(ranked []*models.PlayerStanding) ([]*models.Pairing, error) {
	if len(ranked) < 2 {
		return nil, fmt.Errorf("%w (found %d)", ErrNotEnoughPlayers, len(ranked))
	}
	if len(ranked)%2 != 0 {
		return nil, fmt.Errorf("%w (found %d)", ErrOddPlayerCount, len(ranked))
	}

	left := make([]*models.PlayerStanding, 0, len(ranked)/2)
	right := make([]*models.PlayerStanding, 0, len(ranked)/2)
	for i, s := range ranked {
		if i%2 == 0 {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}

	pairings := make([]*models.Pairing, 0, len(left))
	for i := range left {
		pairings = append(pairings, &models.Pairing{
			Player1ID:   left[i].PlayerID,
			Player1Name: left[i].Name,
			Player2ID:   right[i].PlayerID,
			Player2Name: right[i].Name,
		})
	}
	return pairings, nil
}
