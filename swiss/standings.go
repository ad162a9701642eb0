package swiss

import (
	"sort"

	"github.com/Dosada05/swiss-tournament/models"
)

// ComputeStandings derives one record per player from the match history.
// Players without matches are still present with zero wins and zero matches.
// Matches that reference unknown players are ignored.
// The result is ranked with RankStandings.
func ComputeStandings(players []*models.Player, matches []*models.Match) []*models.PlayerStanding {
	byID := make(map[int]*models.PlayerStanding, len(players))
	standings := make([]*models.PlayerStanding, 0, len(players))

	for _, p := range players {
		if _, seen := byID[p.ID]; seen {
			continue
		}
		s := &models.PlayerStanding{PlayerID: p.ID, Name: p.Name}
		byID[p.ID] = s
		standings = append(standings, s)
	}

	for _, m := range matches {
		if winner, ok := byID[m.WinnerID]; ok {
			winner.Wins++
			winner.Matches++
		}
		if loser, ok := byID[m.LoserID]; ok {
			loser.Matches++
		}
	}

	RankStandings(standings)
	return standings
}

// RankStandings sorts standings in place.
// Order: wins DESC, matches played ASC, player id ASC.
func RankStandings(standings []*models.PlayerStanding) {
	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Matches != b.Matches {
			return a.Matches < b.Matches
		}
		return a.PlayerID < b.PlayerID
	})
}
