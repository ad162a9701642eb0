package services

import (
	"context"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/repositories"
	"golang.org/x/sync/errgroup"
)

type StatsService interface {
	GetStats(ctx context.Context) (models.TournamentStats, error)
}

type statsService struct {
	playerRepo repositories.PlayerRepository
	matchRepo  repositories.MatchRepository
}

func NewStatsService(playerRepo repositories.PlayerRepository, matchRepo repositories.MatchRepository) StatsService {
	return &statsService{
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
	}
}

func (s *statsService) GetStats(ctx context.Context) (models.TournamentStats, error) {
	var stats models.TournamentStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.playerRepo.Count(gctx, nil)
		stats.PlayersTotal = count
		return err
	})
	g.Go(func() error {
		count, err := s.matchRepo.Count(gctx, nil)
		stats.MatchesTotal = count
		return err
	})
	if err := g.Wait(); err != nil {
		return models.TournamentStats{}, err
	}

	// Each full round produces players/2 matches.
	if stats.PlayersTotal > 0 {
		stats.RoundsCompleted = stats.MatchesTotal * 2 / stats.PlayersTotal
	}
	return stats, nil
}
