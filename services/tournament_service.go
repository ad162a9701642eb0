package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/Dosada05/swiss-tournament/broadcast"
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/repositories"
	"github.com/Dosada05/swiss-tournament/swiss"
)

const maxPlayerNameLength = 255

// Notifier pushes live events to subscribers.
type Notifier interface {
	Broadcast(eventType string, payload interface{})
}

// OperationRecorder counts director operations.
type OperationRecorder interface {
	PlayerRegistered()
	MatchReported()
	PairingsGenerated()
	Reset(target string)
	OperationFailed(operation string)
}

// TournamentService is the director workflow: registration, results, standings and pairings.
type TournamentService interface {
	RegisterPlayer(ctx context.Context, name string) (*models.Player, error)
	CountPlayers(ctx context.Context) (int, error)
	DeletePlayers(ctx context.Context) error
	DeleteMatches(ctx context.Context) error
	ReportMatch(ctx context.Context, winnerID, loserID int) (*models.Match, error)
	Standings(ctx context.Context) ([]*models.PlayerStanding, error)
	SwissPairings(ctx context.Context) ([]*models.Pairing, error)
	// Snapshot reads standings and next-round pairings from one consistent view
	// without broadcasting or counting anything.
	Snapshot(ctx context.Context) (*RoundSnapshot, error)
}

// RoundSnapshot holds ranked standings and the pairings derived from them.
// PairingErr wraps ErrPairingPrecondition when the roster cannot be paired.
type RoundSnapshot struct {
	Standings  []*models.PlayerStanding
	Pairings   []*models.Pairing
	PairingErr error
}

type tournamentService struct {
	tx         repositories.Transactor
	playerRepo repositories.PlayerRepository
	matchRepo  repositories.MatchRepository
	notifier   Notifier
	recorder   OperationRecorder
	logger     *slog.Logger
}

func NewTournamentService(
	tx repositories.Transactor,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	notifier Notifier,
	recorder OperationRecorder,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		tx:         tx,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		notifier:   notifier,
		recorder:   recorder,
		logger:     logger,
	}
}

func (s *tournamentService) RegisterPlayer(ctx context.Context, name string) (*models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, ErrPlayerNameEmpty)
	}
	if utf8.RuneCountInString(name) > maxPlayerNameLength {
		return nil, fmt.Errorf("%w: player name must not exceed %d characters", ErrValidationFailed, maxPlayerNameLength)
	}

	player := &models.Player{Name: name}
	if err := s.playerRepo.Create(ctx, nil, player); err != nil {
		s.recorder.OperationFailed("register_player")
		if errors.Is(err, repositories.ErrPlayerNameInvalid) {
			return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
		}
		return nil, fmt.Errorf("failed to register player: %w", err)
	}

	s.recorder.PlayerRegistered()
	s.logger.Info("player registered", slog.Int("player_id", player.ID), slog.String("name", player.Name))
	s.notifier.Broadcast(broadcast.EventPlayerRegistered, player)
	return player, nil
}

func (s *tournamentService) CountPlayers(ctx context.Context) (int, error) {
	count, err := s.playerRepo.Count(ctx, nil)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *tournamentService) DeletePlayers(ctx context.Context) error {
	if err := s.playerRepo.DeleteAll(ctx, nil); err != nil {
		s.recorder.OperationFailed("delete_players")
		return err
	}
	s.recorder.Reset("players")
	s.logger.Info("all players and matches deleted")
	s.notifier.Broadcast(broadcast.EventRosterReset, nil)
	return nil
}

func (s *tournamentService) DeleteMatches(ctx context.Context) error {
	if err := s.matchRepo.DeleteAll(ctx, nil); err != nil {
		s.recorder.OperationFailed("delete_matches")
		return err
	}
	s.recorder.Reset("matches")
	s.logger.Info("all matches deleted")
	s.notifier.Broadcast(broadcast.EventMatchesReset, nil)
	return nil
}

// ReportMatch validates both players inside the same transaction that stores the result.
func (s *tournamentService) ReportMatch(ctx context.Context, winnerID, loserID int) (*models.Match, error) {
	if winnerID == loserID {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMatch, ErrSelfMatch)
	}

	match := &models.Match{WinnerID: winnerID, LoserID: loserID}
	err := s.tx.WithinTx(ctx, nil, func(ctx context.Context, exec repositories.SQLExecutor) error {
		for _, id := range []int{winnerID, loserID} {
			if _, err := s.playerRepo.GetByID(ctx, exec, id); err != nil {
				if errors.Is(err, repositories.ErrPlayerNotFound) {
					return fmt.Errorf("%w: %w (id %d)", ErrInvalidMatch, ErrPlayerNotFound, id)
				}
				return err
			}
		}

		if err := s.matchRepo.Create(ctx, exec, match); err != nil {
			switch {
			case errors.Is(err, repositories.ErrMatchPlayerInvalid):
				return fmt.Errorf("%w: %w", ErrInvalidMatch, ErrPlayerNotFound)
			case errors.Is(err, repositories.ErrMatchSelfPlay):
				return fmt.Errorf("%w: %w", ErrInvalidMatch, ErrSelfMatch)
			}
			return err
		}
		return nil
	})
	if err != nil {
		s.recorder.OperationFailed("report_match")
		return nil, err
	}

	s.recorder.MatchReported()
	s.logger.Info("match reported",
		slog.Int("match_id", match.ID),
		slog.Int("winner_id", winnerID),
		slog.Int("loser_id", loserID),
	)
	s.notifier.Broadcast(broadcast.EventMatchReported, match)

	standings, err := s.Standings(ctx)
	if err != nil {
		// Результат уже сохранён; не удалось лишь оповестить подписчиков.
		s.logger.Warn("failed to refresh standings after match", slog.Any("error", err))
		return match, nil
	}
	s.notifier.Broadcast(broadcast.EventStandingsUpdated, standings)
	return match, nil
}

func (s *tournamentService) Standings(ctx context.Context) ([]*models.PlayerStanding, error) {
	var standings []*models.PlayerStanding
	err := s.tx.WithinTx(ctx, repositories.SnapshotTxOptions(), func(ctx context.Context, exec repositories.SQLExecutor) error {
		var err error
		standings, err = s.rankedSnapshot(ctx, exec)
		return err
	})
	if err != nil {
		s.recorder.OperationFailed("standings")
		return nil, err
	}
	return standings, nil
}

// SwissPairings reads the snapshot and pairs it in one transaction, so concurrent
// results cannot shift the order between ranking and pairing.
func (s *tournamentService) SwissPairings(ctx context.Context) ([]*models.Pairing, error) {
	snapshot, err := s.Snapshot(ctx)
	if err == nil {
		err = snapshot.PairingErr
	}
	if err != nil {
		s.recorder.OperationFailed("swiss_pairings")
		return nil, err
	}

	s.recorder.PairingsGenerated()
	s.logger.Info("next round paired", slog.Int("pairings", len(snapshot.Pairings)))
	s.notifier.Broadcast(broadcast.EventPairingsUpdated, snapshot.Pairings)
	return snapshot.Pairings, nil
}

func (s *tournamentService) Snapshot(ctx context.Context) (*RoundSnapshot, error) {
	snapshot := &RoundSnapshot{}
	err := s.tx.WithinTx(ctx, repositories.SnapshotTxOptions(), func(ctx context.Context, exec repositories.SQLExecutor) error {
		standings, err := s.rankedSnapshot(ctx, exec)
		if err != nil {
			return err
		}
		snapshot.Standings = standings
		// Ошибка предусловия не откатывает чтение: таблица всё равно валидна.
		snapshot.Pairings, err = swiss.Pair(standings)
		if err != nil {
			snapshot.PairingErr = fmt.Errorf("%w: %w", ErrPairingPrecondition, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// rankedSnapshot counts wins and matches from the stored history.
func (s *tournamentService) rankedSnapshot(ctx context.Context, exec repositories.SQLExecutor) ([]*models.PlayerStanding, error) {
	players, err := s.playerRepo.List(ctx, exec)
	if err != nil {
		return nil, fmt.Errorf("failed to load standings snapshot: %w", err)
	}
	matches, err := s.matchRepo.List(ctx, exec)
	if err != nil {
		return nil, fmt.Errorf("failed to load standings snapshot: %w", err)
	}
	return swiss.ComputeStandings(players, matches), nil
}
