package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/storage"
	"github.com/google/uuid"
)

const standingsKeyPrefix = "standings/"

// StandingsExport is the document written to the bucket.
type StandingsExport struct {
	GeneratedAt  time.Time                `json:"generated_at"`
	Standings    []*models.PlayerStanding `json:"standings"`
	Pairings     []*models.Pairing        `json:"pairings,omitempty"`
	PairingError string                   `json:"pairing_error,omitempty"`
}

type PublishService interface {
	PublishStandings(ctx context.Context) (*storage.UploadResult, error)
}

type publishService struct {
	tournamentService TournamentService
	uploader          storage.FileUploader
	logger            *slog.Logger
	now               func() time.Time
}

// NewPublishService accepts a nil uploader; publishing then reports ErrPublishingDisabled.
func NewPublishService(tournamentService TournamentService, uploader storage.FileUploader, logger *slog.Logger) PublishService {
	return &publishService{
		tournamentService: tournamentService,
		uploader:          uploader,
		logger:            logger,
		now:               time.Now,
	}
}

func (s *publishService) PublishStandings(ctx context.Context) (*storage.UploadResult, error) {
	if s.uploader == nil {
		return nil, ErrPublishingDisabled
	}

	snapshot, err := s.tournamentService.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	export := StandingsExport{
		GeneratedAt: s.now().UTC(),
		Standings:   snapshot.Standings,
		Pairings:    snapshot.Pairings,
	}
	if snapshot.PairingErr != nil {
		export.PairingError = snapshot.PairingErr.Error()
	}

	body, err := json.Marshal(export)
	if err != nil {
		return nil, fmt.Errorf("failed to encode standings export: %w", err)
	}

	key := fmt.Sprintf("%s%s-%s.json", standingsKeyPrefix, export.GeneratedAt.Format("20060102T150405Z"), uuid.NewString())
	result, err := s.uploader.Upload(ctx, key, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to publish standings: %w", err)
	}

	s.logger.Info("standings published", slog.String("key", result.Key), slog.String("location", result.Location))
	return result, nil
}
