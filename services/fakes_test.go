package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/repositories"
)

// memoryRoster - это мок-реализация репозиториев игроков и матчей для тестов.
type memoryRoster struct {
	mu           sync.Mutex
	players      []*models.Player
	matches      []*models.Match
	nextPlayerID int
	nextMatchID  int
	err          error // если задана, все операции возвращают её
	txCount      int
	lastTxOpts   *sql.TxOptions
}

func newMemoryRoster() *memoryRoster {
	return &memoryRoster{nextPlayerID: 1, nextMatchID: 1}
}

func (m *memoryRoster) WithinTx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context, exec repositories.SQLExecutor) error) error {
	m.mu.Lock()
	m.txCount++
	m.lastTxOpts = opts
	err := m.err
	m.mu.Unlock()
	if err != nil {
		return err
	}
	return fn(ctx, nil)
}

type memoryPlayerRepo struct{ *memoryRoster }
type memoryMatchRepo struct{ *memoryRoster }

func (r memoryPlayerRepo) Create(ctx context.Context, exec repositories.SQLExecutor, player *models.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	player.ID = r.nextPlayerID
	player.CreatedAt = time.Now()
	r.nextPlayerID++
	stored := *player
	r.players = append(r.players, &stored)
	return nil
}

func (r memoryPlayerRepo) GetByID(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, p := range r.players {
		if p.ID == id {
			found := *p
			return &found, nil
		}
	}
	return nil, repositories.ErrPlayerNotFound
}

func (r memoryPlayerRepo) List(ctx context.Context, exec repositories.SQLExecutor) ([]*models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return append([]*models.Player(nil), r.players...), nil
}

func (r memoryPlayerRepo) Count(ctx context.Context, exec repositories.SQLExecutor) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	return len(r.players), nil
}

func (r memoryPlayerRepo) DeleteAll(ctx context.Context, exec repositories.SQLExecutor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.players = nil
	r.matches = nil // каскад, как в схеме
	return nil
}

func (r memoryMatchRepo) Create(ctx context.Context, exec repositories.SQLExecutor, match *models.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	match.ID = r.nextMatchID
	match.CreatedAt = time.Now()
	r.nextMatchID++
	stored := *match
	r.matches = append(r.matches, &stored)
	return nil
}

func (r memoryMatchRepo) List(ctx context.Context, exec repositories.SQLExecutor) ([]*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return append([]*models.Match(nil), r.matches...), nil
}

func (r memoryMatchRepo) Count(ctx context.Context, exec repositories.SQLExecutor) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	return len(r.matches), nil
}

func (r memoryMatchRepo) DeleteAll(ctx context.Context, exec repositories.SQLExecutor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.matches = nil
	return nil
}

type recordedEvent struct {
	Type    string
	Payload interface{}
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (n *fakeNotifier) Broadcast(eventType string, payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, recordedEvent{Type: eventType, Payload: payload})
}

func (n *fakeNotifier) types() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.events))
	for _, e := range n.events {
		out = append(out, e.Type)
	}
	return out
}

type fakeRecorder struct {
	players, matches, pairings int
	resets                     map[string]int
	failures                   map[string]int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{resets: map[string]int{}, failures: map[string]int{}}
}

func (r *fakeRecorder) PlayerRegistered()                { r.players++ }
func (r *fakeRecorder) MatchReported()                   { r.matches++ }
func (r *fakeRecorder) PairingsGenerated()               { r.pairings++ }
func (r *fakeRecorder) Reset(target string)              { r.resets[target]++ }
func (r *fakeRecorder) OperationFailed(operation string) { r.failures[operation]++ }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceFixture struct {
	roster   *memoryRoster
	notifier *fakeNotifier
	recorder *fakeRecorder
	service  TournamentService
}

func newServiceFixture() *serviceFixture {
	roster := newMemoryRoster()
	notifier := &fakeNotifier{}
	recorder := newFakeRecorder()
	svc := NewTournamentService(
		roster,
		memoryPlayerRepo{roster},
		memoryMatchRepo{roster},
		notifier,
		recorder,
		discardLogger(),
	)
	return &serviceFixture{roster: roster, notifier: notifier, recorder: recorder, service: svc}
}
