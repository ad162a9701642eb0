package repositories

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/Dosada05/swiss-tournament/db"
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/swiss"
)

// Тесты ниже очищают таблицы players и matches, поэтому нужна отдельная база.
const testDatabaseEnv = "TEST_DATABASE_URL"

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv(testDatabaseEnv)
	if dsn == "" {
		t.Skipf("%s is not set, skipping Postgres integration test", testDatabaseEnv)
	}

	conn, err := db.Connect(dsn, 5*time.Second)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	ctx := context.Background()
	if err := db.ApplySchema(ctx, conn); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	if _, err := conn.ExecContext(ctx, `TRUNCATE players CASCADE`); err != nil {
		t.Fatalf("reset tables: %v", err)
	}
	return conn
}

func registerTestPlayers(t *testing.T, repo PlayerRepository, names ...string) []*models.Player {
	t.Helper()
	players := make([]*models.Player, 0, len(names))
	for _, name := range names {
		p := &models.Player{Name: name}
		if err := repo.Create(context.Background(), nil, p); err != nil {
			t.Fatalf("Create(%q): %v", name, err)
		}
		players = append(players, p)
	}
	return players
}

func TestPostgres_StandingsFromStoredHistory(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	playerRepo := NewPostgresPlayerRepository(conn)
	matchRepo := NewPostgresMatchRepository(conn)
	tx := NewPostgresTransactor(conn)

	p := registerTestPlayers(t, playerRepo, "A", "B", "C", "D", "Idle")
	results := [][2]int{{p[0].ID, p[1].ID}, {p[2].ID, p[3].ID}, {p[0].ID, p[2].ID}}
	for _, r := range results {
		if err := matchRepo.Create(ctx, nil, &models.Match{WinnerID: r[0], LoserID: r[1]}); err != nil {
			t.Fatalf("Create match %v: %v", r, err)
		}
	}

	var players []*models.Player
	var matches []*models.Match
	err := tx.WithinTx(ctx, SnapshotTxOptions(), func(ctx context.Context, exec SQLExecutor) error {
		var err error
		if players, err = playerRepo.List(ctx, exec); err != nil {
			return err
		}
		matches, err = matchRepo.List(ctx, exec)
		return err
	})
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	if len(players) != 5 {
		t.Fatalf("List returned %d players, want 5", len(players))
	}
	for i, pl := range players {
		if pl.ID != p[i].ID || pl.Name != p[i].Name || pl.CreatedAt.IsZero() {
			t.Errorf("player %d = %+v, want id %d name %q", i, pl, p[i].ID, p[i].Name)
		}
	}
	if len(matches) != len(results) {
		t.Fatalf("List returned %d matches, want %d", len(matches), len(results))
	}
	for i, m := range matches {
		if m.WinnerID != results[i][0] || m.LoserID != results[i][1] {
			t.Errorf("match %d = %+v, want %v", i, m, results[i])
		}
	}

	standings := swiss.ComputeStandings(players, matches)
	if len(standings) != 5 {
		t.Fatalf("expected a record for every player, got %d", len(standings))
	}
	wins, losses := 0, 0
	var idle *models.PlayerStanding
	for _, s := range standings {
		wins += s.Wins
		losses += s.Losses()
		if s.PlayerID == p[4].ID {
			idle = s
		}
	}
	if idle == nil || idle.Wins != 0 || idle.Matches != 0 {
		t.Errorf("player without matches must appear with an empty record, got %+v", idle)
	}
	if wins != len(results) || losses != len(results) {
		t.Errorf("wins = %d, losses = %d, want %d each", wins, losses, len(results))
	}
	if standings[0].PlayerID != p[0].ID || standings[0].Wins != 2 {
		t.Errorf("leader = %+v, want A with 2 wins", standings[0])
	}

	count, err := matchRepo.Count(ctx, nil)
	if err != nil || count != len(results) {
		t.Errorf("match Count = %d, %v; want %d", count, err, len(results))
	}
}

func TestPostgres_MatchConstraints(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	playerRepo := NewPostgresPlayerRepository(conn)
	matchRepo := NewPostgresMatchRepository(conn)

	p := registerTestPlayers(t, playerRepo, "A")

	err := matchRepo.Create(ctx, nil, &models.Match{WinnerID: p[0].ID, LoserID: p[0].ID + 1000})
	if !errors.Is(err, ErrMatchPlayerInvalid) {
		t.Errorf("unknown loser: expected ErrMatchPlayerInvalid, got %v", err)
	}
	err = matchRepo.Create(ctx, nil, &models.Match{WinnerID: p[0].ID, LoserID: p[0].ID})
	if !errors.Is(err, ErrMatchSelfPlay) {
		t.Errorf("self match: expected ErrMatchSelfPlay, got %v", err)
	}
	if _, err := playerRepo.GetByID(ctx, nil, p[0].ID+1000); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("GetByID unknown: expected ErrPlayerNotFound, got %v", err)
	}
}

func TestPostgres_DeleteAllCascadesAndKeepsIDs(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	playerRepo := NewPostgresPlayerRepository(conn)
	matchRepo := NewPostgresMatchRepository(conn)

	p := registerTestPlayers(t, playerRepo, "A", "B")
	if err := matchRepo.Create(ctx, nil, &models.Match{WinnerID: p[0].ID, LoserID: p[1].ID}); err != nil {
		t.Fatalf("Create match: %v", err)
	}

	if err := matchRepo.DeleteAll(ctx, nil); err != nil {
		t.Fatalf("match DeleteAll: %v", err)
	}
	if err := matchRepo.DeleteAll(ctx, nil); err != nil {
		t.Fatalf("second match DeleteAll: %v", err)
	}
	if count, _ := playerRepo.Count(ctx, nil); count != 2 {
		t.Errorf("players must survive a match reset, count = %d", count)
	}

	if err := matchRepo.Create(ctx, nil, &models.Match{WinnerID: p[1].ID, LoserID: p[0].ID}); err != nil {
		t.Fatalf("Create match: %v", err)
	}
	if err := playerRepo.DeleteAll(ctx, nil); err != nil {
		t.Fatalf("player DeleteAll: %v", err)
	}
	if count, _ := playerRepo.Count(ctx, nil); count != 0 {
		t.Errorf("player Count = %d after reset", count)
	}
	if count, _ := matchRepo.Count(ctx, nil); count != 0 {
		t.Errorf("matches must be removed with players, count = %d", count)
	}

	next := registerTestPlayers(t, playerRepo, "C")
	if next[0].ID <= p[1].ID {
		t.Errorf("id %d reused after reset (previous max %d)", next[0].ID, p[1].ID)
	}
}
