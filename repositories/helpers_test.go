package repositories

import (
	"database/sql/driver"
	"errors"
	"net"
	"testing"

	"github.com/lib/pq"
)

func TestWrapStoreError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		wantUnavailable bool
	}{
		{name: "nil", err: nil, wantUnavailable: false},
		{name: "bad connection", err: driver.ErrBadConn, wantUnavailable: true},
		{name: "connection exception class", err: &pq.Error{Code: "08006"}, wantUnavailable: true},
		{name: "cannot connect now", err: &pq.Error{Code: "57P03"}, wantUnavailable: true},
		{name: "query canceled", err: &pq.Error{Code: "57014"}, wantUnavailable: false},
		{name: "foreign key violation", err: &pq.Error{Code: "23503"}, wantUnavailable: false},
		{name: "dial failure", err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, wantUnavailable: true},
		{name: "plain error", err: errors.New("boom"), wantUnavailable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapStoreError(tt.err)
			if tt.err == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if errors.Is(got, ErrStoreUnavailable) != tt.wantUnavailable {
				t.Errorf("wrapStoreError(%v) unavailable = %v, want %v", tt.err, !tt.wantUnavailable, tt.wantUnavailable)
			}
		})
	}
}

func TestHandleMatchError(t *testing.T) {
	r := &postgresMatchRepository{}

	if err := r.handleMatchError(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if err := r.handleMatchError(&pq.Error{Code: "23503", Constraint: "matches_loser_id_fkey"}); !errors.Is(err, ErrMatchPlayerInvalid) {
		t.Errorf("expected ErrMatchPlayerInvalid, got %v", err)
	}
	if err := r.handleMatchError(&pq.Error{Code: "23514", Constraint: "matches_distinct_players"}); !errors.Is(err, ErrMatchSelfPlay) {
		t.Errorf("expected ErrMatchSelfPlay, got %v", err)
	}
}
