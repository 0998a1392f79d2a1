// internal/results/store.go
//
// Row helpers for the sim_runs table.

package results

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/robalobadob/wordlebot/internal/sim"
)

// Run is one recorded simulation run.
type Run struct {
	ID        int64   `json:"id"`
	CreatedAt string  `json:"createdAt"`
	DictID    string  `json:"dictId"`
	Games     int     `json:"games"`
	Seed      int64   `json:"seed"`
	MaxTurns  int     `json:"maxTurns"`
	HardMode  bool    `json:"hardMode"`
	WinRate   float64 `json:"winRate"`
	AvgTurns  float64 `json:"avgTurns"`
	Histogram []int   `json:"histogram"`
}

// Store wraps the history database.
type Store struct{ db *sql.DB }

// NewStore constructs a Store over an opened database.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// InsertRun records a finished simulation.
func (s *Store) InsertRun(ctx context.Context, dictID string, seed int64, hardMode bool, rep sim.Report) error {
	hist, err := json.Marshal(rep.Histogram)
	if err != nil {
		return err
	}
	hard := 0
	if hardMode {
		hard = 1
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sim_runs(dict_id, games, seed, max_turns, hard_mode, win_rate, avg_turns, histogram)
		 VALUES(?,?,?,?,?,?,?,?)`,
		dictID, rep.Games, seed, rep.MaxTurns, hard, rep.WinRate, rep.AvgTurns, string(hist),
	)
	return err
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, dict_id, games, seed, max_turns, hard_mode, win_rate, avg_turns, histogram
		 FROM sim_runs
		 ORDER BY id DESC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Run, 0, limit)
	for rows.Next() {
		var r Run
		var hard int
		var hist string
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.DictID, &r.Games, &r.Seed,
			&r.MaxTurns, &hard, &r.WinRate, &r.AvgTurns, &hist); err != nil {
			return nil, err
		}
		r.HardMode = hard != 0
		if err := json.Unmarshal([]byte(hist), &r.Histogram); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
