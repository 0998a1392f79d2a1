// internal/results/db.go
//
// SQLite persistence for simulation run history.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Applying the schema idempotently at open time.
//
// The history database is optional: commands only touch it when a DSN
// is configured, and a failure to record is a warning, not a fatal.

package results

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS sim_runs (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at  TEXT NOT NULL DEFAULT (datetime('now')),
    dict_id     TEXT NOT NULL,
    games       INTEGER NOT NULL,
    seed        INTEGER NOT NULL,
    max_turns   INTEGER NOT NULL,
    hard_mode   INTEGER NOT NULL DEFAULT 0,
    win_rate    REAL NOT NULL,
    avg_turns   REAL NOT NULL,
    histogram   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sim_runs_dict ON sim_runs(dict_id, created_at);
`

// Open opens (and creates if missing) the history database and applies
// the schema.
//
//   - Ensures the parent directory exists for relative DSNs.
//   - Configures busy timeout and WAL journaling.
func Open(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("results: mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("results: apply schema: %w", err)
	}
	return db, nil
}
