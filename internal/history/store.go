package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Run is one recorded verify invocation.
type Run struct {
	ID        int64
	RunID     string
	StartedAt time.Time
	Window    int
	Threshold float64
	StuckOK   int
	StuckNG   int
	UnstuckOK int
	UnstuckNG int
	Accuracy  float64
}

// Store manages verify run persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// startedAtLayout keeps every fractional-second digit so the stored
// text sorts chronologically; RFC3339Nano drops trailing zeros and
// breaks lexicographic ordering across rows.
const startedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

const schema = `
CREATE TABLE IF NOT EXISTS verify_runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL UNIQUE,
    started_at TEXT NOT NULL,
    window_len INTEGER NOT NULL,
    threshold REAL NOT NULL,
    stuck_ok INTEGER NOT NULL,
    stuck_ng INTEGER NOT NULL,
    unstuck_ok INTEGER NOT NULL,
    unstuck_ng INTEGER NOT NULL,
    accuracy REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_verify_runs_started_at ON verify_runs(started_at);
`

// Open initializes or connects to the history database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record inserts one verify run and returns it with its identifiers
// populated.
func (s *Store) Record(ctx context.Context, run Run) (*Run, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO verify_runs (
            run_id, started_at, window_len, threshold,
            stuck_ok, stuck_ng, unstuck_ok, unstuck_ng, accuracy
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.StartedAt.UTC().Format(startedAtLayout),
		run.Window,
		run.Threshold,
		run.StuckOK,
		run.StuckNG,
		run.UnstuckOK,
		run.UnstuckNG,
		run.Accuracy,
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	run.ID = id
	return &run, nil
}

// Recent returns the most recent runs, newest first. A non-positive
// limit returns everything.
func (s *Store) Recent(ctx context.Context, limit int) ([]*Run, error) {
	query := `SELECT id, run_id, started_at, window_len, threshold,
        stuck_ok, stuck_ng, unstuck_ok, unstuck_ng, accuracy
        FROM verify_runs ORDER BY started_at DESC, id DESC`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.db.QueryContext(ctx, query+` LIMIT ?`, limit)
	} else {
		rows, err = s.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func scanRun(rows *sql.Rows) (*Run, error) {
	var (
		run        Run
		startedRaw string
	)
	if err := rows.Scan(
		&run.ID,
		&run.RunID,
		&startedRaw,
		&run.Window,
		&run.Threshold,
		&run.StuckOK,
		&run.StuckNG,
		&run.UnstuckOK,
		&run.UnstuckNG,
		&run.Accuracy,
	); err != nil {
		return nil, fmt.Errorf("scan run: %w", err)
	}
	started, err := time.Parse(startedAtLayout, startedRaw)
	if err != nil {
		return nil, fmt.Errorf("parse started_at %q: %w", startedRaw, err)
	}
	run.StartedAt = started
	return &run, nil
}

