// Package storage keeps the history of finished runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only the summary of a run is stored once it ends; nothing here can resume
// a session.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is the summary of one finished session.
type Run struct {
	ID        int64
	RunID     string
	GameID    string
	Kills     int
	Level     int
	Duration  time.Duration // stored with second precision
	CreatedAt time.Time
}

// NewRun creates a run summary with a fresh run ID.
func NewRun(gameID string, kills, level int, duration time.Duration) Run {
	return Run{
		RunID:    uuid.NewString(),
		GameID:   gameID,
		Kills:    kills,
		Level:    level,
		Duration: duration,
	}
}

// Stats aggregates the history of one game.
type Stats struct {
	GameID     string
	Runs       int
	BestKills  int
	AvgKills   float64
	TotalTime  time.Duration
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			kills INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, kills DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run. A run without a RunID gets one.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}
	if _, err := uuid.Parse(r.RunID); err != nil {
		return 0, fmt.Errorf("storage: invalid run id %q: %w", r.RunID, err)
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (run_id, game_id, kills, level, duration_secs) VALUES (?, ?, ?, ?, ?)",
		r.RunID, r.GameID, r.Kills, r.Level, int64(r.Duration/time.Second),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best N runs for the given game.
// Results are ordered by kills, then level, then the earlier run.
func (s *Store) TopRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, game_id, kills, level, duration_secs, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY kills DESC, level DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			secs      int64
			createdAt any
		)
		if err := rows.Scan(&r.ID, &r.RunID, &r.GameID, &r.Kills, &r.Level, &secs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(secs) * time.Second
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a run by its run ID. Returns nil if it does not exist.
func (s *Store) RunByID(runID string) (*Run, error) {
	var (
		r         Run
		secs      int64
		createdAt any
	)
	err := s.db.QueryRow(
		`SELECT id, run_id, game_id, kills, level, duration_secs, created_at
		 FROM runs
		 WHERE run_id = ?`,
		runID,
	).Scan(&r.ID, &r.RunID, &r.GameID, &r.Kills, &r.Level, &secs, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	r.Duration = time.Duration(secs) * time.Second
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// BestKills returns the highest kill count for the given game.
// Returns 0 if no runs exist.
func (s *Store) BestKills(gameID string) (int, error) {
	var kills sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(kills) FROM runs WHERE game_id = ?",
		gameID,
	).Scan(&kills)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best kills: %w", err)
	}

	if !kills.Valid {
		return 0, nil
	}
	return int(kills.Int64), nil
}

// CountRuns returns how many runs were recorded for the given game.
func (s *Store) CountRuns(gameID string) (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs WHERE game_id = ?", gameID).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// GameStats aggregates all runs of the given game.
func (s *Store) GameStats(gameID string) (*Stats, error) {
	stats := &Stats{GameID: gameID}

	var (
		totalSecs  int64
		lastPlayed any
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(kills), 0), COALESCE(AVG(kills), 0),
		        COALESCE(SUM(duration_secs), 0), MAX(created_at)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Runs, &stats.BestKills, &stats.AvgKills, &totalSecs, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	stats.TotalTime = time.Duration(totalSecs) * time.Second
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// ClearRuns deletes all runs for the given game.
func (s *Store) ClearRuns(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and the SQLite text form of DATETIME.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
