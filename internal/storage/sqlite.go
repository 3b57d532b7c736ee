// Package storage provides SQLite-based persistence for arena scores and run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	ArenaID   string
	Score     int
	Elapsed   float64 // Seconds from start to goal
	CreatedAt time.Time
}

// Run outcomes.
const (
	OutcomeWon       = "won"
	OutcomeLost      = "lost"
	OutcomeAbandoned = "abandoned"
)

// Run is one finished (or abandoned) attempt at an arena.
type Run struct {
	ID        int64
	RunID     string // UUID, generated by SaveRun when empty
	ArenaID   string
	Outcome   string
	Cause     string // Loss cause, empty otherwise
	Elapsed   float64
	Score     int
	Ticks     int64
	Digest    string // Final snapshot digest in hex
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			arena_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			elapsed_secs REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_arena_id ON scores(arena_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(arena_id, score DESC);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			arena_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			cause TEXT NOT NULL DEFAULT '',
			elapsed_secs REAL NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			digest TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_arena_id ON runs(arena_id);
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

// SaveScore records a winning score for the given arena.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(arenaID string, score int, elapsed float64) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (arena_id, score, elapsed_secs) VALUES (?, ?, ?)",
		arenaID, score, elapsed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given arena.
// Results are ordered by score descending, faster runs first on ties.
func (s *Store) TopScores(arenaID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, arena_id, score, elapsed_secs, created_at
		 FROM scores
		 WHERE arena_id = ?
		 ORDER BY score DESC, elapsed_secs ASC
		 LIMIT ?`,
		arenaID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.ArenaID, &e.Score, &e.Elapsed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given arena.
// Returns 0 if no scores exist.
func (s *Store) HighScore(arenaID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE arena_id = ?",
		arenaID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores and runs for the given arena.
func (s *Store) ClearScores(arenaID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE arena_id = ?", arenaID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs WHERE arena_id = ?", arenaID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// SaveRun records a run. A missing RunID is filled with a new UUID.
// Returns the stored run ID.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, arena_id, outcome, cause, elapsed_secs, score, ticks, digest)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.ArenaID,
		run.Outcome,
		run.Cause,
		run.Elapsed,
		run.Score,
		run.Ticks,
		run.Digest,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return run.RunID, nil
}

// RunByID retrieves a run by its UUID. Returns nil if it does not exist.
func (s *Store) RunByID(runID string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, run_id, arena_id, outcome, cause, elapsed_secs, score, ticks, digest, created_at
		 FROM runs
		 WHERE run_id = ?`,
		runID,
	)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &run, nil
}

// RecentRuns retrieves the most recent runs, newest first.
// An empty arenaID returns runs across all arenas.
func (s *Store) RecentRuns(arenaID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, arena_id, outcome, cause, elapsed_secs, score, ticks, digest, created_at
		 FROM runs
		 WHERE ? = '' OR arena_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		arenaID, arenaID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ArenaStats contains aggregated run statistics for an arena.
type ArenaStats struct {
	ArenaID     string
	Runs        int
	Wins        int
	Losses      int
	HighScore   int
	BestElapsed float64 // Fastest win in seconds, 0 without wins
	LastPlayed  time.Time
}

// GetArenaStats retrieves aggregated statistics for a specific arena.
func (s *Store) GetArenaStats(arenaID string) (*ArenaStats, error) {
	stats := &ArenaStats{ArenaID: arenaID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'lost' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(MIN(CASE WHEN outcome = 'won' THEN elapsed_secs END), 0),
		        MAX(created_at)
		 FROM runs WHERE arena_id = ?`,
		arenaID,
	).Scan(&stats.Runs, &stats.Wins, &stats.Losses, &stats.HighScore, &stats.BestElapsed, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get arena stats: %w", err)
	}
	stats.LastPlayed = parseTimestamp(lastPlayed)

	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var run Run
	var createdAt any
	err := row.Scan(
		&run.ID,
		&run.RunID,
		&run.ArenaID,
		&run.Outcome,
		&run.Cause,
		&run.Elapsed,
		&run.Score,
		&run.Ticks,
		&run.Digest,
		&createdAt,
	)
	if err != nil {
		return Run{}, err
	}
	run.CreatedAt = parseTimestamp(createdAt)
	return run, nil
}

// parseTimestamp handles both time.Time and string datetimes from the driver.
func parseTimestamp(v any) time.Time {
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
