// Package journal keeps a history of filter runs in a SQLite database.
package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// RunRecord describes one finished run
type RunRecord struct {
	ID        string        `json:"id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Files     []string      `json:"files"`
	OutputDir string        `json:"output_dir"`
	Prefix    string        `json:"prefix"`
	Mode      string        `json:"mode"`
	Integers  int           `json:"integers"`
	Floats    int           `json:"floats"`
	Strings   int           `json:"strings"`
	Warnings  int           `json:"warnings"`
}

// Store defines the interface for run history persistence
type Store interface {
	Record(ctx context.Context, run *RunRecord) error
	Recent(ctx context.Context, limit int) ([]*RunRecord, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// SQLiteConfig holds configuration for the SQLite store
type SQLiteConfig struct {
	Path string
}

// NewSQLiteStore opens or creates the run journal at cfg.Path
func NewSQLiteStore(cfg SQLiteConfig) (*SQLiteStore, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at DATETIME NOT NULL,
		duration_ms INTEGER NOT NULL,
		files TEXT NOT NULL,
		output_dir TEXT NOT NULL,
		prefix TEXT NOT NULL,
		mode TEXT NOT NULL,
		integers INTEGER NOT NULL,
		floats INTEGER NOT NULL,
		strings INTEGER NOT NULL,
		warnings INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores a run. A missing ID or start time is filled in.
func (s *SQLiteStore) Record(ctx context.Context, run *RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}

	filesJSON, err := json.Marshal(run.Files)
	if err != nil {
		return fmt.Errorf("failed to encode files: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, duration_ms, files, output_dir, prefix, mode, integers, floats, strings, warnings)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.StartedAt.UTC(), run.Duration.Milliseconds(), string(filesJSON), run.OutputDir, run.Prefix,
		run.Mode, run.Integers, run.Floats, run.Strings, run.Warnings)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	return nil
}

// Recent returns up to limit runs, newest first. A limit <= 0 returns all.
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]*RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, started_at, duration_ms, files, output_dir, prefix, mode, integers, floats, strings, warnings
		FROM runs ORDER BY started_at DESC`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []*RunRecord
	for rows.Next() {
		var run RunRecord
		var durationMs int64
		var filesJSON string

		if err := rows.Scan(&run.ID, &run.StartedAt, &durationMs, &filesJSON, &run.OutputDir, &run.Prefix,
			&run.Mode, &run.Integers, &run.Floats, &run.Strings, &run.Warnings); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		run.Duration = time.Duration(durationMs) * time.Millisecond
		if err := json.Unmarshal([]byte(filesJSON), &run.Files); err != nil {
			return nil, fmt.Errorf("failed to decode files of run %s: %w", run.ID, err)
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// Prune deletes runs older than the given age
func (s *SQLiteStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan).UTC()
	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE started_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune runs: %w", err)
	}
	return result.RowsAffected()
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
