// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a SQLite log of conversions. Each run is appended to
// the conversions table; the latest successful input revision per converter
// and input path is tracked in conversion_status so batch runs can skip
// inputs that have not changed.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/braille-convert/pkg/types"
)

const (
	// DefaultDBPath is used when HistoryConfig.DBPath is empty.
	DefaultDBPath = ".braille-convert/history.db"

	defaultMaxResults = 20
)

// Store manages the history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the history database at cfg.DBPath and creates the
// schema if it does not exist.
func Open(cfg types.HistoryConfig) (*Store, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = DefaultDBPath
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			converter TEXT NOT NULL,
			input_path TEXT NOT NULL,
			output_path TEXT,
			input_size INTEGER,
			input_mod_time TEXT,
			lines INTEGER,
			pages INTEGER,
			ignored INTEGER,
			unknown INTEGER,
			status TEXT NOT NULL,
			error TEXT,
			converted_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_input ON conversions(converter, input_path)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_status ON conversions(status)`,
		`CREATE TABLE IF NOT EXISTS conversion_status (
			converter TEXT NOT NULL,
			input_path TEXT NOT NULL,
			input_size INTEGER NOT NULL,
			input_mod_time TEXT NOT NULL,
			PRIMARY KEY (converter, input_path)
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends c to the log. Successful conversions also update the
// input revision used by Unchanged.
func (s *Store) Record(ctx context.Context, c types.Conversion) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	convertedAt := c.ConvertedAt
	if convertedAt.IsZero() {
		convertedAt = time.Now().UTC()
	}
	input := filepath.Clean(c.InputPath)
	modTime := formatTime(c.InputModTime)

	_, err = tx.ExecContext(ctx,
		`INSERT INTO conversions (converter, input_path, output_path, input_size, input_mod_time,
			lines, pages, ignored, unknown, status, error, converted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Converter, input, c.OutputPath, c.InputSize, modTime,
		c.Lines, c.Pages, c.Ignored, c.Unknown, string(c.Status), c.Error, formatTime(convertedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting conversion: %w", err)
	}

	if c.Status == types.ConversionDone {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO conversion_status (converter, input_path, input_size, input_mod_time)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT(converter, input_path) DO UPDATE SET
				input_size=excluded.input_size, input_mod_time=excluded.input_mod_time`,
			c.Converter, input, c.InputSize, modTime,
		)
		if err != nil {
			return fmt.Errorf("updating conversion status: %w", err)
		}
	}

	return tx.Commit()
}

// Unchanged reports whether the last successful conversion of input by
// converter saw the same size and modification time.
func (s *Store) Unchanged(ctx context.Context, converter, input string, size int64, modTime time.Time) (bool, error) {
	var (
		storedSize    int64
		storedModTime string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT input_size, input_mod_time FROM conversion_status WHERE converter = ? AND input_path = ?`,
		converter, filepath.Clean(input),
	).Scan(&storedSize, &storedModTime)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying conversion status: %w", err)
	}
	return storedSize == size && storedModTime == formatTime(modTime), nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
