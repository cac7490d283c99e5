package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// SQLiteBackend keeps the high score in a single-row table.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite creates or opens a SQLite database at the given path and runs
// migrations.
func OpenSQLite(dbPath string) (*SQLiteBackend, error) {
	if dbPath == "" {
		return nil, errors.New("storage: sqlite backend needs a path")
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	b := &SQLiteBackend{db: db}
	if err := b.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return b, nil
}

// migrate creates the database schema if it doesn't exist.
func (b *SQLiteBackend) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_score (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			score INTEGER NOT NULL CHECK (score >= 0),
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := b.db.Exec(schema)
	return err
}

// Read returns the stored score, or 0 if the row does not exist yet.
func (b *SQLiteBackend) Read() (int, error) {
	score, _, err := b.Record()
	return score, err
}

// Record returns the stored score and when it was last written.
// The time is zero if no score has been written.
func (b *SQLiteBackend) Record() (int, time.Time, error) {
	var score int
	var updatedAt any

	err := b.db.QueryRow("SELECT score, updated_at FROM high_score WHERE id = 1").Scan(&score, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, time.Time{}, nil
	}
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	return score, parseTime(updatedAt), nil
}

// Write upserts the single row.
func (b *SQLiteBackend) Write(score int) error {
	_, err := b.db.Exec(
		`INSERT INTO high_score (id, score, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET score = excluded.score, updated_at = CURRENT_TIMESTAMP`,
		score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (b *SQLiteBackend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

// parseTime handles both time.Time and string DATETIME values.
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

func init() {
	registry.Register("sqlite", "single-row SQLite table", func(path string) (registry.Backend, error) {
		return OpenSQLite(path)
	})
}
