// Package history records pronounced words in a SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS lookups (
	word          TEXT PRIMARY KEY,
	pronunciation TEXT NOT NULL,
	hits          INTEGER NOT NULL DEFAULT 1,
	first_seen    INTEGER NOT NULL,
	last_seen     INTEGER NOT NULL
)`

// Entry is a recorded word.
type Entry struct {
	Word          string
	Pronunciation string
	Hits          int
	FirstSeen     time.Time
	LastSeen      time.Time
}

// Store is a pronunciation history backed by SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Record stores a lookup of word. Repeated words bump their hit count.
func (s *Store) Record(ctx context.Context, word, pronunciation string) error {
	ts := s.now().UnixNano()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO lookups (word, pronunciation, hits, first_seen, last_seen)
		VALUES (?, ?, 1, ?, ?)
		ON CONFLICT(word) DO UPDATE SET
			pronunciation = excluded.pronunciation,
			hits = hits + 1,
			last_seen = excluded.last_seen
	`, word, pronunciation, ts, ts)
	if err != nil {
		return fmt.Errorf("recording %q: %w", word, err)
	}
	return nil
}

// Recent returns up to limit entries, most recently seen first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT word, pronunciation, hits, first_seen, last_seen
		FROM lookups
		ORDER BY last_seen DESC, word
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var first, last int64
		if err := rows.Scan(&e.Word, &e.Pronunciation, &e.Hits, &first, &last); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		e.FirstSeen = time.Unix(0, first)
		e.LastSeen = time.Unix(0, last)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Count returns the number of distinct words recorded.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM lookups").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting history: %w", err)
	}
	return n, nil
}

// Clear removes all entries.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM lookups"); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
