package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/amishk599/prepmap/internal/model"
)

// SQLiteStore keeps the history of generated roadmaps in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures the
// roadmap_history table exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	createTable := `CREATE TABLE IF NOT EXISTS roadmap_history (
		id         TEXT PRIMARY KEY,
		company    TEXT NOT NULL,
		role       TEXT NOT NULL,
		difficulty TEXT NOT NULL,
		path       TEXT NOT NULL,
		created_at INTEGER NOT NULL
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating roadmap_history table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Record stores one generated roadmap. A missing ID or timestamp is filled in.
func (s *SQLiteStore) Record(entry model.HistoryEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := s.db.Exec(
		"INSERT INTO roadmap_history (id, company, role, difficulty, path, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		entry.ID, entry.Company, entry.Role, entry.Difficulty, entry.Path, entry.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("recording roadmap %s: %w", entry.Path, err)
	}
	return nil
}

// Latest returns the most recently recorded roadmap. ok is false when the
// history is empty.
func (s *SQLiteStore) Latest() (entry model.HistoryEntry, ok bool, err error) {
	row := s.db.QueryRow(
		"SELECT id, company, role, difficulty, path, created_at FROM roadmap_history ORDER BY created_at DESC, rowid DESC LIMIT 1",
	)
	entry, err = scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.HistoryEntry{}, false, nil
	}
	if err != nil {
		return model.HistoryEntry{}, false, fmt.Errorf("reading latest roadmap: %w", err)
	}
	return entry, true, nil
}

// List returns up to limit entries, newest first. limit <= 0 means all.
func (s *SQLiteStore) List(limit int) ([]model.HistoryEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.Query(
		"SELECT id, company, role, difficulty, path, created_at FROM roadmap_history ORDER BY created_at DESC, rowid DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing roadmaps: %w", err)
	}
	defer rows.Close()

	var out []model.HistoryEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning roadmap row: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Cleanup deletes entries recorded before now minus olderThan.
func (s *SQLiteStore) Cleanup(olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan).UnixNano()
	_, err := s.db.Exec("DELETE FROM roadmap_history WHERE created_at < ?", cutoff)
	if err != nil {
		return fmt.Errorf("cleaning up roadmaps older than %v: %w", olderThan, err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (model.HistoryEntry, error) {
	var (
		e       model.HistoryEntry
		created int64
	)
	if err := sc.Scan(&e.ID, &e.Company, &e.Role, &e.Difficulty, &e.Path, &created); err != nil {
		return model.HistoryEntry{}, err
	}
	e.CreatedAt = time.Unix(0, created)
	return e, nil
}
