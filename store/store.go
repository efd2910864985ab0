// Package store persists parsed résumés in SQLite so downstream tools
// can fetch them after the parse that produced them.
//
// Usage:
//
//	s, err := store.Open("vitae.db")
//	if err != nil {
//	    // handle error
//	}
//	defer s.Close()
//	id, err := s.SaveResume(ctx, resume)
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/tsawler/vitae/model"
)

// Schema for the resumes table. Open applies it automatically.
const Schema = `
CREATE TABLE IF NOT EXISTS resumes (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL DEFAULT '',
	email      TEXT NOT NULL DEFAULT '',
	data       TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_resumes_email   ON resumes(email);
CREATE INDEX IF NOT EXISTS idx_resumes_created ON resumes(created_at);
`

// Store wraps an SQLite database holding parsed résumés.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path, applying pragmas and
// schema. Parent directories are created as needed. Use ":memory:" for
// an ephemeral store.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("store: mkdir: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: %s: %w", p, err)
		}
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying database handle.
func (s *Store) DB() *sql.DB { return s.db }

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Record summarizes one stored résumé for listings.
type Record struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// SaveResume stores a parsed résumé and returns its generated id. The
// profile name and email are copied into their own columns for listing
// and lookup without unmarshaling the full document.
func (s *Store) SaveResume(ctx context.Context, resume *model.Resume) (string, error) {
	data, err := json.Marshal(resume)
	if err != nil {
		return "", fmt.Errorf("store: marshal resume: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO resumes (id, name, email, data, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, resume.Profile.Name, resume.Profile.Email, string(data),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("store: insert resume: %w", err)
	}
	return id, nil
}

// GetResume returns a stored résumé by id. Returns nil, nil when no row
// matches.
func (s *Store) GetResume(ctx context.Context, id string) (*model.Resume, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM resumes WHERE id = ?`, id,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var resume model.Resume
	if err := json.Unmarshal([]byte(data), &resume); err != nil {
		return nil, fmt.Errorf("store: unmarshal resume %s: %w", id, err)
	}
	return &resume, nil
}

// ListResumes returns summaries of all stored résumés, newest first.
func (s *Store) ListResumes(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, created_at FROM resumes ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Name, &r.Email, &r.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// DeleteResume removes a stored résumé. Deleting an unknown id is not an
// error; the bool reports whether a row was removed.
func (s *Store) DeleteResume(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM resumes WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
