package notestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/models"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS notes (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

// SQLite implements Store backed by a SQLite database.
// Insertion order is preserved through rowid ordering.
type SQLite struct {
	conn *sql.DB
}

// OpenSQLite opens (or creates) the SQLite database and applies the schema.
func OpenSQLite(dsn string) (*SQLite, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("notestore: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("notestore: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("notestore: apply schema: %w", err)
	}
	return &SQLite{conn: conn}, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	return s.conn.Close()
}

// Create stores a new note with a generated id and creation timestamp.
func (s *SQLite) Create(ctx context.Context, title, content string) (*models.Note, error) {
	now := time.Now().UTC()
	note := models.Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO notes (id, title, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, note.ID, note.Title, note.Content, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("notestore: insert note: %w", err)
	}
	return &note, nil
}

// List returns all notes in insertion order.
func (s *SQLite) List(ctx context.Context) ([]models.Note, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, title, content, created_at, updated_at
		FROM notes ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("notestore: list notes: %w", err)
	}
	defer rows.Close()

	var out []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("notestore: scan note: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("notestore: iterate notes: %w", err)
	}
	return out, nil
}

// Get returns the note with the given id.
func (s *SQLite) Get(ctx context.Context, id string) (*models.Note, error) {
	var n models.Note
	err := s.conn.QueryRowContext(ctx, `
		SELECT id, title, content, created_at, updated_at
		FROM notes WHERE id = ?
	`, id).Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("notestore: get note: %w", err)
	}
	return &n, nil
}

// Update replaces title and/or content of an existing note.
func (s *SQLite) Update(ctx context.Context, id string, title, content *string) (*models.Note, error) {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("notestore: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	var n models.Note
	err = tx.QueryRowContext(ctx, `
		SELECT id, title, content, created_at, updated_at
		FROM notes WHERE id = ?
	`, id).Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("notestore: get note for update: %w", err)
	}

	if title != nil {
		n.Title = *title
	}
	if content != nil {
		n.Content = *content
	}
	n.UpdatedAt = time.Now().UTC()

	if _, err := tx.ExecContext(ctx, `
		UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ?
	`, n.Title, n.Content, n.UpdatedAt, n.ID); err != nil {
		return nil, fmt.Errorf("notestore: update note: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("notestore: commit update: %w", err)
	}
	return &n, nil
}

// Delete removes the note with the given id.
func (s *SQLite) Delete(ctx context.Context, id string) error {
	res, err := s.conn.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("notestore: delete note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("notestore: rows affected: %w", err)
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// Verify both backends satisfy Store at compile time.
var (
	_ Store = (*Memory)(nil)
	_ Store = (*SQLite)(nil)
)
