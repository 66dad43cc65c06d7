package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"inkpad/internal/models"
	"inkpad/internal/storage"
)

// CreateNote inserts a new note and returns the stored row with the id
// assigned by the database. notebookID may be nil for uncategorized notes.
func (s *Storage) CreateNote(ctx context.Context, title, content string, notebookID *int64) (*models.Note, error) {
	now := time.Now().UTC()

	query := `
		INSERT INTO notes (title, content, notebook_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		title,
		content,
		nullableID(notebookID),
		timeToText(now),
		timeToText(now),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert note: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get note id: %w", err)
	}

	return &models.Note{
		ID:         id,
		Title:      title,
		Content:    content,
		NotebookID: notebookID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// GetNote retrieves a single note by id.
// Returns storage.ErrNoteNotFound if the row doesn't exist.
func (s *Storage) GetNote(ctx context.Context, id int64) (*models.Note, error) {
	query := `
		SELECT id, title, content, notebook_id, created_at, updated_at
		FROM notes
		WHERE id = ?
	`

	n, err := scanNote(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return n, nil
}

// ListNotes returns all notes ordered by creation time.
func (s *Storage) ListNotes(ctx context.Context) ([]*models.Note, error) {
	query := `
		SELECT id, title, content, notebook_id, created_at, updated_at
		FROM notes
		ORDER BY created_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	return collectNotes(rows)
}

// ListNotesByNotebook returns the notes belonging to one notebook.
// A nil notebookID selects uncategorized notes.
func (s *Storage) ListNotesByNotebook(ctx context.Context, notebookID *int64) ([]*models.Note, error) {
	var (
		rows *sql.Rows
		err  error
	)

	if notebookID == nil {
		query := `
			SELECT id, title, content, notebook_id, created_at, updated_at
			FROM notes
			WHERE notebook_id IS NULL
			ORDER BY created_at ASC, id ASC
		`
		rows, err = s.db.QueryContext(ctx, query)
	} else {
		query := `
			SELECT id, title, content, notebook_id, created_at, updated_at
			FROM notes
			WHERE notebook_id = ?
			ORDER BY created_at ASC, id ASC
		`
		rows, err = s.db.QueryContext(ctx, query, *notebookID)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query notes by notebook: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	return collectNotes(rows)
}

// UpdateNote replaces the mutable fields of an existing note and bumps
// updated_at.
// Returns storage.ErrNoteNotFound if the row doesn't exist.
func (s *Storage) UpdateNote(ctx context.Context, id int64, title, content string, notebookID *int64) error {
	query := `
		UPDATE notes
		SET title = ?, content = ?, notebook_id = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		title,
		content,
		nullableID(notebookID),
		timeToText(time.Now().UTC()),
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}

	return requireRowAffected(result, storage.ErrNoteNotFound)
}

// DeleteNote removes a single note.
// Returns storage.ErrNoteNotFound if the row doesn't exist.
func (s *Storage) DeleteNote(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return requireRowAffected(result, storage.ErrNoteNotFound)
}

// InsertNote inserts a row with explicit id and timestamps, as carried in a
// backup archive. Used by the restore path.
func (s *Storage) InsertNote(ctx context.Context, n *models.Note) error {
	return insertNoteTx(ctx, s.db, n)
}

// MergeNote updates the mutable fields and updated_at of an existing row
// from archive data. The live created_at is deliberately left untouched.
func (s *Storage) MergeNote(ctx context.Context, n *models.Note) error {
	query := `
		UPDATE notes
		SET title = ?, content = ?, notebook_id = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		n.Title,
		n.Content,
		nullableID(n.NotebookID),
		timeToText(n.UpdatedAt),
		n.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to merge note: %w", err)
	}

	return requireRowAffected(result, storage.ErrNoteNotFound)
}

func insertNoteTx(ctx context.Context, db execer, n *models.Note) error {
	query := `
		INSERT INTO notes (id, title, content, notebook_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.ExecContext(ctx, query,
		n.ID,
		n.Title,
		n.Content,
		nullableID(n.NotebookID),
		timeToText(n.CreatedAt),
		timeToText(n.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert note %d: %w", n.ID, err)
	}

	return nil
}

func collectNotes(rows *sql.Rows) ([]*models.Note, error) {
	var notes []*models.Note

	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return notes, nil
}

func scanNote(row rowScanner) (*models.Note, error) {
	n := &models.Note{}
	var notebookID sql.NullInt64
	var createdAt, updatedAt string

	if err := row.Scan(&n.ID, &n.Title, &n.Content, &notebookID, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if notebookID.Valid {
		n.NotebookID = &notebookID.Int64
	}

	var err error
	if n.CreatedAt, err = textToTime(createdAt); err != nil {
		return nil, err
	}
	if n.UpdatedAt, err = textToTime(updatedAt); err != nil {
		return nil, err
	}

	return n, nil
}

// nullableID converts an optional notebook reference to its SQL form.
func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}
