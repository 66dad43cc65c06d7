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

// CreateNotebook inserts a new notebook and returns the stored row with the
// id assigned by the database.
func (s *Storage) CreateNotebook(ctx context.Context, name string, background models.Background) (*models.Notebook, error) {
	now := time.Now().UTC()

	query := `
		INSERT INTO notebooks (name, background, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		name,
		background.String(),
		timeToText(now),
		timeToText(now),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert notebook: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get notebook id: %w", err)
	}

	return &models.Notebook{
		ID:         id,
		Name:       name,
		Background: background,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// GetNotebook retrieves a single notebook by id.
// Returns storage.ErrNotebookNotFound if the row doesn't exist.
func (s *Storage) GetNotebook(ctx context.Context, id int64) (*models.Notebook, error) {
	query := `
		SELECT id, name, background, created_at, updated_at
		FROM notebooks
		WHERE id = ?
	`

	nb, err := scanNotebook(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotebookNotFound
		}
		return nil, fmt.Errorf("failed to get notebook: %w", err)
	}

	return nb, nil
}

// ListNotebooks returns all notebooks ordered by creation time.
// Returns an empty slice if the table is empty.
func (s *Storage) ListNotebooks(ctx context.Context) ([]*models.Notebook, error) {
	query := `
		SELECT id, name, background, created_at, updated_at
		FROM notebooks
		ORDER BY created_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query notebooks: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	var notebooks []*models.Notebook
	for rows.Next() {
		nb, err := scanNotebook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notebook: %w", err)
		}
		notebooks = append(notebooks, nb)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return notebooks, nil
}

// UpdateNotebook replaces the mutable fields of an existing notebook and
// bumps updated_at.
// Returns storage.ErrNotebookNotFound if the row doesn't exist.
func (s *Storage) UpdateNotebook(ctx context.Context, id int64, name string, background models.Background) error {
	query := `
		UPDATE notebooks
		SET name = ?, background = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		name,
		background.String(),
		timeToText(time.Now().UTC()),
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update notebook: %w", err)
	}

	return requireRowAffected(result, storage.ErrNotebookNotFound)
}

// DeleteNotebook removes a notebook and nulls the notebook reference of
// every note that pointed at it. Both statements run in one transaction so a
// crash can't leave notes pointing at a deleted notebook.
func (s *Storage) DeleteNotebook(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	result, err := tx.ExecContext(ctx, `DELETE FROM notebooks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete notebook: %w", err)
	}

	if err := requireRowAffected(result, storage.ErrNotebookNotFound); err != nil {
		return err
	}

	unlink := `
		UPDATE notes
		SET notebook_id = NULL, updated_at = ?
		WHERE notebook_id = ?
	`
	if _, err := tx.ExecContext(ctx, unlink, timeToText(time.Now().UTC()), id); err != nil {
		return fmt.Errorf("failed to unlink notes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit notebook deletion: %w", err)
	}

	return nil
}

// InsertNotebook inserts a row with an explicit id and explicit timestamps,
// as carried in a backup archive. Used by the restore path.
func (s *Storage) InsertNotebook(ctx context.Context, nb *models.Notebook) error {
	return insertNotebookTx(ctx, s.db, nb)
}

// MergeNotebook updates the mutable fields and updated_at of an existing row
// from archive data. The live created_at is deliberately left untouched.
func (s *Storage) MergeNotebook(ctx context.Context, nb *models.Notebook) error {
	query := `
		UPDATE notebooks
		SET name = ?, background = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		nb.Name,
		nb.Background.String(),
		timeToText(nb.UpdatedAt),
		nb.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to merge notebook: %w", err)
	}

	return requireRowAffected(result, storage.ErrNotebookNotFound)
}

// execer lets the insert helpers run against either the pooled handle or an
// open transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertNotebookTx(ctx context.Context, db execer, nb *models.Notebook) error {
	query := `
		INSERT INTO notebooks (id, name, background, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.ExecContext(ctx, query,
		nb.ID,
		nb.Name,
		nb.Background.String(),
		timeToText(nb.CreatedAt),
		timeToText(nb.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert notebook %d: %w", nb.ID, err)
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNotebook(row rowScanner) (*models.Notebook, error) {
	nb := &models.Notebook{}
	var background string
	var createdAt, updatedAt string

	if err := row.Scan(&nb.ID, &nb.Name, &background, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	nb.Background = models.ParseBackground(background)

	var err error
	if nb.CreatedAt, err = textToTime(createdAt); err != nil {
		return nil, err
	}
	if nb.UpdatedAt, err = textToTime(updatedAt); err != nil {
		return nil, err
	}

	return nb, nil
}

func requireRowAffected(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
