package storage

import (
	"context"

	"inkpad/internal/models"
)

// NotebookStorage defines the persistence contract for notebooks.
type NotebookStorage interface {
	// CreateNotebook inserts a new notebook; the store assigns the id and
	// timestamps and returns the stored row.
	CreateNotebook(ctx context.Context, name string, background models.Background) (*models.Notebook, error)

	// GetNotebook retrieves a notebook by id.
	// Returns ErrNotebookNotFound if no such row exists.
	GetNotebook(ctx context.Context, id int64) (*models.Notebook, error)

	// ListNotebooks returns every notebook ordered by creation time.
	ListNotebooks(ctx context.Context) ([]*models.Notebook, error)

	// UpdateNotebook replaces the mutable fields (name, background) of an
	// existing notebook and bumps updated_at.
	UpdateNotebook(ctx context.Context, id int64, name string, background models.Background) error

	// DeleteNotebook removes a notebook and nulls the notebook reference of
	// every note that pointed at it. Both statements run in one transaction;
	// notes themselves are never deleted here.
	DeleteNotebook(ctx context.Context, id int64) error

	// InsertNotebook inserts a row with an explicit id and explicit
	// timestamps, as found in a backup archive. Used by restore only.
	InsertNotebook(ctx context.Context, nb *models.Notebook) error

	// MergeNotebook updates name, background and updated_at of an existing
	// row from archive data, preserving the live created_at.
	MergeNotebook(ctx context.Context, nb *models.Notebook) error
}

// NoteStorage defines the persistence contract for notes.
type NoteStorage interface {
	// CreateNote inserts a new note; the store assigns the id and timestamps.
	CreateNote(ctx context.Context, title, content string, notebookID *int64) (*models.Note, error)

	// GetNote retrieves a note by id.
	// Returns ErrNoteNotFound if no such row exists.
	GetNote(ctx context.Context, id int64) (*models.Note, error)

	// ListNotes returns every note ordered by creation time.
	ListNotes(ctx context.Context) ([]*models.Note, error)

	// ListNotesByNotebook returns the notes of one notebook.
	// A nil notebookID selects uncategorized notes.
	ListNotesByNotebook(ctx context.Context, notebookID *int64) ([]*models.Note, error)

	// UpdateNote replaces title, content and notebook reference of an
	// existing note and bumps updated_at.
	UpdateNote(ctx context.Context, id int64, title, content string, notebookID *int64) error

	// DeleteNote removes a single note.
	DeleteNote(ctx context.Context, id int64) error

	// InsertNote inserts a row with explicit id and timestamps from a backup
	// archive. Used by restore only.
	InsertNote(ctx context.Context, n *models.Note) error

	// MergeNote updates title, content, notebook reference and updated_at of
	// an existing row from archive data, preserving the live created_at.
	MergeNote(ctx context.Context, n *models.Note) error
}

// RecordStorage is the combined contract over both record tables, as used by
// the backup engine.
type RecordStorage interface {
	NotebookStorage
	NoteStorage

	// ReplaceAll wipes both tables and inserts the given rows, keeping their
	// ids and timestamps, inside a single transaction. Either every row lands
	// or none do.
	ReplaceAll(ctx context.Context, notebooks []*models.Notebook, notes []*models.Note) error
}
