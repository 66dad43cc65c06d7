package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkpad/internal/models"
	"inkpad/internal/storage"
)

func TestNoteStorage_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	nb, err := s.CreateNotebook(ctx, "Work", models.ColorBackground("#1e88e5"))
	require.NoError(t, err)

	tests := []struct {
		name       string
		title      string
		content    string
		notebookID *int64
	}{
		{
			name:       "note in a notebook",
			title:      "standup",
			content:    "yesterday/today/blockers",
			notebookID: &nb.ID,
		},
		{
			name:       "uncategorized note",
			title:      "scratch",
			content:    "",
			notebookID: nil,
		},
		{
			name:       "rich text content is opaque",
			title:      "formatted",
			content:    `{"ops":[{"insert":"hello\n"}]}`,
			notebookID: &nb.ID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := s.CreateNote(ctx, tt.title, tt.content, tt.notebookID)
			require.NoError(t, err)
			require.NotZero(t, created.ID)

			got, err := s.GetNote(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.title, got.Title)
			assert.Equal(t, tt.content, got.Content)
			assert.Equal(t, tt.notebookID, got.NotebookID)
		})
	}
}

func TestNoteStorage_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetNote(ctx, 9999)
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)
}

func TestNoteStorage_Update_Move(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	nb, err := s.CreateNotebook(ctx, "Work", models.ColorBackground("#1e88e5"))
	require.NoError(t, err)

	created, err := s.CreateNote(ctx, "draft", "v1", nil)
	require.NoError(t, err)

	// Edit and move into the notebook in one update
	require.NoError(t, s.UpdateNote(ctx, created.ID, "draft", "v2", &nb.ID))

	got, err := s.GetNote(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Content)
	require.NotNil(t, got.NotebookID)
	assert.Equal(t, nb.ID, *got.NotebookID)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)

	// Move back to uncategorized
	require.NoError(t, s.UpdateNote(ctx, created.ID, "draft", "v2", nil))
	got, err = s.GetNote(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.NotebookID)

	err = s.UpdateNote(ctx, 9999, "missing", "", nil)
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)
}

func TestNoteStorage_Delete(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	created, err := s.CreateNote(ctx, "temp", "", nil)
	require.NoError(t, err)

	require.NoError(t, s.DeleteNote(ctx, created.ID))

	_, err = s.GetNote(ctx, created.ID)
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)

	err = s.DeleteNote(ctx, created.ID)
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)
}

func TestNoteStorage_ListByNotebook(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	nb, err := s.CreateNotebook(ctx, "Work", models.ColorBackground("#1e88e5"))
	require.NoError(t, err)

	_, err = s.CreateNote(ctx, "in notebook", "", &nb.ID)
	require.NoError(t, err)
	_, err = s.CreateNote(ctx, "loose one", "", nil)
	require.NoError(t, err)
	_, err = s.CreateNote(ctx, "loose two", "", nil)
	require.NoError(t, err)

	inNotebook, err := s.ListNotesByNotebook(ctx, &nb.ID)
	require.NoError(t, err)
	require.Len(t, inNotebook, 1)
	assert.Equal(t, "in notebook", inNotebook[0].Title)

	uncategorized, err := s.ListNotesByNotebook(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, uncategorized, 2)

	all, err := s.ListNotes(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestNoteStorage_InsertPreservesIDAndTimestamps(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	notebookID := int64(7)
	n := &models.Note{
		ID:         5,
		Title:      "X",
		Content:    "payload",
		NotebookID: &notebookID,
		CreatedAt:  time.Date(2024, 3, 1, 10, 0, 0, 123456789, time.UTC),
		UpdatedAt:  time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC),
	}
	require.NoError(t, s.InsertNote(ctx, n))

	got, err := s.GetNote(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, n, got)
}

func TestNoteStorage_MergePreservesCreatedAt(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	live, err := s.CreateNote(ctx, "old", "old body", nil)
	require.NoError(t, err)

	archived := &models.Note{
		ID:        live.ID,
		Title:     "new",
		Content:   "new body",
		CreatedAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.MergeNote(ctx, archived))

	got, err := s.GetNote(ctx, live.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "new body", got.Content)
	assert.Equal(t, live.CreatedAt, got.CreatedAt)
	assert.Equal(t, archived.UpdatedAt, got.UpdatedAt)
}
