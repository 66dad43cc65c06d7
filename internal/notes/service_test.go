package notes

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkpad/internal/models"
	"inkpad/internal/storage"
	"inkpad/internal/storage/sqlite"
)

func setupTestService(t *testing.T) (*Service, string) {
	t.Helper()

	records, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, records.Close()) })

	backgroundsDir := filepath.Join(t.TempDir(), "notebook-backgrounds")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewService(records, backgroundsDir, logger), backgroundsDir
}

func TestService_CreateNotebook_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupTestService(t)

	nb, err := svc.CreateNotebook(ctx, "Work", models.ColorBackground("#1e88e5"))
	require.NoError(t, err)
	assert.Equal(t, "Work", nb.Name)

	_, err = svc.CreateNotebook(ctx, "   ", models.ColorBackground("#fff"))
	assert.Error(t, err)

	_, err = svc.CreateNotebook(ctx, strings.Repeat("a", 65), models.ColorBackground("#fff"))
	assert.Error(t, err)
}

func TestService_SetNotebookColor(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupTestService(t)

	nb, err := svc.CreateNotebook(ctx, "Work", models.AssetBackground("linen"))
	require.NoError(t, err)

	require.NoError(t, svc.SetNotebookColor(ctx, nb.ID, "#abcdef"))

	got, err := svc.GetNotebook(ctx, nb.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ColorBackground("#abcdef"), got.Background)

	assert.Error(t, svc.SetNotebookColor(ctx, nb.ID, "not-a-color"))
	assert.ErrorIs(t, svc.SetNotebookColor(ctx, 9999, "#fff"), storage.ErrNotebookNotFound)
}

func TestService_SetNotebookImage(t *testing.T) {
	ctx := context.Background()
	svc, backgroundsDir := setupTestService(t)

	nb, err := svc.CreateNotebook(ctx, "Travel", models.ColorBackground("#fff"))
	require.NoError(t, err)

	src := filepath.Join(t.TempDir(), "beach.png")
	require.NoError(t, os.WriteFile(src, []byte("pixels"), 0o644))

	require.NoError(t, svc.SetNotebookImage(ctx, nb.ID, src))

	got, err := svc.GetNotebook(ctx, nb.ID)
	require.NoError(t, err)
	require.Equal(t, models.BackgroundFile, got.Background.Kind)

	// The copy lives in the backgrounds dir under a generated name with the
	// original extension, and carries the original bytes
	copyPath := got.Background.FilePath()
	assert.Equal(t, backgroundsDir, filepath.Dir(copyPath))
	assert.Equal(t, ".png", filepath.Ext(copyPath))
	assert.NotEqual(t, "beach.png", filepath.Base(copyPath))

	data, err := os.ReadFile(copyPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("pixels"), data)

	// Unknown notebook leaves no orphan file behind
	err = svc.SetNotebookImage(ctx, 9999, src)
	assert.ErrorIs(t, err, storage.ErrNotebookNotFound)
	entries, err := os.ReadDir(backgroundsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestService_DeleteNotebook_UncategorizesNotes(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupTestService(t)

	nb, err := svc.CreateNotebook(ctx, "Work", models.ColorBackground("#fff"))
	require.NoError(t, err)
	n, err := svc.CreateNote(ctx, "standup", "agenda", &nb.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteNotebook(ctx, nb.ID))

	got, err := svc.GetNote(ctx, n.ID)
	require.NoError(t, err)
	assert.Nil(t, got.NotebookID)
}

func TestService_CreateNote_RejectsUnknownNotebook(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupTestService(t)

	missing := int64(9999)
	_, err := svc.CreateNote(ctx, "orphan", "", &missing)
	assert.ErrorIs(t, err, storage.ErrNotebookNotFound)

	_, err = svc.CreateNote(ctx, "", "", nil)
	assert.Error(t, err)
}

func TestService_EditAndMoveNote(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupTestService(t)

	nb, err := svc.CreateNotebook(ctx, "Work", models.ColorBackground("#fff"))
	require.NoError(t, err)
	n, err := svc.CreateNote(ctx, "draft", "v1", nil)
	require.NoError(t, err)

	require.NoError(t, svc.EditNote(ctx, n.ID, "draft", "v2"))
	require.NoError(t, svc.MoveNote(ctx, n.ID, &nb.ID))

	got, err := svc.GetNote(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Content)
	require.NotNil(t, got.NotebookID)
	assert.Equal(t, nb.ID, *got.NotebookID)

	// Moving out again uncategorizes
	require.NoError(t, svc.MoveNote(ctx, n.ID, nil))
	got, err = svc.GetNote(ctx, n.ID)
	require.NoError(t, err)
	assert.Nil(t, got.NotebookID)

	assert.ErrorIs(t, svc.MoveNote(ctx, n.ID, &[]int64{9999}[0]), storage.ErrNotebookNotFound)
}

func TestService_ListNotes(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupTestService(t)

	nb, err := svc.CreateNotebook(ctx, "Work", models.ColorBackground("#fff"))
	require.NoError(t, err)
	_, err = svc.CreateNote(ctx, "in", "", &nb.ID)
	require.NoError(t, err)
	_, err = svc.CreateNote(ctx, "out", "", nil)
	require.NoError(t, err)

	all, err := svc.ListNotes(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := svc.ListNotes(ctx, &nb.ID)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "in", scoped[0].Title)
}
