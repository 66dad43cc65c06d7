package notes

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"inkpad/internal/models"
	"inkpad/internal/storage"
	"inkpad/internal/validation"
)

// Service implements the notebook and note operations the app surface is
// built on. It owns the background-image directory: a user-picked image is
// copied in here under a generated name, and the notebook row carries a file
// URI pointing at the copy. The background kind (color, asset, file) is
// decided here, at write time, and carried as a tagged value from then on.
type Service struct {
	records        storage.RecordStorage
	backgroundsDir string
	logger         *slog.Logger
}

// NewService creates a new notes service.
func NewService(records storage.RecordStorage, backgroundsDir string, logger *slog.Logger) *Service {
	return &Service{
		records:        records,
		backgroundsDir: backgroundsDir,
		logger:         logger,
	}
}

// CreateNotebook validates the name and creates a notebook with the given
// background.
func (s *Service) CreateNotebook(ctx context.Context, name string, background models.Background) (*models.Notebook, error) {
	if err := validation.ValidateNotebookName(name); err != nil {
		return nil, err
	}

	nb, err := s.records.CreateNotebook(ctx, name, background)
	if err != nil {
		return nil, fmt.Errorf("failed to create notebook: %w", err)
	}

	s.logger.Info("notebook created", "id", nb.ID, "name", nb.Name)
	return nb, nil
}

// RenameNotebook validates and applies a new name, keeping the background.
func (s *Service) RenameNotebook(ctx context.Context, id int64, name string) error {
	if err := validation.ValidateNotebookName(name); err != nil {
		return err
	}

	nb, err := s.records.GetNotebook(ctx, id)
	if err != nil {
		return err
	}

	return s.records.UpdateNotebook(ctx, id, name, nb.Background)
}

// SetNotebookColor sets a hex color background.
func (s *Service) SetNotebookColor(ctx context.Context, id int64, hex string) error {
	if err := validation.ValidateHexColor(hex); err != nil {
		return err
	}

	return s.setBackground(ctx, id, models.ColorBackground(hex))
}

// SetNotebookAsset sets a bundled-asset background.
func (s *Service) SetNotebookAsset(ctx context.Context, id int64, assetID string) error {
	return s.setBackground(ctx, id, models.AssetBackground(assetID))
}

// SetNotebookImage copies the image at srcPath into the backgrounds
// directory under a generated unique name and points the notebook at the
// copy. The original file stays with the user; only the private copy is
// snapshotted into backups.
func (s *Service) SetNotebookImage(ctx context.Context, id int64, srcPath string) error {
	// Look the notebook up first so a bad id doesn't leave an orphan copy
	if _, err := s.records.GetNotebook(ctx, id); err != nil {
		return err
	}

	fileName := uuid.New().String() + filepath.Ext(srcPath)
	dstPath, err := s.copyIntoBackgrounds(srcPath, fileName)
	if err != nil {
		return err
	}

	if err := s.setBackground(ctx, id, models.FileBackground(dstPath)); err != nil {
		os.Remove(dstPath)
		return err
	}

	s.logger.Info("notebook background image imported", "id", id, "file", fileName)
	return nil
}

// DeleteNotebook removes a notebook; its notes become uncategorized.
func (s *Service) DeleteNotebook(ctx context.Context, id int64) error {
	if err := s.records.DeleteNotebook(ctx, id); err != nil {
		return err
	}

	s.logger.Info("notebook deleted", "id", id)
	return nil
}

// GetNotebook returns one notebook.
func (s *Service) GetNotebook(ctx context.Context, id int64) (*models.Notebook, error) {
	return s.records.GetNotebook(ctx, id)
}

// ListNotebooks returns every notebook.
func (s *Service) ListNotebooks(ctx context.Context) ([]*models.Notebook, error) {
	return s.records.ListNotebooks(ctx)
}

// CreateNote validates the title and creates a note, optionally inside a
// notebook.
func (s *Service) CreateNote(ctx context.Context, title, content string, notebookID *int64) (*models.Note, error) {
	if err := validation.ValidateNoteTitle(title); err != nil {
		return nil, err
	}

	if notebookID != nil {
		if _, err := s.records.GetNotebook(ctx, *notebookID); err != nil {
			return nil, err
		}
	}

	n, err := s.records.CreateNote(ctx, title, content, notebookID)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	s.logger.Info("note created", "id", n.ID, "title", n.Title)
	return n, nil
}

// EditNote replaces a note's title and content.
func (s *Service) EditNote(ctx context.Context, id int64, title, content string) error {
	if err := validation.ValidateNoteTitle(title); err != nil {
		return err
	}

	n, err := s.records.GetNote(ctx, id)
	if err != nil {
		return err
	}

	return s.records.UpdateNote(ctx, id, title, content, n.NotebookID)
}

// MoveNote moves a note into a notebook, or out of any notebook when
// notebookID is nil.
func (s *Service) MoveNote(ctx context.Context, id int64, notebookID *int64) error {
	if notebookID != nil {
		if _, err := s.records.GetNotebook(ctx, *notebookID); err != nil {
			return err
		}
	}

	n, err := s.records.GetNote(ctx, id)
	if err != nil {
		return err
	}

	return s.records.UpdateNote(ctx, id, n.Title, n.Content, notebookID)
}

// DeleteNote removes a single note.
func (s *Service) DeleteNote(ctx context.Context, id int64) error {
	return s.records.DeleteNote(ctx, id)
}

// GetNote returns one note.
func (s *Service) GetNote(ctx context.Context, id int64) (*models.Note, error) {
	return s.records.GetNote(ctx, id)
}

// ListNotes returns all notes, or the notes of one notebook when notebookID
// is set.
func (s *Service) ListNotes(ctx context.Context, notebookID *int64) ([]*models.Note, error) {
	if notebookID == nil {
		return s.records.ListNotes(ctx)
	}
	return s.records.ListNotesByNotebook(ctx, notebookID)
}

func (s *Service) setBackground(ctx context.Context, id int64, bg models.Background) error {
	nb, err := s.records.GetNotebook(ctx, id)
	if err != nil {
		return err
	}

	return s.records.UpdateNotebook(ctx, id, nb.Name, bg)
}

func (s *Service) copyIntoBackgrounds(srcPath, fileName string) (string, error) {
	if err := os.MkdirAll(s.backgroundsDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backgrounds directory: %w", err)
	}

	in, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer in.Close()

	dstPath := filepath.Join(s.backgroundsDir, fileName)
	out, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create background copy: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to copy image: %w", err)
	}

	if err := out.Close(); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to finish background copy: %w", err)
	}

	return dstPath, nil
}
