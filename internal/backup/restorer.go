package backup

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"inkpad/internal/storage"
)

// Strategy governs what happens when a restored record's id already exists
// in the live store.
type Strategy string

const (
	// StrategyOverwrite wipes both record tables and inserts exactly the
	// archive's records. Table-level replace, not row-level upsert.
	StrategyOverwrite Strategy = "overwrite"

	// StrategyMerge updates the mutable fields and updated_at of conflicting
	// rows from the archive while preserving the live created_at; archive
	// records with unknown ids are inserted.
	StrategyMerge Strategy = "merge"

	// StrategySkip inserts archive records with unknown ids and leaves
	// conflicting rows completely untouched.
	StrategySkip Strategy = "skip"
)

// DefaultStrategy is used when the caller passes an empty strategy.
const DefaultStrategy = StrategyOverwrite

// ParseStrategy validates a strategy name from user input.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyOverwrite, StrategyMerge, StrategySkip:
		return Strategy(s), nil
	case "":
		return DefaultStrategy, nil
	default:
		return "", fmt.Errorf("unknown restore strategy %q", s)
	}
}

// Report summarizes what a restore changed in the record tables. Config and
// attachment writes are unconditional and not counted.
type Report struct {
	NotebooksAdded   int `json:"notebooksAdded"`
	NotebooksUpdated int `json:"notebooksUpdated"`
	NotesAdded       int `json:"notesAdded"`
	NotesUpdated     int `json:"notesUpdated"`
}

// Restorer reconciles a previously imported archive document into the live
// store and filesystem.
//
// Phases run in a fixed order: parse, config, attachments, notebooks, notes.
// Notebooks go first so restored notes can reference them, although no
// referential check is performed. A failure aborts the remaining work; under
// merge and skip, rows already applied in the same call are not rolled back,
// so callers must surface a failed restore as having left partial state.
type Restorer struct {
	records storage.RecordStorage
	config  storage.ConfigStorage

	// attachmentsDir is the live backgrounds directory that archive images
	// get written into.
	attachmentsDir string

	logger *slog.Logger
}

// NewRestorer creates a new archive restorer.
func NewRestorer(records storage.RecordStorage, config storage.ConfigStorage, attachmentsDir string, logger *slog.Logger) *Restorer {
	return &Restorer{
		records:        records,
		config:         config,
		attachmentsDir: attachmentsDir,
		logger:         logger,
	}
}

// RestoreBackup reads the archive at path and applies it under the given
// strategy, returning per-table counts of inserted and updated records.
//
// The document is parsed and validated before anything is touched: a
// malformed archive fails with ErrCorruptArchive and has no side effects.
// Config restoration always overwrites, independent of strategy —
// configuration has no natural merge notion. Attachment files are always
// rewritten, overwriting same-named files, which makes restoring the same
// archive twice idempotent for the backgrounds directory.
func (r *Restorer) RestoreBackup(ctx context.Context, path string, strategy Strategy) (*Report, error) {
	if strategy == "" {
		strategy = DefaultStrategy
	}
	if _, err := ParseStrategy(string(strategy)); err != nil {
		return nil, err
	}

	r.logger.Info("starting restore", "path", path, "strategy", string(strategy))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapIO(err)
	}

	doc, err := parseDocument(data)
	if err != nil {
		return nil, err
	}

	if err := r.restoreConfig(ctx, doc); err != nil {
		return nil, err
	}

	if err := r.restoreAttachments(doc); err != nil {
		return nil, err
	}

	report, err := r.restoreRecords(ctx, doc, strategy)
	if err != nil {
		return nil, err
	}

	r.logger.Info("restore finished",
		"notebooks_added", report.NotebooksAdded,
		"notebooks_updated", report.NotebooksUpdated,
		"notes_added", report.NotesAdded,
		"notes_updated", report.NotesUpdated)

	return report, nil
}

// restoreConfig writes every archive config entry into the settings store,
// unconditionally overwriting existing values for those keys.
func (r *Restorer) restoreConfig(ctx context.Context, doc *Document) error {
	entries := decodeConfig(doc.AppConfig)
	if len(entries) == 0 {
		return nil
	}

	if err := r.config.SetAll(ctx, entries); err != nil {
		return wrapStore(err)
	}

	r.logger.Info("config restored", "keys", len(entries))
	return nil
}

// restoreAttachments re-materializes every embedded background image in the
// backgrounds directory, overwriting files already present with that name.
// Files are written one at a time; the first failure aborts the phase.
func (r *Restorer) restoreAttachments(doc *Document) error {
	if err := os.MkdirAll(r.attachmentsDir, 0o755); err != nil {
		return wrapIO(err)
	}

	for _, img := range doc.BackgroundImages {
		data, err := base64.StdEncoding.DecodeString(img.Base64Data)
		if err != nil {
			return fmt.Errorf("%w: image %s: %w", ErrCorruptArchive, img.FileName, err)
		}

		// File names resolve relative to the backgrounds directory only;
		// path elements in an archive are rejected
		if img.FileName != filepath.Base(img.FileName) || img.FileName == "" || img.FileName == "." {
			return fmt.Errorf("%w: invalid image file name %q", ErrCorruptArchive, img.FileName)
		}

		target := filepath.Join(r.attachmentsDir, img.FileName)
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return wrapIO(err)
		}
	}

	if len(doc.BackgroundImages) > 0 {
		r.logger.Info("attachments restored", "files", len(doc.BackgroundImages))
	}

	return nil
}

// restoreRecords applies the archive's notebook and note rows under the
// chosen strategy.
//
// Overwrite runs as one transactional replace of both tables, so a crash
// mid-restore can't leave them half-populated. Merge and skip work row by
// row and abort on the first store error without rolling back earlier rows.
func (r *Restorer) restoreRecords(ctx context.Context, doc *Document, strategy Strategy) (*Report, error) {
	report := &Report{}

	if strategy == StrategyOverwrite {
		if err := r.records.ReplaceAll(ctx, doc.Notebooks, doc.Notes); err != nil {
			return nil, wrapStore(err)
		}
		report.NotebooksAdded = len(doc.Notebooks)
		report.NotesAdded = len(doc.Notes)
		return report, nil
	}

	for _, nb := range doc.Notebooks {
		_, err := r.records.GetNotebook(ctx, nb.ID)
		switch {
		case errors.Is(err, storage.ErrNotebookNotFound):
			if err := r.records.InsertNotebook(ctx, nb); err != nil {
				return nil, wrapStore(err)
			}
			report.NotebooksAdded++
		case err != nil:
			return nil, wrapStore(err)
		case strategy == StrategyMerge:
			if err := r.records.MergeNotebook(ctx, nb); err != nil {
				return nil, wrapStore(err)
			}
			report.NotebooksUpdated++
		default:
			// skip: leave the live row untouched and uncounted
		}
	}

	for _, n := range doc.Notes {
		_, err := r.records.GetNote(ctx, n.ID)
		switch {
		case errors.Is(err, storage.ErrNoteNotFound):
			if err := r.records.InsertNote(ctx, n); err != nil {
				return nil, wrapStore(err)
			}
			report.NotesAdded++
		case err != nil:
			return nil, wrapStore(err)
		case strategy == StrategyMerge:
			if err := r.records.MergeNote(ctx, n); err != nil {
				return nil, wrapStore(err)
			}
			report.NotesUpdated++
		default:
			// skip
		}
	}

	return report, nil
}
