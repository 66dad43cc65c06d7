package backup

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"inkpad/internal/storage"
)

// archiveFilePrefix is the app prefix in generated archive file names:
// inkpad_backup_<unix-millis>.json.
const archiveFilePrefix = "inkpad"

// AttachmentPolicy controls how the Builder treats a background image file
// that cannot be read. Config and record reads are always strict; only the
// attachment phase is configurable.
type AttachmentPolicy int

const (
	// AttachmentsLenient logs a failed attachment read and embeds an empty
	// payload for that one file instead of aborting the backup. A missing
	// thumbnail is tolerable, a missing note is not.
	AttachmentsLenient AttachmentPolicy = iota

	// AttachmentsStrict aborts the backup on the first failed attachment
	// read.
	AttachmentsStrict
)

// Builder assembles archive documents from the live store and writes them to
// a user-chosen destination directory.
type Builder struct {
	records          storage.RecordStorage
	config           storage.ConfigStorage
	attachmentsDir   string
	attachmentPolicy AttachmentPolicy
	logger           *slog.Logger
}

// NewBuilder creates a new archive builder.
// attachmentsDir is the backgrounds directory whose contents get embedded
// into every archive.
func NewBuilder(records storage.RecordStorage, config storage.ConfigStorage, attachmentsDir string, policy AttachmentPolicy, logger *slog.Logger) *Builder {
	return &Builder{
		records:          records,
		config:           config,
		attachmentsDir:   attachmentsDir,
		attachmentPolicy: policy,
		logger:           logger,
	}
}

// CreateBackup snapshots the complete local state (settings, notebooks,
// notes, background images) into a single archive file inside destDir and
// returns the path of the written file.
//
// The archive is assembled fully in memory and written via a temp file plus
// rename, so a failure at any step leaves no partial archive behind. The
// store is never mutated.
func (b *Builder) CreateBackup(ctx context.Context, destDir string) (string, error) {
	b.logger.Info("starting backup", "dest", destDir)

	if err := checkDestDir(destDir); err != nil {
		return "", err
	}

	// The backgrounds directory may not exist yet on a fresh install
	if err := os.MkdirAll(b.attachmentsDir, 0o755); err != nil {
		return "", wrapIO(err)
	}

	entries, err := b.config.GetAll(ctx)
	if err != nil {
		return "", wrapStore(err)
	}

	appConfig, err := encodeConfig(entries)
	if err != nil {
		return "", wrapStore(err)
	}

	notebooks, err := b.records.ListNotebooks(ctx)
	if err != nil {
		return "", wrapStore(err)
	}

	notes, err := b.records.ListNotes(ctx)
	if err != nil {
		return "", wrapStore(err)
	}

	images, err := b.collectBackgroundImages()
	if err != nil {
		return "", err
	}

	doc := &Document{
		AppConfig:        appConfig,
		Notebooks:        notebooks,
		Notes:            notes,
		BackgroundImages: images,
	}

	data, err := doc.marshal()
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("%s_backup_%d.json", archiveFilePrefix, time.Now().UnixMilli())
	path := filepath.Join(destDir, fileName)

	if err := writeFileAtomic(path, data); err != nil {
		return "", err
	}

	b.logger.Info("backup written",
		"path", path,
		"config_keys", len(entries),
		"notebooks", len(notebooks),
		"notes", len(notes),
		"images", len(images))

	return path, nil
}

// collectBackgroundImages mirrors the backgrounds directory into the archive.
// Files are processed one at a time; read failures follow the configured
// attachment policy.
func (b *Builder) collectBackgroundImages() ([]BackgroundImage, error) {
	dirEntries, err := os.ReadDir(b.attachmentsDir)
	if err != nil {
		return nil, wrapIO(err)
	}

	images := make([]BackgroundImage, 0, len(dirEntries))
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(b.attachmentsDir, entry.Name()))
		if err != nil {
			if b.attachmentPolicy == AttachmentsStrict {
				return nil, wrapIO(err)
			}
			b.logger.Warn("failed to read background image, embedding empty payload",
				"file", entry.Name(), "error", err)
			images = append(images, BackgroundImage{FileName: entry.Name(), Base64Data: ""})
			continue
		}

		images = append(images, BackgroundImage{
			FileName:   entry.Name(),
			Base64Data: base64.StdEncoding.EncodeToString(data),
		})
	}

	return images, nil
}

// checkDestDir verifies the user-granted destination exists and is a
// directory. Anything else means the access grant didn't happen.
func checkDestDir(destDir string) error {
	info, err := os.Stat(destDir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrPermissionDenied, destDir)
	}
	return nil
}

// writeFileAtomic writes data next to the target and renames it into place,
// so readers never observe a partially written archive.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".inkpad-backup-*")
	if err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
		}
		return wrapIO(err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return wrapIO(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return wrapIO(err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return wrapIO(err)
	}

	return nil
}
