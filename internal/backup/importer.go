package backup

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Importer copies user-picked archive files into the app's private staging
// directory, so the Restorer operates on a stable local path regardless of
// where the user keeps backups.
type Importer struct {
	stagingDir string
	logger     *slog.Logger
}

// NewImporter creates a new archive importer writing into stagingDir.
func NewImporter(stagingDir string, logger *slog.Logger) *Importer {
	return &Importer{stagingDir: stagingDir, logger: logger}
}

// ImportBackup copies the file at src into the staging directory under its
// original name, overwriting a same-named file, and returns the staged path.
// Content is not validated here; a bad archive surfaces later, during
// Restorer parsing.
func (i *Importer) ImportBackup(ctx context.Context, src string) (string, error) {
	if err := os.MkdirAll(i.stagingDir, 0o755); err != nil {
		return "", wrapIO(err)
	}

	in, err := os.Open(src)
	if err != nil {
		return "", wrapIO(err)
	}
	defer in.Close()

	dst := filepath.Join(i.stagingDir, filepath.Base(src))

	out, err := os.Create(dst)
	if err != nil {
		return "", wrapIO(err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		// don't leave a truncated copy in staging
		os.Remove(dst)
		return "", wrapIO(err)
	}

	if err := out.Close(); err != nil {
		os.Remove(dst)
		return "", wrapIO(err)
	}

	i.logger.Info("backup imported", "src", src, "staged", dst)

	return dst, nil
}
