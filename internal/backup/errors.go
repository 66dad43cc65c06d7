package backup

import (
	"errors"
	"fmt"
)

// Backup engine error kinds. Callers distinguish failures with errors.Is;
// the engine fails loudly and never recovers automatically.
var (
	// ErrPermissionDenied indicates that the destination directory for a
	// backup is missing or not writable (the user-mediated access grant
	// failed or was never obtained).
	ErrPermissionDenied = errors.New("destination not writable")

	// ErrCorruptArchive indicates that an archive document failed to parse
	// or doesn't have the expected shape.
	ErrCorruptArchive = errors.New("corrupt archive")

	// ErrIO indicates a filesystem failure: file missing, unreadable or
	// unwritable.
	ErrIO = errors.New("i/o error")

	// ErrStore indicates that the record or config store rejected a read or
	// write.
	ErrStore = errors.New("store error")
)

func wrapIO(err error) error {
	return fmt.Errorf("%w: %w", ErrIO, err)
}

func wrapStore(err error) error {
	return fmt.Errorf("%w: %w", ErrStore, err)
}
