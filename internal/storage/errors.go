package storage

import "errors"

// Common storage errors
var (
	// ErrNotebookNotFound indicates that no notebook exists with the given id
	ErrNotebookNotFound = errors.New("notebook not found")

	// ErrNoteNotFound indicates that no note exists with the given id
	ErrNoteNotFound = errors.New("note not found")

	// ErrKeyNotFound indicates that a config key has no stored value
	ErrKeyNotFound = errors.New("config key not found")
)
