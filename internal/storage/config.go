package storage

import "context"

// ConfigStorage defines the contract for the user settings key/value store.
// Values are stored string-serialized; interpreting them is the caller's
// concern.
type ConfigStorage interface {
	// Keys returns every stored key.
	Keys(ctx context.Context) ([]string, error)

	// GetAll returns the full key/value snapshot.
	GetAll(ctx context.Context) (map[string]string, error)

	// SetAll writes every entry, overwriting existing values for the same
	// keys and leaving unrelated keys untouched.
	SetAll(ctx context.Context, entries map[string]string) error

	// Get returns the value for one key.
	// Returns ErrKeyNotFound if the key has never been set.
	Get(ctx context.Context, key string) (string, error)

	// Set writes a single value.
	Set(ctx context.Context, key, value string) error
}
