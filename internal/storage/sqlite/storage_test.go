package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestStorage creates an in-memory SQLite storage with migrations
// applied and returns it together with a cleanup function.
func setupTestStorage(t *testing.T) (*Storage, func()) {
	t.Helper()

	ctx := context.Background()
	s, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		require.NoError(t, s.Close())
	}

	return s, cleanup
}

func TestNew_AppliesMigrations(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	// Both tables must exist after open
	for _, table := range []string{"notebooks", "notes"} {
		var name string
		err := s.DB().QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
	}
}
