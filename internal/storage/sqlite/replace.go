package sqlite

import (
	"context"
	"fmt"

	"inkpad/internal/models"
)

// ReplaceAll wipes both record tables and inserts the given rows with their
// archive ids and timestamps intact, all inside one transaction. This backs
// the overwrite restore strategy: either the store ends up holding exactly
// the archive's records, or it is left exactly as it was.
//
// Notebooks are inserted before notes so that restored notebook references
// resolve, although no referential check is performed.
func (s *Storage) ReplaceAll(ctx context.Context, notebooks []*models.Notebook, notes []*models.Note) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, `DELETE FROM notes`); err != nil {
		return fmt.Errorf("failed to clear notes: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM notebooks`); err != nil {
		return fmt.Errorf("failed to clear notebooks: %w", err)
	}

	for _, nb := range notebooks {
		if err := insertNotebookTx(ctx, tx, nb); err != nil {
			return err
		}
	}

	for _, n := range notes {
		if err := insertNoteTx(ctx, tx, n); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit replace: %w", err)
	}

	return nil
}
