package driven

import (
	"context"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

// JournalStore persists the history of TTP calls made by the CLI.
type JournalStore interface {
	// Append records one call.
	Append(ctx context.Context, entry domain.JournalEntry) error

	// List returns the most recent entries, newest first.
	// A limit of zero or less returns every entry.
	List(ctx context.Context, limit int) ([]domain.JournalEntry, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error
}
