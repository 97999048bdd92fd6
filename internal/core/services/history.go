package services

import (
	"context"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService reads and clears the request journal.
type HistoryService struct {
	store driven.JournalStore
}

// NewHistoryService creates a new history service. A nil store behaves as
// an empty journal.
func NewHistoryService(store driven.JournalStore) *HistoryService {
	return &HistoryService{store: store}
}

// List returns the most recent entries, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.List(ctx, limit)
}

// Clear removes every entry.
func (s *HistoryService) Clear(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	return s.store.Clear(ctx)
}
