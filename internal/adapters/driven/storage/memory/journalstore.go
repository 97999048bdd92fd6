package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driven"
)

// Ensure JournalStore implements the interface.
var _ driven.JournalStore = (*JournalStore)(nil)

// JournalStore is an in-memory implementation of driven.JournalStore.
type JournalStore struct {
	mu      sync.RWMutex
	entries []domain.JournalEntry
}

// NewJournalStore creates a new in-memory journal store.
func NewJournalStore() *JournalStore {
	return &JournalStore{}
}

// Append records one call.
func (s *JournalStore) Append(_ context.Context, entry domain.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

// List returns the most recent entries, newest first.
func (s *JournalStore) List(_ context.Context, limit int) ([]domain.JournalEntry, error) {
	s.mu.RLock()
	result := make([]domain.JournalEntry, len(s.entries))
	copy(result, s.entries)
	s.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Time.After(result[j].Time)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Clear removes every entry.
func (s *JournalStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return nil
}
