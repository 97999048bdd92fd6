package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "synergos-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.Equal(t, "journal.db", filepath.Base(store.Path()))
	_, err := os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_MigrationsRecorded(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)

	var version int
	require.NoError(t, store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 1, version)
	require.NoError(t, store.Close())

	// Reopening must not re-run applied migrations.
	store, err = NewStore(tempDir)
	require.NoError(t, err)
	var count int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)
	require.NoError(t, store.Close())
}

func TestJournalStore_AppendAndList(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	journal := store.JournalStore()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	entries := []domain.JournalEntry{
		{ID: "1", Time: base, Method: "POST", Path: "/ttp/connect/collaborations", StatusCode: 201, Duration: 15 * time.Millisecond},
		{ID: "2", Time: base.Add(time.Second), Method: "POST", Path: "/ttp/connect/participants", StatusCode: 201},
		{ID: "3", Time: base.Add(2 * time.Second), Method: "GET", Path: "/ttp/connect/participants/x", StatusCode: 404, Error: "not found"},
	}
	for _, e := range entries {
		require.NoError(t, journal.Append(ctx, e))
	}

	all, err := journal.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "3", all[0].ID)
	assert.Equal(t, "not found", all[0].Error)
	assert.Equal(t, 404, all[0].StatusCode)
	assert.True(t, base.Equal(all[2].Time))
	assert.Equal(t, 15*time.Millisecond, all[2].Duration)

	limited, err := journal.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
	assert.Equal(t, "2", limited[1].ID)
}

func TestJournalStore_DuplicateID(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	journal := store.JournalStore()
	entry := domain.JournalEntry{ID: "dup", Time: time.Now(), Method: "GET", Path: "/"}

	require.NoError(t, journal.Append(ctx, entry))
	assert.Error(t, journal.Append(ctx, entry))
}

func TestJournalStore_Clear(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	journal := store.JournalStore()
	require.NoError(t, journal.Append(ctx, domain.JournalEntry{ID: "1", Time: time.Now(), Method: "GET", Path: "/"}))

	require.NoError(t, journal.Clear(ctx))

	all, err := journal.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}
