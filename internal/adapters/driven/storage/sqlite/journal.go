package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driven"
)

// timeLayout keeps recorded_at sortable as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// journalStore implements driven.JournalStore.
type journalStore struct {
	store *Store
}

var _ driven.JournalStore = (*journalStore)(nil)

// Append records one call.
func (s *journalStore) Append(ctx context.Context, entry domain.JournalEntry) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO journal (id, recorded_at, method, path, status_code, duration_ms, error)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Time.UTC().Format(timeLayout), entry.Method, entry.Path,
		entry.StatusCode, entry.Duration.Milliseconds(), nullString(entry.Error))
	if err != nil {
		return fmt.Errorf("appending journal entry: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first.
func (s *journalStore) List(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	query := `
		SELECT id, recorded_at, method, path, status_code, duration_ms, error
		FROM journal ORDER BY recorded_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying journal: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry //nolint:prealloc // size unknown from query
	for rows.Next() {
		var (
			entry      domain.JournalEntry
			recordedAt string
			durationMS int64
			errText    sql.NullString
		)
		if err := rows.Scan(&entry.ID, &recordedAt, &entry.Method, &entry.Path,
			&entry.StatusCode, &durationMS, &errText); err != nil {
			return nil, fmt.Errorf("scanning journal entry: %w", err)
		}
		entry.Time, err = time.Parse(timeLayout, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing journal time: %w", err)
		}
		entry.Duration = time.Duration(durationMS) * time.Millisecond
		entry.Error = errText.String
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journal: %w", err)
	}
	return entries, nil
}

// Clear removes every entry.
func (s *journalStore) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM journal"); err != nil {
		return fmt.Errorf("clearing journal: %w", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
