// Package journal records every TTP call made through a transport.
package journal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/synergos-cli/internal/logger"
)

// Ensure Transport implements the interface.
var _ driven.GridTransport = (*Transport)(nil)

// Transport wraps a GridTransport and appends a journal entry per call.
// A failure to record is logged and never fails the call itself.
type Transport struct {
	next  driven.GridTransport
	store driven.JournalStore
	now   func() time.Time
}

// NewTransport decorates next so that calls are recorded in store.
func NewTransport(next driven.GridTransport, store driven.JournalStore) *Transport {
	return &Transport{next: next, store: store, now: time.Now}
}

// Do forwards the request and records its outcome.
func (t *Transport) Do(ctx context.Context, req domain.Request) (*domain.Response, error) {
	start := t.now()
	resp, err := t.next.Do(ctx, req)

	entry := domain.JournalEntry{
		ID:         uuid.NewString(),
		Time:       start,
		Method:     req.Method,
		Path:       req.Path,
		StatusCode: statusOf(resp, err),
		Duration:   t.now().Sub(start),
	}
	if err != nil {
		entry.Error = err.Error()
	}

	if appendErr := t.store.Append(context.WithoutCancel(ctx), entry); appendErr != nil {
		logger.Warn("journal: failed to record %s %s: %v", req.Method, req.Path, appendErr)
	}
	return resp, err
}

// statusOf returns the HTTP status of a call, or zero when none arrived.
func statusOf(resp *domain.Response, err error) int {
	var se *domain.ServiceError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	if err != nil || resp == nil {
		return 0
	}
	return resp.Status
}
