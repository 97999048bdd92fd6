package driven

import (
	"context"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

// GridTransport sends requests to a TTP.
//
// Implementations must return an error wrapping domain.ErrConnection when
// the TTP cannot be reached and a *domain.ServiceError when it answers with
// a status other than 200 or 201. They must not retry.
type GridTransport interface {
	// Do sends the request and returns the decoded response envelope.
	Do(ctx context.Context, req domain.Request) (*domain.Response, error)
}
