package driving

import (
	"context"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

// RecordService is the operation set shared by every sub-resource.
//
// Phase 2/3 resources return domain.ErrUnsupportedOperation from ReadAll,
// Update and Delete without contacting the TTP.
type RecordService interface {
	// ReadAll lists the records under the parent keys.
	ReadAll(ctx context.Context, keys domain.Keys) (*domain.Response, error)

	// Read fetches one record.
	Read(ctx context.Context, keys domain.Keys) (*domain.Response, error)

	// Update applies a partial update to one record.
	Update(ctx context.Context, keys domain.Keys, updates map[string]any) (*domain.Response, error)

	// Delete removes one record.
	Delete(ctx context.Context, keys domain.Keys) (*domain.Response, error)
}
