package driving

import (
	"context"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

// ValidationService triggers and reads model validation.
type ValidationService interface {
	RecordService

	// Create triggers validation over the scope given by keys.
	Create(ctx context.Context, keys domain.Keys, opts domain.TrainingOptions) (*domain.Response, error)
}

// PredictionService triggers and reads inference by a participant.
type PredictionService interface {
	RecordService

	// Create requests predictions over the scope given by keys.
	Create(ctx context.Context, keys domain.Keys, opts domain.PredictionOptions) (*domain.Response, error)
}
