package driving

import (
	"context"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

// AlignmentService triggers and reads feature alignment of a project.
type AlignmentService interface {
	RecordService

	// Create triggers multiple feature alignment.
	Create(ctx context.Context, keys domain.Keys) (*domain.Response, error)
}

// ModelService triggers federated training and reads trained models.
type ModelService interface {
	RecordService

	// Create triggers training over the scope given by keys: a project,
	// an experiment, or a single run.
	Create(ctx context.Context, keys domain.Keys, opts domain.TrainingOptions) (*domain.Response, error)
}

// OptimizationService triggers hyperparameter searches over an experiment.
type OptimizationService interface {
	RecordService

	// Create starts a search.
	Create(ctx context.Context, keys domain.Keys, opt domain.Optimization) (*domain.Response, error)
}
