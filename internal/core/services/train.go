package services

import (
	"context"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driving"
)

// Ensure the phase 2 services implement their interfaces.
var (
	_ driving.AlignmentService    = (*AlignmentService)(nil)
	_ driving.ModelService        = (*ModelService)(nil)
	_ driving.OptimizationService = (*OptimizationService)(nil)
)

var projectScope = []string{domain.FieldCollabID, domain.FieldProjectID}

// AlignmentService triggers multiple feature alignment of a project.
type AlignmentService struct {
	task
	generated
}

// NewAlignmentService creates a new alignment service.
func NewAlignmentService(transport driven.GridTransport) *AlignmentService {
	return &AlignmentService{
		task:      newTask(domain.ResourceAlignment, transport),
		generated: generated{resource: domain.ResourceAlignment},
	}
}

// Create triggers alignment across every registered participant.
func (s *AlignmentService) Create(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	if err := keys.Require(projectScope...); err != nil {
		return nil, err
	}
	return s.post(ctx, alignmentsPath(keys), map[string]any{})
}

// Read fetches the alignment results of a project.
func (s *AlignmentService) Read(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	if err := keys.Require(projectScope...); err != nil {
		return nil, err
	}
	return s.get(ctx, alignmentsPath(keys))
}

// ModelService triggers federated training and reads trained models.
type ModelService struct {
	task
	generated
}

// NewModelService creates a new model service.
func NewModelService(transport driven.GridTransport) *ModelService {
	return &ModelService{
		task:      newTask(domain.ResourceModel, transport),
		generated: generated{resource: domain.ResourceModel},
	}
}

// Create trains every run of a project, of one experiment, or one run,
// depending on which keys are set.
func (s *ModelService) Create(ctx context.Context, keys domain.Keys, opts domain.TrainingOptions) (*domain.Response, error) {
	if err := requireScope(keys, projectScope, domain.FieldExptID, domain.FieldRunID); err != nil {
		return nil, err
	}
	return s.post(ctx, modelsPath(keys), opts)
}

// Read fetches the models within the scope given by keys.
func (s *ModelService) Read(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	if err := requireScope(keys, projectScope, domain.FieldExptID, domain.FieldRunID); err != nil {
		return nil, err
	}
	return s.get(ctx, modelsPath(keys))
}

// OptimizationService triggers hyperparameter searches over an experiment.
type OptimizationService struct {
	task
	generated
}

// NewOptimizationService creates a new optimization service.
func NewOptimizationService(transport driven.GridTransport) *OptimizationService {
	return &OptimizationService{
		task:      newTask(domain.ResourceOptimization, transport),
		generated: generated{resource: domain.ResourceOptimization},
	}
}

// Create starts a search.
func (s *OptimizationService) Create(ctx context.Context, keys domain.Keys, opt domain.Optimization) (*domain.Response, error) {
	if err := keys.Require(experimentKeys...); err != nil {
		return nil, err
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	return s.post(ctx, optimizationsPath(keys), opt)
}

// Read fetches the search results of an experiment.
func (s *OptimizationService) Read(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	if err := keys.Require(experimentKeys...); err != nil {
		return nil, err
	}
	return s.get(ctx, optimizationsPath(keys))
}
