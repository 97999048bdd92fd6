package services

import (
	"context"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driving"
)

// Ensure ExperimentService implements the interface.
var _ driving.ExperimentService = (*ExperimentService)(nil)

var experimentKeys = []string{domain.FieldCollabID, domain.FieldProjectID, domain.FieldExptID}

// ExperimentService manages experiments within a project.
type ExperimentService struct {
	task
}

// NewExperimentService creates a new experiment service.
func NewExperimentService(transport driven.GridTransport) *ExperimentService {
	return &ExperimentService{task: newTask(domain.ResourceExperiment, transport)}
}

// Create registers a model architecture.
func (s *ExperimentService) Create(ctx context.Context, keys domain.Keys, expt domain.Experiment) (*domain.Response, error) {
	keys.ExptID = expt.ID
	if err := keys.Require(experimentKeys...); err != nil {
		return nil, err
	}
	if len(expt.Model) == 0 {
		return nil, domain.Missing("model")
	}
	return s.post(ctx, experimentsPath(keys), expt.Payload())
}

// ReadAll lists the experiments of a project.
func (s *ExperimentService) ReadAll(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	if err := keys.Require(domain.FieldCollabID, domain.FieldProjectID); err != nil {
		return nil, err
	}
	return s.get(ctx, experimentsPath(keys))
}

// Read fetches one experiment.
func (s *ExperimentService) Read(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	if err := keys.Require(experimentKeys...); err != nil {
		return nil, err
	}
	return s.get(ctx, experimentPath(keys))
}

// Update modifies an experiment.
func (s *ExperimentService) Update(ctx context.Context, keys domain.Keys, updates map[string]any) (*domain.Response, error) {
	if err := keys.Require(experimentKeys...); err != nil {
		return nil, err
	}
	return s.put(ctx, experimentPath(keys), updates)
}

// Delete removes an experiment.
func (s *ExperimentService) Delete(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	if err := keys.Require(experimentKeys...); err != nil {
		return nil, err
	}
	return s.delete(ctx, experimentPath(keys))
}
