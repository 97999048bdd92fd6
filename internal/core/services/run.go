package services

import (
	"context"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driving"
)

// Ensure RunService implements the interface.
var _ driving.RunService = (*RunService)(nil)

var runKeys = []string{domain.FieldCollabID, domain.FieldProjectID, domain.FieldExptID, domain.FieldRunID}

// RunService manages runs within an experiment.
type RunService struct {
	task
}

// NewRunService creates a new run service.
func NewRunService(transport driven.GridTransport) *RunService {
	return &RunService{task: newTask(domain.ResourceRun, transport)}
}

// Create registers a hyperparameter set. Unset hyperparameters are sent
// with their defaults.
func (s *RunService) Create(ctx context.Context, keys domain.Keys, run domain.Run) (*domain.Response, error) {
	keys.RunID = run.ID
	if err := keys.Require(runKeys...); err != nil {
		return nil, err
	}
	payload, err := run.Payload()
	if err != nil {
		return nil, domain.Invalid("hyperparameters", err.Error())
	}
	return s.post(ctx, runsPath(keys), payload)
}

// ReadAll lists the runs of an experiment.
func (s *RunService) ReadAll(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	if err := keys.Require(experimentKeys...); err != nil {
		return nil, err
	}
	return s.get(ctx, runsPath(keys))
}

// Read fetches one run.
func (s *RunService) Read(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	if err := keys.Require(runKeys...); err != nil {
		return nil, err
	}
	return s.get(ctx, runPath(keys))
}

// Update modifies a run.
func (s *RunService) Update(ctx context.Context, keys domain.Keys, updates map[string]any) (*domain.Response, error) {
	if err := keys.Require(runKeys...); err != nil {
		return nil, err
	}
	return s.put(ctx, runPath(keys), updates)
}

// Delete removes a run.
func (s *RunService) Delete(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	if err := keys.Require(runKeys...); err != nil {
		return nil, err
	}
	return s.delete(ctx, runPath(keys))
}
