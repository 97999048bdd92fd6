package services

import (
	"context"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driving"
)

// Ensure the phase 3 services implement their interfaces.
var (
	_ driving.ValidationService = (*ValidationService)(nil)
	_ driving.PredictionService = (*PredictionService)(nil)
)

// ValidationService triggers and reads model validation.
type ValidationService struct {
	task
	generated
}

// NewValidationService creates a new validation service.
func NewValidationService(transport driven.GridTransport) *ValidationService {
	return &ValidationService{
		task:      newTask(domain.ResourceValidation, transport),
		generated: generated{resource: domain.ResourceValidation},
	}
}

func validationScope(keys domain.Keys) error {
	return requireScope(keys, projectScope, domain.FieldExptID, domain.FieldRunID, domain.FieldParticipantID)
}

// Create validates the models within the scope given by keys.
func (s *ValidationService) Create(ctx context.Context, keys domain.Keys, opts domain.TrainingOptions) (*domain.Response, error) {
	if err := validationScope(keys); err != nil {
		return nil, err
	}
	return s.post(ctx, validationsPath(keys), opts)
}

// Read fetches validation statistics, optionally narrowed to one
// experiment, run and participant.
func (s *ValidationService) Read(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	if err := validationScope(keys); err != nil {
		return nil, err
	}
	return s.get(ctx, validationsPath(keys))
}

// PredictionService triggers and reads inference by a participant.
type PredictionService struct {
	task
	generated
}

// NewPredictionService creates a new prediction service.
func NewPredictionService(transport driven.GridTransport) *PredictionService {
	return &PredictionService{
		task:      newTask(domain.ResourcePrediction, transport),
		generated: generated{resource: domain.ResourcePrediction},
	}
}

func predictionScope(keys domain.Keys) error {
	return requireScope(keys,
		[]string{domain.FieldParticipantID, domain.FieldCollabID},
		domain.FieldProjectID, domain.FieldExptID, domain.FieldRunID)
}

// Create requests predictions on the participant's tagged data.
func (s *PredictionService) Create(ctx context.Context, keys domain.Keys, opts domain.PredictionOptions) (*domain.Response, error) {
	if err := predictionScope(keys); err != nil {
		return nil, err
	}
	if len(opts.Tags) == 0 {
		return nil, domain.Missing("tags")
	}
	return s.post(ctx, predictionsPath(keys), opts)
}

// Read fetches predictions, optionally narrowed to one project,
// experiment and run.
func (s *PredictionService) Read(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	if err := predictionScope(keys); err != nil {
		return nil, err
	}
	return s.get(ctx, predictionsPath(keys))
}
