package services

import (
	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driving"
)

// Grid groups the sub-resource services of one TTP.
type Grid struct {
	Collaborations driving.CollaborationService
	Projects       driving.ProjectService
	Experiments    driving.ExperimentService
	Runs           driving.RunService
	Participants   driving.ParticipantService
	Registrations  driving.RegistrationService
	Tags           driving.TagService
	Alignments     driving.AlignmentService
	Models         driving.ModelService
	Optimizations  driving.OptimizationService
	Validations    driving.ValidationService
	Predictions    driving.PredictionService
}

// NewGrid creates every sub-resource service over one transport.
func NewGrid(transport driven.GridTransport) *Grid {
	return &Grid{
		Collaborations: NewCollaborationService(transport),
		Projects:       NewProjectService(transport),
		Experiments:    NewExperimentService(transport),
		Runs:           NewRunService(transport),
		Participants:   NewParticipantService(transport),
		Registrations:  NewRegistrationService(transport),
		Tags:           NewTagService(transport),
		Alignments:     NewAlignmentService(transport),
		Models:         NewModelService(transport),
		Optimizations:  NewOptimizationService(transport),
		Validations:    NewValidationService(transport),
		Predictions:    NewPredictionService(transport),
	}
}

// Records returns the shared operations of a resource, or nil if the
// resource is unknown.
func (g *Grid) Records(r domain.Resource) driving.RecordService {
	switch r {
	case domain.ResourceCollaboration:
		return g.Collaborations
	case domain.ResourceProject:
		return g.Projects
	case domain.ResourceExperiment:
		return g.Experiments
	case domain.ResourceRun:
		return g.Runs
	case domain.ResourceParticipant:
		return g.Participants
	case domain.ResourceRegistration:
		return g.Registrations
	case domain.ResourceTag:
		return g.Tags
	case domain.ResourceAlignment:
		return g.Alignments
	case domain.ResourceModel:
		return g.Models
	case domain.ResourceOptimization:
		return g.Optimizations
	case domain.ResourceValidation:
		return g.Validations
	case domain.ResourcePrediction:
		return g.Predictions
	default:
		return nil
	}
}
