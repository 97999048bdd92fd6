package driving

import (
	"context"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

// CollaborationService manages collaborations.
type CollaborationService interface {
	RecordService

	// Create registers a collaboration and its auxiliary components.
	Create(ctx context.Context, collab domain.Collaboration) (*domain.Response, error)
}

// ProjectService manages projects within a collaboration.
type ProjectService interface {
	RecordService

	// Create registers a project under keys.CollabID.
	Create(ctx context.Context, keys domain.Keys, project domain.Project) (*domain.Response, error)
}

// ExperimentService manages experiments within a project.
type ExperimentService interface {
	RecordService

	// Create registers a model architecture under keys.CollabID and
	// keys.ProjectID.
	Create(ctx context.Context, keys domain.Keys, expt domain.Experiment) (*domain.Response, error)
}

// RunService manages runs within an experiment.
type RunService interface {
	RecordService

	// Create registers a hyperparameter set under collab, project and
	// experiment keys.
	Create(ctx context.Context, keys domain.Keys, run domain.Run) (*domain.Response, error)
}

// ParticipantService manages participants.
type ParticipantService interface {
	RecordService

	// Create registers a participant.
	Create(ctx context.Context, participant domain.Participant) (*domain.Response, error)
}

// RegistrationService manages the enrolment of participants in projects.
type RegistrationService interface {
	RecordService

	// Create registers keys.ParticipantID to keys.ProjectID, replacing an
	// existing registration.
	Create(ctx context.Context, keys domain.Keys, reg domain.Registration) (*domain.Response, error)
}

// TagService manages the data tags of a registration.
type TagService interface {
	RecordService

	// Create declares the tags of a registration.
	Create(ctx context.Context, keys domain.Keys, tags domain.TagSet) (*domain.Response, error)
}
