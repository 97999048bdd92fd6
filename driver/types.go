package driver

import (
	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driving"
)

// Records and requests.
type (
	Keys              = domain.Keys
	Request           = domain.Request
	Response          = domain.Response
	Collaboration     = domain.Collaboration
	Component         = domain.Component
	Project           = domain.Project
	Action            = domain.Action
	Experiment        = domain.Experiment
	Layer             = domain.Layer
	Run               = domain.Run
	Hyperparameters   = domain.Hyperparameters
	Participant       = domain.Participant
	Registration      = domain.Registration
	Role              = domain.Role
	Node              = domain.Node
	TagSet            = domain.TagSet
	TrainingOptions   = domain.TrainingOptions
	Optimization      = domain.Optimization
	SearchParam       = domain.SearchParam
	PredictionOptions = domain.PredictionOptions
	Resource          = domain.Resource
)

// Errors.
type (
	FieldError                = domain.FieldError
	ServiceError              = domain.ServiceError
	UnsupportedOperationError = domain.UnsupportedOperationError
)

// Transport sends requests to a TTP.
type Transport = driven.GridTransport

// Sub-resource services.
type (
	RecordService        = driving.RecordService
	CollaborationService = driving.CollaborationService
	ProjectService       = driving.ProjectService
	ExperimentService    = driving.ExperimentService
	RunService           = driving.RunService
	ParticipantService   = driving.ParticipantService
	RegistrationService  = driving.RegistrationService
	TagService           = driving.TagService
	AlignmentService     = driving.AlignmentService
	ModelService         = driving.ModelService
	OptimizationService  = driving.OptimizationService
	ValidationService    = driving.ValidationService
	PredictionService    = driving.PredictionService
)

// Sentinel errors. Match them with errors.Is.
var (
	ErrValidation           = domain.ErrValidation
	ErrConnection           = domain.ErrConnection
	ErrService              = domain.ErrService
	ErrNotFound             = domain.ErrNotFound
	ErrUnsupportedOperation = domain.ErrUnsupportedOperation
)

const (
	ActionClassify = domain.ActionClassify
	ActionRegress  = domain.ActionRegress

	RoleGuest   = domain.RoleGuest
	RoleHost    = domain.RoleHost
	RoleArbiter = domain.RoleArbiter
)

// Constructors for payloads with TTP defaults.
var (
	NewRun                 = domain.NewRun
	NewComponent           = domain.NewComponent
	NewLoggerComponent     = domain.NewLoggerComponent
	NewOptimization        = domain.NewOptimization
	NewPredictionOptions   = domain.NewPredictionOptions
	DefaultHyperparameters = domain.DefaultHyperparameters
	DefaultTrainingOptions = domain.DefaultTrainingOptions
)
