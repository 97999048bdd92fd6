package domain

import "time"

// Workflow describes a full federated cycle: the records to create in the
// connect phase, then what to train and evaluate. It mirrors the order of
// the tutorial notebook.
type Workflow struct {
	Collaboration Collaboration          `toml:"collaboration" yaml:"collaboration"`
	Projects      []Project              `toml:"projects" yaml:"projects"`
	Experiments   []WorkflowExperiment   `toml:"experiments" yaml:"experiments"`
	Runs          []WorkflowRun          `toml:"runs" yaml:"runs"`
	Participants  []Participant          `toml:"participants" yaml:"participants"`
	Registrations []WorkflowRegistration `toml:"registrations" yaml:"registrations"`
	Tags          []WorkflowTags         `toml:"tags" yaml:"tags"`
	Train         WorkflowTrain          `toml:"train" yaml:"train"`
	Evaluate      WorkflowEvaluate       `toml:"evaluate" yaml:"evaluate"`
}

// WorkflowExperiment places an experiment under a project.
type WorkflowExperiment struct {
	ProjectID  string `toml:"project" yaml:"project"`
	Experiment `yaml:",inline"`
}

// WorkflowRun places a run under an experiment.
type WorkflowRun struct {
	ProjectID string `toml:"project" yaml:"project"`
	ExptID    string `toml:"experiment" yaml:"experiment"`
	Run       `yaml:",inline"`
}

// WorkflowRegistration registers a participant to a project.
type WorkflowRegistration struct {
	ProjectID     string `toml:"project" yaml:"project"`
	ParticipantID string `toml:"participant" yaml:"participant"`
	Registration  `yaml:",inline"`
}

// WorkflowTags declares a participant's data tags for a project.
type WorkflowTags struct {
	ProjectID     string `toml:"project" yaml:"project"`
	ParticipantID string `toml:"participant" yaml:"participant"`
	TagSet        `yaml:",inline"`
}

// Scope narrows a training or evaluation trigger.
type Scope struct {
	ProjectID     string `toml:"project" yaml:"project"`
	ExptID        string `toml:"experiment" yaml:"experiment"`
	RunID         string `toml:"run" yaml:"run"`
	ParticipantID string `toml:"participant" yaml:"participant"`
}

// Keys returns the scope as record keys under a collaboration.
func (s Scope) Keys(collabID string) Keys {
	return Keys{
		CollabID:      collabID,
		ProjectID:     s.ProjectID,
		ExptID:        s.ExptID,
		RunID:         s.RunID,
		ParticipantID: s.ParticipantID,
	}
}

// WorkflowOptimization is a hyperparameter search over an experiment.
type WorkflowOptimization struct {
	ProjectID    string `toml:"project" yaml:"project"`
	ExptID       string `toml:"experiment" yaml:"experiment"`
	Optimization `yaml:",inline"`
}

// WorkflowTrain lists phase 2 triggers.
type WorkflowTrain struct {
	// Align lists projects to align. When empty, every project with a
	// model scope is aligned first.
	Align         []string               `toml:"align" yaml:"align"`
	Models        []Scope                `toml:"models" yaml:"models"`
	Optimizations []WorkflowOptimization `toml:"optimizations" yaml:"optimizations"`
	Options       *TrainingOptions       `toml:"options" yaml:"options"`
}

// WorkflowPrediction is an inference request by a participant.
type WorkflowPrediction struct {
	Scope `yaml:",inline"`
	Tags  map[string][][]string `toml:"tags" yaml:"tags"`
}

// WorkflowEvaluate lists phase 3 triggers.
type WorkflowEvaluate struct {
	Validations []Scope              `toml:"validations" yaml:"validations"`
	Predictions []WorkflowPrediction `toml:"predictions" yaml:"predictions"`
	Options     *TrainingOptions     `toml:"options" yaml:"options"`
}

// StepStatus is the outcome of a workflow step.
type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepStarted   StepStatus = "started"
	StepSucceeded StepStatus = "succeeded"
	StepFailed    StepStatus = "failed"
	StepSkipped   StepStatus = "skipped"
)

// StepEvent reports progress of a workflow.
type StepEvent struct {
	Index    int
	Total    int
	Phase    Phase
	Resource Resource
	Keys     Keys
	Status   StepStatus
	Err      error
	Elapsed  time.Duration
}

// JournalEntry is one TTP call recorded by the CLI.
type JournalEntry struct {
	ID         string
	Time       time.Time
	Method     string
	Path       string
	StatusCode int
	Duration   time.Duration
	Error      string
}
