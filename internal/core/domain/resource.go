package domain

// Phase is a stage of the federated cycle on the TTP.
type Phase string

const (
	// PhaseConnect covers connection setup records (phase 1).
	PhaseConnect Phase = "connect"

	// PhaseTrain covers alignment, training and optimisation (phase 2).
	PhaseTrain Phase = "train"

	// PhaseEvaluate covers validation and prediction (phase 3).
	PhaseEvaluate Phase = "evaluate"
)

// Phases lists the phases in execution order.
func Phases() []Phase {
	return []Phase{PhaseConnect, PhaseTrain, PhaseEvaluate}
}

// Resource names a sub-resource of the driver.
type Resource string

const (
	ResourceCollaboration Resource = "collaboration"
	ResourceProject       Resource = "project"
	ResourceExperiment    Resource = "experiment"
	ResourceRun           Resource = "run"
	ResourceParticipant   Resource = "participant"
	ResourceRegistration  Resource = "registration"
	ResourceTag           Resource = "tag"
	ResourceAlignment     Resource = "alignment"
	ResourceModel         Resource = "model"
	ResourceOptimization  Resource = "optimization"
	ResourceValidation    Resource = "validation"
	ResourcePrediction    Resource = "prediction"
)

// Resources lists every sub-resource in phase order.
func Resources() []Resource {
	return []Resource{
		ResourceCollaboration,
		ResourceProject,
		ResourceExperiment,
		ResourceRun,
		ResourceParticipant,
		ResourceRegistration,
		ResourceTag,
		ResourceAlignment,
		ResourceModel,
		ResourceOptimization,
		ResourceValidation,
		ResourcePrediction,
	}
}

// Phase returns the phase a resource belongs to.
func (r Resource) Phase() Phase {
	switch r {
	case ResourceAlignment, ResourceModel, ResourceOptimization:
		return PhaseTrain
	case ResourceValidation, ResourcePrediction:
		return PhaseEvaluate
	default:
		return PhaseConnect
	}
}

// Mutable reports whether records of this resource can be updated or
// deleted. Phase 2/3 records are generated by the TTP and are read-only.
func (r Resource) Mutable() bool {
	return r.Phase() == PhaseConnect
}

// String returns the resource name.
func (r Resource) String() string {
	return string(r)
}
