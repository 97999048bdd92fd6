// Package domain defines the payload shapes and errors of the Synergos driver.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Collaboration, Project, Experiment, Run: nested scheduling units
//   - Participant, Registration, TagSet: worker enrolment
//   - TrainingOptions, Optimization, PredictionOptions: phase 2/3 triggers
//   - Response: the envelope returned by every TTP endpoint
//   - Workflow: a full connect -> train -> evaluate cycle
//
// None of these are owned or cached by the driver; they are constructed,
// serialised, sent and discarded per call.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
