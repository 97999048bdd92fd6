package mcp

import (
	"fmt"

	"github.com/custodia-labs/synergos-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	Collaborations driving.CollaborationService
	Projects       driving.ProjectService
	Experiments    driving.ExperimentService
	Runs           driving.RunService
	Registrations  driving.RegistrationService
	Alignments     driving.AlignmentService
	Models         driving.ModelService
	Validations    driving.ValidationService
	Predictions    driving.PredictionService

	// History is optional. Without it the history resource is empty.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error naming the first missing port.
func (p *Ports) Validate() error {
	required := []struct {
		name string
		set  bool
	}{
		{"collaborations", p.Collaborations != nil},
		{"projects", p.Projects != nil},
		{"experiments", p.Experiments != nil},
		{"runs", p.Runs != nil},
		{"registrations", p.Registrations != nil},
		{"alignments", p.Alignments != nil},
		{"models", p.Models != nil},
		{"validations", p.Validations != nil},
		{"predictions", p.Predictions != nil},
	}
	for _, r := range required {
		if !r.set {
			return fmt.Errorf("%w: %s", ErrMissingService, r.name)
		}
	}
	return nil
}
