// Package tui renders the progress of a workflow in the terminal.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Workflow runs apply and teardown against the TTP.
	Workflow driving.WorkflowService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(workflow driving.WorkflowService) *Ports {
	return &Ports{Workflow: workflow}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Workflow == nil {
		return ErrMissingWorkflowService
	}
	return nil
}
