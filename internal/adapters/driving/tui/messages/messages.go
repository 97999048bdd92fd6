// Package messages defines Bubbletea message types for the TUI.
// Messages represent events that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

// StepUpdated carries one progress event of the running workflow.
type StepUpdated struct {
	Event domain.StepEvent
}

// WorkflowFinished is sent once the workflow returns.
type WorkflowFinished struct {
	Err error
}
