package driving

import (
	"context"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

// StepObserver receives workflow progress. It may be nil.
type StepObserver func(domain.StepEvent)

// WorkflowService runs a full federated cycle against the TTP.
type WorkflowService interface {
	// Plan returns the steps Apply would run, each with StepPending status.
	Plan(wf *domain.Workflow) []domain.StepEvent

	// Apply runs the workflow in phase order and stops at the first error.
	Apply(ctx context.Context, wf *domain.Workflow, observe StepObserver) error

	// Teardown deletes the registrations, participants and collaboration
	// declared by the workflow. Records already absent are skipped.
	Teardown(ctx context.Context, wf *domain.Workflow, observe StepObserver) error
}

// HistoryService reads and clears the request journal.
type HistoryService interface {
	// List returns the most recent entries, newest first.
	List(ctx context.Context, limit int) ([]domain.JournalEntry, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error
}
