package tui

import (
	"context"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driving"
)

// mockWorkflowService is a mock implementation of driving.WorkflowService.
// It replays events and returns err.
type mockWorkflowService struct {
	plan     []domain.StepEvent
	events   []domain.StepEvent
	err      error
	block    bool
	tornDown bool
}

func (m *mockWorkflowService) Plan(*domain.Workflow) []domain.StepEvent {
	return m.plan
}

func (m *mockWorkflowService) Apply(ctx context.Context, _ *domain.Workflow, observe driving.StepObserver) error {
	return m.replay(ctx, observe)
}

func (m *mockWorkflowService) Teardown(ctx context.Context, _ *domain.Workflow, observe driving.StepObserver) error {
	m.tornDown = true
	return m.replay(ctx, observe)
}

func (m *mockWorkflowService) replay(ctx context.Context, observe driving.StepObserver) error {
	for _, ev := range m.events {
		observe(ev)
	}
	if m.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return m.err
}

func twoSteps() []domain.StepEvent {
	return []domain.StepEvent{
		{Index: 0, Total: 2, Phase: domain.PhaseConnect, Resource: domain.ResourceCollaboration, Keys: domain.Keys{CollabID: "c"}, Status: domain.StepPending},
		{Index: 1, Total: 2, Phase: domain.PhaseConnect, Resource: domain.ResourceProject, Keys: domain.Keys{CollabID: "c", ProjectID: "p"}, Status: domain.StepPending},
	}
}

func event(ev domain.StepEvent, status domain.StepStatus) domain.StepEvent {
	ev.Status = status
	return ev
}
