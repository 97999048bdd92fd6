package services

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

func testWorkflow() *domain.Workflow {
	node := domain.Node{Host: "172.17.0.2", Port: 8020, FPort: 5000}
	return &domain.Workflow{
		Collaboration: domain.Collaboration{ID: "test_collab"},
		Projects:      []domain.Project{{ID: "test_project", Action: domain.ActionClassify}},
		Experiments: []domain.WorkflowExperiment{{
			ProjectID:  "test_project",
			Experiment: domain.Experiment{ID: "test_expt", Model: []domain.Layer{{LType: "Linear", IsInput: true}}},
		}},
		Runs: []domain.WorkflowRun{{
			ProjectID: "test_project",
			ExptID:    "test_expt",
			Run:       domain.NewRun("test_run"),
		}},
		Participants: []domain.Participant{{ID: "worker_1"}, {ID: "worker_2"}},
		Registrations: []domain.WorkflowRegistration{
			{ProjectID: "test_project", ParticipantID: "worker_1",
				Registration: domain.Registration{Role: domain.RoleHost, Nodes: []domain.Node{node}}},
			{ProjectID: "test_project", ParticipantID: "worker_2",
				Registration: domain.Registration{Role: domain.RoleGuest, Nodes: []domain.Node{node}}},
		},
		Tags: []domain.WorkflowTags{
			{ProjectID: "test_project", ParticipantID: "worker_1", TagSet: domain.TagSet{Train: [][]string{{"train"}}}},
		},
		Train: domain.WorkflowTrain{
			Models: []domain.Scope{{ProjectID: "test_project", ExptID: "test_expt", RunID: "test_run"}},
		},
		Evaluate: domain.WorkflowEvaluate{
			Validations: []domain.Scope{{ProjectID: "test_project"}},
			Predictions: []domain.WorkflowPrediction{{
				Scope: domain.Scope{ProjectID: "test_project", ParticipantID: "worker_2"},
				Tags:  map[string][][]string{"test_project": {{"predict"}}},
			}},
		},
	}
}

func TestWorkflowService_Apply_PhaseOrder(t *testing.T) {
	spy := &spyTransport{}
	service := NewWorkflowService(NewGrid(spy))

	var events []domain.StepEvent
	err := service.Apply(context.Background(), testWorkflow(), func(ev domain.StepEvent) {
		events = append(events, ev)
	})

	require.NoError(t, err)

	var posts []string
	for _, req := range spy.calls() {
		if req.Method == http.MethodPost {
			posts = append(posts, req.Path)
		}
	}
	expected := []string{
		"/ttp/connect/collaborations",
		"/ttp/connect/collaborations/test_collab/projects",
		"/ttp/connect/collaborations/test_collab/projects/test_project/experiments",
		"/ttp/connect/collaborations/test_collab/projects/test_project/experiments/test_expt/runs",
		"/ttp/connect/participants",
		"/ttp/connect/participants",
		"/ttp/connect/collaborations/test_collab/projects/test_project/participants/worker_1/registration",
		"/ttp/connect/collaborations/test_collab/projects/test_project/participants/worker_2/registration",
		"/ttp/connect/collaborations/test_collab/projects/test_project/participants/worker_1/registration/tags",
		"/ttp/train/collaborations/test_collab/projects/test_project/alignments",
		"/ttp/train/collaborations/test_collab/projects/test_project/models/test_expt/test_run",
		"/ttp/evaluate/collaborations/test_collab/projects/test_project/validations",
		"/ttp/evaluate/participants/worker_2/collaborations/test_collab/predictions/test_project",
	}
	assert.Equal(t, expected, posts)

	require.Len(t, events, 2*len(expected))
	lastPhase := domain.PhaseConnect
	order := map[domain.Phase]int{domain.PhaseConnect: 0, domain.PhaseTrain: 1, domain.PhaseEvaluate: 2}
	for _, ev := range events {
		assert.GreaterOrEqual(t, order[ev.Phase], order[lastPhase])
		lastPhase = ev.Phase
		assert.Equal(t, len(expected), ev.Total)
	}
	assert.Equal(t, domain.StepSucceeded, events[len(events)-1].Status)
}

func TestWorkflowService_Apply_StopsAtFirstFailure(t *testing.T) {
	spy := &spyTransport{respond: func(req domain.Request) (*domain.Response, error) {
		if req.Method == http.MethodPost && strings.HasSuffix(req.Path, "/runs") {
			return nil, &domain.ServiceError{StatusCode: http.StatusInternalServerError, Method: req.Method, Path: req.Path}
		}
		return okResponse(req.Method, map[string]any{}), nil
	}}
	service := NewWorkflowService(NewGrid(spy))

	var failed []domain.StepEvent
	err := service.Apply(context.Background(), testWorkflow(), func(ev domain.StepEvent) {
		if ev.Status == domain.StepFailed {
			failed = append(failed, ev)
		}
	})

	require.ErrorIs(t, err, domain.ErrService)
	assert.Contains(t, err.Error(), "step 4/13")
	require.Len(t, failed, 1)
	assert.Equal(t, domain.ResourceRun, failed[0].Resource)
	assert.Len(t, spy.calls(), 4)
}

func TestWorkflowService_Apply_MissingCollaboration(t *testing.T) {
	spy := &spyTransport{}
	service := NewWorkflowService(NewGrid(spy))

	err := service.Apply(context.Background(), &domain.Workflow{}, nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, spy.calls())
}

func TestWorkflowService_Apply_Cancelled(t *testing.T) {
	spy := &spyTransport{}
	service := NewWorkflowService(NewGrid(spy))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := service.Apply(ctx, testWorkflow(), nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, spy.calls())
}

func TestWorkflowService_Plan(t *testing.T) {
	service := NewWorkflowService(NewGrid(nil))

	plan := service.Plan(testWorkflow())

	require.Len(t, plan, 13)
	assert.Equal(t, domain.ResourceCollaboration, plan[0].Resource)
	assert.Equal(t, domain.ResourceAlignment, plan[9].Resource)
	assert.Equal(t, "test_project", plan[9].Keys.ProjectID)
	for _, ev := range plan {
		assert.Equal(t, domain.StepPending, ev.Status)
	}
}

func TestWorkflowService_Teardown(t *testing.T) {
	spy := &spyTransport{respond: func(req domain.Request) (*domain.Response, error) {
		if strings.Contains(req.Path, "worker_2") {
			return nil, &domain.ServiceError{StatusCode: http.StatusNotFound, Method: req.Method, Path: req.Path}
		}
		return okResponse(req.Method, map[string]any{}), nil
	}}
	service := NewWorkflowService(NewGrid(spy))

	var skipped int
	err := service.Teardown(context.Background(), testWorkflow(), func(ev domain.StepEvent) {
		if ev.Status == domain.StepSkipped {
			skipped++
		}
	})

	require.NoError(t, err)
	assert.Equal(t, 2, skipped)

	calls := spy.calls()
	require.Len(t, calls, 5)
	for _, req := range calls {
		assert.Equal(t, http.MethodDelete, req.Method)
	}
	assert.Equal(t, "/ttp/connect/collaborations/test_collab", calls[4].Path)
}

func TestWorkflowService_Teardown_StopsOnServerError(t *testing.T) {
	spy := &spyTransport{respond: func(req domain.Request) (*domain.Response, error) {
		return nil, &domain.ServiceError{StatusCode: http.StatusBadGateway, Method: req.Method, Path: req.Path}
	}}
	service := NewWorkflowService(NewGrid(spy))

	err := service.Teardown(context.Background(), testWorkflow(), nil)

	assert.ErrorIs(t, err, domain.ErrService)
	assert.Len(t, spy.calls(), 1)
}

func TestAlignTargets(t *testing.T) {
	assert.Equal(t, []string{"a"}, alignTargets(domain.WorkflowTrain{Align: []string{"a"}}))
	assert.Equal(t, []string{"p", "q"}, alignTargets(domain.WorkflowTrain{Models: []domain.Scope{
		{ProjectID: "p"}, {ProjectID: "q"}, {ProjectID: "p", ExptID: "e"},
	}}))
	assert.Empty(t, alignTargets(domain.WorkflowTrain{}))
}
