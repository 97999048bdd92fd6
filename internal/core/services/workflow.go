package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driving"
	"github.com/custodia-labs/synergos-cli/internal/logger"
)

// Ensure WorkflowService implements the interface.
var _ driving.WorkflowService = (*WorkflowService)(nil)

// WorkflowService runs a full federated cycle against the TTP.
type WorkflowService struct {
	grid *Grid
}

// NewWorkflowService creates a new workflow service.
func NewWorkflowService(grid *Grid) *WorkflowService {
	return &WorkflowService{grid: grid}
}

// step is one TTP call of a workflow.
type step struct {
	phase    domain.Phase
	resource domain.Resource
	keys     domain.Keys
	call     func(ctx context.Context) error

	// absentOK reports a not-found error as skipped.
	absentOK bool
}

func (s step) event(i, total int, status domain.StepStatus) domain.StepEvent {
	return domain.StepEvent{
		Index:    i,
		Total:    total,
		Phase:    s.phase,
		Resource: s.resource,
		Keys:     s.keys,
		Status:   status,
	}
}

// Plan returns the steps Apply would run, each with StepPending status.
func (w *WorkflowService) Plan(wf *domain.Workflow) []domain.StepEvent {
	steps := w.applySteps(wf)
	events := make([]domain.StepEvent, len(steps))
	for i, s := range steps {
		events[i] = s.event(i, len(steps), domain.StepPending)
	}
	return events
}

// Apply runs the workflow in phase order (connect, train, evaluate) and
// stops at the first error.
func (w *WorkflowService) Apply(ctx context.Context, wf *domain.Workflow, observe driving.StepObserver) error {
	if wf == nil {
		return domain.Missing("workflow")
	}
	if err := (domain.Keys{CollabID: wf.Collaboration.ID}).Require(domain.FieldCollabID); err != nil {
		return err
	}

	logger.Section("Workflow Apply")
	steps := w.applySteps(wf)
	for i, s := range steps {
		if err := w.run(ctx, s, i, len(steps), observe); err != nil {
			return fmt.Errorf("step %d/%d %s %s: %w", i+1, len(steps), s.resource, s.keys, err)
		}
	}
	logger.Info("Workflow complete: %d steps", len(steps))
	return nil
}

// Teardown deletes the registrations, participants and collaboration
// declared by the workflow. Records already absent are reported as skipped.
func (w *WorkflowService) Teardown(ctx context.Context, wf *domain.Workflow, observe driving.StepObserver) error {
	if wf == nil {
		return domain.Missing("workflow")
	}
	if err := (domain.Keys{CollabID: wf.Collaboration.ID}).Require(domain.FieldCollabID); err != nil {
		return err
	}

	logger.Section("Workflow Teardown")
	steps := w.teardownSteps(wf)
	for i, s := range steps {
		err := w.run(ctx, s, i, len(steps), observe)
		if err == nil {
			continue
		}
		if s.absentOK && errors.Is(err, domain.ErrNotFound) {
			logger.Debug("%s %s already absent", s.resource, s.keys)
			continue
		}
		return fmt.Errorf("teardown %s %s: %w", s.resource, s.keys, err)
	}
	return nil
}

func (w *WorkflowService) run(ctx context.Context, s step, i, total int, observe driving.StepObserver) error {
	notify := func(ev domain.StepEvent) {
		if observe != nil {
			observe(ev)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	notify(s.event(i, total, domain.StepStarted))
	logger.Debug("[%d/%d] %s %s %s", i+1, total, s.phase, s.resource, s.keys)

	start := time.Now()
	err := s.call(ctx)

	ev := s.event(i, total, domain.StepSucceeded)
	ev.Elapsed = time.Since(start)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound) && s.absentOK:
		ev.Status = domain.StepSkipped
	default:
		ev.Status = domain.StepFailed
		ev.Err = err
	}
	notify(ev)
	return err
}

func (w *WorkflowService) applySteps(wf *domain.Workflow) []step {
	g := w.grid
	collab := wf.Collaboration
	base := domain.Keys{CollabID: collab.ID}
	var steps []step

	add := func(phase domain.Phase, r domain.Resource, keys domain.Keys, call func(ctx context.Context) error) {
		steps = append(steps, step{phase: phase, resource: r, keys: keys, call: call})
	}

	add(domain.PhaseConnect, domain.ResourceCollaboration, base, func(ctx context.Context) error {
		_, err := g.Collaborations.Create(ctx, collab)
		return err
	})
	for _, p := range wf.Projects {
		keys := base
		keys.ProjectID = p.ID
		add(domain.PhaseConnect, domain.ResourceProject, keys, func(ctx context.Context) error {
			_, err := g.Projects.Create(ctx, base, p)
			return err
		})
	}
	for _, e := range wf.Experiments {
		parent := domain.Keys{CollabID: collab.ID, ProjectID: e.ProjectID}
		keys := parent
		keys.ExptID = e.ID
		add(domain.PhaseConnect, domain.ResourceExperiment, keys, func(ctx context.Context) error {
			_, err := g.Experiments.Create(ctx, parent, e.Experiment)
			return err
		})
	}
	for _, r := range wf.Runs {
		parent := domain.Keys{CollabID: collab.ID, ProjectID: r.ProjectID, ExptID: r.ExptID}
		keys := parent
		keys.RunID = r.ID
		add(domain.PhaseConnect, domain.ResourceRun, keys, func(ctx context.Context) error {
			_, err := g.Runs.Create(ctx, parent, r.Run)
			return err
		})
	}
	for _, p := range wf.Participants {
		add(domain.PhaseConnect, domain.ResourceParticipant, domain.Keys{ParticipantID: p.ID}, func(ctx context.Context) error {
			_, err := g.Participants.Create(ctx, p)
			return err
		})
	}
	for _, r := range wf.Registrations {
		keys := domain.Keys{CollabID: collab.ID, ProjectID: r.ProjectID, ParticipantID: r.ParticipantID}
		add(domain.PhaseConnect, domain.ResourceRegistration, keys, func(ctx context.Context) error {
			_, err := g.Registrations.Create(ctx, keys, r.Registration)
			return err
		})
	}
	for _, t := range wf.Tags {
		keys := domain.Keys{CollabID: collab.ID, ProjectID: t.ProjectID, ParticipantID: t.ParticipantID}
		add(domain.PhaseConnect, domain.ResourceTag, keys, func(ctx context.Context) error {
			_, err := g.Tags.Create(ctx, keys, t.TagSet)
			return err
		})
	}

	trainOpts := domain.DefaultTrainingOptions()
	if wf.Train.Options != nil {
		trainOpts = *wf.Train.Options
	}
	for _, project := range alignTargets(wf.Train) {
		keys := domain.Keys{CollabID: collab.ID, ProjectID: project}
		add(domain.PhaseTrain, domain.ResourceAlignment, keys, func(ctx context.Context) error {
			_, err := g.Alignments.Create(ctx, keys)
			return err
		})
	}
	for _, scope := range wf.Train.Models {
		keys := scope.Keys(collab.ID)
		add(domain.PhaseTrain, domain.ResourceModel, keys, func(ctx context.Context) error {
			_, err := g.Models.Create(ctx, keys, trainOpts)
			return err
		})
	}
	for _, o := range wf.Train.Optimizations {
		keys := domain.Keys{CollabID: collab.ID, ProjectID: o.ProjectID, ExptID: o.ExptID}
		add(domain.PhaseTrain, domain.ResourceOptimization, keys, func(ctx context.Context) error {
			_, err := g.Optimizations.Create(ctx, keys, o.Optimization)
			return err
		})
	}

	evalOpts := domain.DefaultTrainingOptions()
	if wf.Evaluate.Options != nil {
		evalOpts = *wf.Evaluate.Options
	}
	for _, scope := range wf.Evaluate.Validations {
		keys := scope.Keys(collab.ID)
		add(domain.PhaseEvaluate, domain.ResourceValidation, keys, func(ctx context.Context) error {
			_, err := g.Validations.Create(ctx, keys, evalOpts)
			return err
		})
	}
	for _, p := range wf.Evaluate.Predictions {
		keys := p.Scope.Keys(collab.ID)
		opts := domain.NewPredictionOptions(p.Tags)
		opts.AutoAlign = evalOpts.AutoAlign
		opts.Dockerised = evalOpts.Dockerised
		add(domain.PhaseEvaluate, domain.ResourcePrediction, keys, func(ctx context.Context) error {
			_, err := g.Predictions.Create(ctx, keys, opts)
			return err
		})
	}
	return steps
}

// teardownSteps removes what the workflow created, children first. Runs,
// experiments and projects go with their collaboration.
func (w *WorkflowService) teardownSteps(wf *domain.Workflow) []step {
	g := w.grid
	base := domain.Keys{CollabID: wf.Collaboration.ID}
	var steps []step

	remove := func(r domain.Resource, keys domain.Keys, svc driving.RecordService) {
		steps = append(steps, step{
			phase:    domain.PhaseConnect,
			resource: r,
			keys:     keys,
			absentOK: true,
			call: func(ctx context.Context) error {
				_, err := svc.Delete(ctx, keys)
				return err
			},
		})
	}

	for _, r := range wf.Registrations {
		keys := domain.Keys{CollabID: base.CollabID, ProjectID: r.ProjectID, ParticipantID: r.ParticipantID}
		remove(domain.ResourceRegistration, keys, g.Registrations)
	}
	for _, p := range wf.Participants {
		remove(domain.ResourceParticipant, domain.Keys{ParticipantID: p.ID}, g.Participants)
	}
	remove(domain.ResourceCollaboration, base, g.Collaborations)
	return steps
}

// alignTargets returns the projects to align: the explicit list, or every
// project that has a model scope, in order of first appearance.
func alignTargets(train domain.WorkflowTrain) []string {
	if len(train.Align) > 0 {
		return train.Align
	}
	seen := make(map[string]bool)
	var projects []string
	for _, m := range train.Models {
		if m.ProjectID == "" || seen[m.ProjectID] {
			continue
		}
		seen[m.ProjectID] = true
		projects = append(projects, m.ProjectID)
	}
	return projects
}
