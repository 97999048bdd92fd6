package services

import (
	"context"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driving"
)

// Ensure ProjectService implements the interface.
var _ driving.ProjectService = (*ProjectService)(nil)

// ProjectService manages projects within a collaboration.
type ProjectService struct {
	task
}

// NewProjectService creates a new project service.
func NewProjectService(transport driven.GridTransport) *ProjectService {
	return &ProjectService{task: newTask(domain.ResourceProject, transport)}
}

// Create registers a project under keys.CollabID.
func (s *ProjectService) Create(ctx context.Context, keys domain.Keys, project domain.Project) (*domain.Response, error) {
	keys.ProjectID = project.ID
	if err := keys.Require(domain.FieldCollabID, domain.FieldProjectID); err != nil {
		return nil, err
	}
	if project.Action == "" {
		return nil, domain.Missing("action")
	}
	if !project.Action.Valid() {
		return nil, domain.Invalid("action", "must be classify or regress")
	}
	return s.post(ctx, projectsPath(keys), project.Payload())
}

// ReadAll lists the projects of a collaboration.
func (s *ProjectService) ReadAll(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	if err := keys.Require(domain.FieldCollabID); err != nil {
		return nil, err
	}
	return s.get(ctx, projectsPath(keys))
}

// Read fetches one project.
func (s *ProjectService) Read(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	if err := keys.Require(domain.FieldCollabID, domain.FieldProjectID); err != nil {
		return nil, err
	}
	return s.get(ctx, projectPath(keys))
}

// Update modifies a project.
func (s *ProjectService) Update(ctx context.Context, keys domain.Keys, updates map[string]any) (*domain.Response, error) {
	if err := keys.Require(domain.FieldCollabID, domain.FieldProjectID); err != nil {
		return nil, err
	}
	return s.put(ctx, projectPath(keys), updates)
}

// Delete removes a project.
func (s *ProjectService) Delete(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	if err := keys.Require(domain.FieldCollabID, domain.FieldProjectID); err != nil {
		return nil, err
	}
	return s.delete(ctx, projectPath(keys))
}
