package services

import (
	"context"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driving"
)

// Ensure CollaborationService implements the interface.
var _ driving.CollaborationService = (*CollaborationService)(nil)

// CollaborationService manages collaborations on the TTP.
type CollaborationService struct {
	task
}

// NewCollaborationService creates a new collaboration service.
func NewCollaborationService(transport driven.GridTransport) *CollaborationService {
	return &CollaborationService{task: newTask(domain.ResourceCollaboration, transport)}
}

// Create registers a collaboration and its auxiliary components.
func (s *CollaborationService) Create(ctx context.Context, collab domain.Collaboration) (*domain.Response, error) {
	if err := (domain.Keys{CollabID: collab.ID}).Require(domain.FieldCollabID); err != nil {
		return nil, err
	}
	return s.post(ctx, collaborationsPath(), collab.Payload())
}

// ReadAll lists every collaboration. Keys are ignored.
func (s *CollaborationService) ReadAll(ctx context.Context, _ domain.Keys) (*domain.Response, error) {
	return s.get(ctx, collaborationsPath())
}

// Read fetches one collaboration.
func (s *CollaborationService) Read(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	if err := keys.Require(domain.FieldCollabID); err != nil {
		return nil, err
	}
	return s.get(ctx, collaborationPath(keys))
}

// Update replaces component configurations of a collaboration.
func (s *CollaborationService) Update(ctx context.Context, keys domain.Keys, updates map[string]any) (*domain.Response, error) {
	if err := keys.Require(domain.FieldCollabID); err != nil {
		return nil, err
	}
	return s.put(ctx, collaborationPath(keys), updates)
}

// Delete removes a collaboration and everything under it.
func (s *CollaborationService) Delete(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	if err := keys.Require(domain.FieldCollabID); err != nil {
		return nil, err
	}
	return s.delete(ctx, collaborationPath(keys))
}
