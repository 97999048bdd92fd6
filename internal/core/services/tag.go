package services

import (
	"context"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driving"
)

// Ensure TagService implements the interface.
var _ driving.TagService = (*TagService)(nil)

// TagService manages the data tags of a registration.
type TagService struct {
	task
}

// NewTagService creates a new tag service.
func NewTagService(transport driven.GridTransport) *TagService {
	return &TagService{task: newTask(domain.ResourceTag, transport)}
}

// Create declares the tags of a registration.
func (s *TagService) Create(ctx context.Context, keys domain.Keys, tags domain.TagSet) (*domain.Response, error) {
	if err := keys.Require(registrationKeys...); err != nil {
		return nil, err
	}
	return s.post(ctx, tagsPath(keys), tags.Payload())
}

// ReadAll returns the tags of a registration. A registration holds a
// single tag set, so this is the same call as Read.
func (s *TagService) ReadAll(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	return s.Read(ctx, keys)
}

// Read fetches the tags of a registration.
func (s *TagService) Read(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	if err := keys.Require(registrationKeys...); err != nil {
		return nil, err
	}
	return s.get(ctx, tagsPath(keys))
}

// Update modifies the tags of a registration.
func (s *TagService) Update(ctx context.Context, keys domain.Keys, updates map[string]any) (*domain.Response, error) {
	if err := keys.Require(registrationKeys...); err != nil {
		return nil, err
	}
	return s.put(ctx, tagsPath(keys), updates)
}

// Delete removes the tags of a registration.
func (s *TagService) Delete(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	if err := keys.Require(registrationKeys...); err != nil {
		return nil, err
	}
	return s.delete(ctx, tagsPath(keys))
}
