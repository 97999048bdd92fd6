package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driving"
)

// Ensure RegistrationService implements the interface.
var _ driving.RegistrationService = (*RegistrationService)(nil)

var registrationKeys = []string{domain.FieldCollabID, domain.FieldProjectID, domain.FieldParticipantID}

// registrationListings maps each accepted key combination of ReadAll to
// its endpoint.
var registrationListings = []struct {
	fields []string
	path   func(domain.Keys) string
}{
	{
		fields: []string{domain.FieldParticipantID},
		path: func(k domain.Keys) string {
			return route(participantPath(k), "registrations")
		},
	},
	{
		fields: []string{domain.FieldCollabID, domain.FieldParticipantID},
		path: func(k domain.Keys) string {
			return route(participantPath(k), "collaborations", seg(k.CollabID), "registrations")
		},
	},
	{
		fields: []string{domain.FieldCollabID},
		path: func(k domain.Keys) string {
			return route(collaborationPath(k), "registrations")
		},
	},
	{
		fields: []string{domain.FieldCollabID, domain.FieldProjectID},
		path: func(k domain.Keys) string {
			return route(projectPath(k), "registrations")
		},
	},
}

// RegistrationService manages the enrolment of participants in projects.
type RegistrationService struct {
	task
}

// NewRegistrationService creates a new registration service.
func NewRegistrationService(transport driven.GridTransport) *RegistrationService {
	return &RegistrationService{task: newTask(domain.ResourceRegistration, transport)}
}

// Create registers a participant to a project. An existing registration
// for the same keys is deleted first. The participant must already exist
// on the TTP, otherwise the error matches domain.ErrNotFound.
func (s *RegistrationService) Create(ctx context.Context, keys domain.Keys, reg domain.Registration) (*domain.Response, error) {
	if err := keys.Require(registrationKeys...); err != nil {
		return nil, err
	}
	if !reg.Role.Valid() {
		return nil, domain.Invalid("role", "must be host, guest or arbiter")
	}
	if len(reg.Nodes) == 0 {
		return nil, domain.Invalid("nodes", "must declare at least one node")
	}

	if _, err := s.delete(ctx, registrationPath(keys)); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("replace registration: %w", err)
	}
	return s.post(ctx, registrationPath(keys), reg.Payload())
}

// ReadAll lists registrations for one of the key combinations
// {participant}, {collab, participant}, {collab} or {collab, project}.
func (s *RegistrationService) ReadAll(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	present := keys.Present()
	for _, l := range registrationListings {
		if slices.Equal(present, l.fields) {
			return s.get(ctx, l.path(keys))
		}
	}
	return nil, domain.Invalid("keys", fmt.Sprintf(
		"[%s] is not a supported filter; use participant, collab+participant, collab or collab+project",
		strings.Join(present, ", ")))
}

// Read fetches one registration.
func (s *RegistrationService) Read(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	if err := keys.Require(registrationKeys...); err != nil {
		return nil, err
	}
	return s.get(ctx, registrationPath(keys))
}

// Update modifies a registration.
func (s *RegistrationService) Update(ctx context.Context, keys domain.Keys, updates map[string]any) (*domain.Response, error) {
	if err := keys.Require(registrationKeys...); err != nil {
		return nil, err
	}
	return s.put(ctx, registrationPath(keys), updates)
}

// Delete removes a registration and its tags.
func (s *RegistrationService) Delete(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	if err := keys.Require(registrationKeys...); err != nil {
		return nil, err
	}
	return s.delete(ctx, registrationPath(keys))
}
