package services

import (
	"context"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driving"
)

// Ensure ParticipantService implements the interface.
var _ driving.ParticipantService = (*ParticipantService)(nil)

// ParticipantService manages participants. Participants exist outside
// collaborations and are bound to projects by registrations.
type ParticipantService struct {
	task
}

// NewParticipantService creates a new participant service.
func NewParticipantService(transport driven.GridTransport) *ParticipantService {
	return &ParticipantService{task: newTask(domain.ResourceParticipant, transport)}
}

// Create registers a participant.
func (s *ParticipantService) Create(ctx context.Context, participant domain.Participant) (*domain.Response, error) {
	if err := (domain.Keys{ParticipantID: participant.ID}).Require(domain.FieldParticipantID); err != nil {
		return nil, err
	}
	return s.post(ctx, participantsPath(), participant.Payload())
}

// ReadAll lists every participant. Keys are ignored.
func (s *ParticipantService) ReadAll(ctx context.Context, _ domain.Keys) (*domain.Response, error) {
	return s.get(ctx, participantsPath())
}

// Read fetches one participant.
func (s *ParticipantService) Read(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	if err := keys.Require(domain.FieldParticipantID); err != nil {
		return nil, err
	}
	return s.get(ctx, participantPath(keys))
}

// Update modifies a participant.
func (s *ParticipantService) Update(ctx context.Context, keys domain.Keys, updates map[string]any) (*domain.Response, error) {
	if err := keys.Require(domain.FieldParticipantID); err != nil {
		return nil, err
	}
	return s.put(ctx, participantPath(keys), updates)
}

// Delete removes a participant and its registrations.
func (s *ParticipantService) Delete(ctx context.Context, keys domain.Keys) (*domain.Response, error) {
	if err := keys.Require(domain.FieldParticipantID); err != nil {
		return nil, err
	}
	return s.delete(ctx, participantPath(keys))
}
