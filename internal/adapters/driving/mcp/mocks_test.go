package mcp

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/services"
)

// mockTransport is a mock implementation of driven.GridTransport.
type mockTransport struct {
	mu       sync.Mutex
	requests []domain.Request
	data     any
	err      error
}

func (m *mockTransport) Do(_ context.Context, req domain.Request) (*domain.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	raw, _ := json.Marshal(m.data)
	return &domain.Response{Success: 1, Status: 200, Method: "mock", Data: raw}, nil
}

func (m *mockTransport) last() domain.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return domain.Request{}
	}
	return m.requests[len(m.requests)-1]
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	entries []domain.JournalEntry
	err     error
}

func (m *mockHistoryService) List(_ context.Context, limit int) ([]domain.JournalEntry, error) {
	if limit > 0 && len(m.entries) > limit {
		return m.entries[:limit], m.err
	}
	return m.entries, m.err
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	return m.err
}

// newPorts wires every port to services over transport.
func newPorts(transport *mockTransport) *Ports {
	g := services.NewGrid(transport)
	return &Ports{
		Collaborations: g.Collaborations,
		Projects:       g.Projects,
		Experiments:    g.Experiments,
		Runs:           g.Runs,
		Registrations:  g.Registrations,
		Alignments:     g.Alignments,
		Models:         g.Models,
		Validations:    g.Validations,
		Predictions:    g.Predictions,
	}
}

func newTestServer(transport *mockTransport) *Server {
	s, err := NewServer(newPorts(transport))
	if err != nil {
		panic(err)
	}
	return s
}
