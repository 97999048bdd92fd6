package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

// spyTransport records requests and answers from a queue of responses.
type spyTransport struct {
	mu       sync.Mutex
	requests []domain.Request

	// respond returns the outcome of a request. When nil, every request
	// succeeds with an empty record.
	respond func(req domain.Request) (*domain.Response, error)
}

func (s *spyTransport) Do(_ context.Context, req domain.Request) (*domain.Response, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if s.respond != nil {
		return s.respond(req)
	}
	return okResponse(req.Method, map[string]any{}), nil
}

func (s *spyTransport) calls() []domain.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Request(nil), s.requests...)
}

func (s *spyTransport) last() domain.Request {
	calls := s.calls()
	if len(calls) == 0 {
		return domain.Request{}
	}
	return calls[len(calls)-1]
}

func okResponse(method string, data any) *domain.Response {
	raw, _ := json.Marshal(data)
	return &domain.Response{
		APIVersion: "0.1.0",
		Success:    1,
		Status:     200,
		Method:     method,
		Data:       raw,
	}
}
