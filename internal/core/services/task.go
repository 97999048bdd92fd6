package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driven"
)

// task sends the calls of one sub-resource. It holds no state besides the
// transport, so services are safe for concurrent use.
type task struct {
	resource  domain.Resource
	transport driven.GridTransport
}

func newTask(resource domain.Resource, transport driven.GridTransport) task {
	return task{resource: resource, transport: transport}
}

func (t task) send(ctx context.Context, method, path string, payload any) (*domain.Response, error) {
	if t.transport == nil {
		return nil, fmt.Errorf("%s: no transport configured: %w", t.resource, domain.ErrConnection)
	}
	return t.transport.Do(ctx, domain.Request{Method: method, Path: path, Payload: payload})
}

func (t task) get(ctx context.Context, path string) (*domain.Response, error) {
	return t.send(ctx, http.MethodGet, path, nil)
}

func (t task) post(ctx context.Context, path string, payload any) (*domain.Response, error) {
	return t.send(ctx, http.MethodPost, path, payload)
}

func (t task) put(ctx context.Context, path string, updates map[string]any) (*domain.Response, error) {
	if len(updates) == 0 {
		return nil, domain.Missing("updates")
	}
	return t.send(ctx, http.MethodPut, path, updates)
}

func (t task) delete(ctx context.Context, path string) (*domain.Response, error) {
	return t.send(ctx, http.MethodDelete, path, nil)
}

// generated implements the operations that phase 2/3 resources refuse.
// Their records are produced by the TTP and are read by scope only.
type generated struct {
	resource domain.Resource
}

// ReadAll is not offered by generated resources.
func (g generated) ReadAll(context.Context, domain.Keys) (*domain.Response, error) {
	return nil, domain.Unsupported(g.resource, "read_all")
}

// Update is not offered by generated resources.
func (g generated) Update(context.Context, domain.Keys, map[string]any) (*domain.Response, error) {
	return nil, domain.Unsupported(g.resource, "update")
}

// Delete is not offered by generated resources.
func (g generated) Delete(context.Context, domain.Keys) (*domain.Response, error) {
	return nil, domain.Unsupported(g.resource, "delete")
}
