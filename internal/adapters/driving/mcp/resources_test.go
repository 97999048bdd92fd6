package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

func TestExtractCollabID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{name: "valid uri", uri: "synergos://collaborations/test_collab/projects", expected: "test_collab"},
		{name: "escaped id", uri: "synergos://collaborations/team%20a%2Fb/projects", expected: "team a/b"},
		{name: "wrong scheme", uri: "other://collaborations/c/projects", expected: ""},
		{name: "missing suffix", uri: "synergos://collaborations/c", expected: ""},
		{name: "empty id", uri: "synergos://collaborations//projects", expected: ""},
		{name: "bad escape", uri: "synergos://collaborations/%zz/projects", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractCollabID(tt.uri))
		})
	}
}

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}
}

func TestServer_handleHistoryResource(t *testing.T) {
	ctx := context.Background()

	t.Run("without journal", func(t *testing.T) {
		server := newTestServer(&mockTransport{})

		result, err := server.handleHistoryResource(ctx, readRequest("synergos://history"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("lists entries", func(t *testing.T) {
		ports := newPorts(&mockTransport{})
		ports.History = &mockHistoryService{entries: []domain.JournalEntry{{
			ID:         "1",
			Time:       time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			Method:     "POST",
			Path:       "/ttp/connect/participants",
			StatusCode: 201,
			Duration:   1500 * time.Millisecond,
		}}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		result, err := server.handleHistoryResource(ctx, readRequest("synergos://history"))
		require.NoError(t, err)

		text := result.Contents[0].Text
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, text, `"path": "/ttp/connect/participants"`)
		assert.Contains(t, text, `"duration_ms": 1500`)
		assert.Contains(t, text, `"time": "2024-01-02T03:04:05Z"`)
		assert.NotContains(t, text, `"error"`)
	})

	t.Run("journal error", func(t *testing.T) {
		ports := newPorts(&mockTransport{})
		ports.History = &mockHistoryService{err: errors.New("disk full")}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, err = server.handleHistoryResource(ctx, readRequest("synergos://history"))
		assert.ErrorContains(t, err, "disk full")
	})
}

func TestServer_handleProjectsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("lists projects", func(t *testing.T) {
		transport := &mockTransport{data: []map[string]any{{"project_id": "p"}}}
		server := newTestServer(transport)

		result, err := server.handleProjectsResource(ctx, readRequest("synergos://collaborations/c/projects"))
		require.NoError(t, err)

		assert.JSONEq(t, `[{"project_id":"p"}]`, result.Contents[0].Text)
		assert.Equal(t, "/ttp/connect/collaborations/c/projects", transport.last().Path)
	})

	t.Run("unknown uri", func(t *testing.T) {
		transport := &mockTransport{}
		server := newTestServer(transport)

		_, err := server.handleProjectsResource(ctx, readRequest("synergos://collaborations/c"))
		assert.Error(t, err)
		assert.Empty(t, transport.requests)
	})

	t.Run("transport error", func(t *testing.T) {
		transport := &mockTransport{err: domain.ErrConnection}
		server := newTestServer(transport)

		_, err := server.handleProjectsResource(ctx, readRequest("synergos://collaborations/c/projects"))
		assert.ErrorIs(t, err, domain.ErrConnection)
	})
}
