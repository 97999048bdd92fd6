package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for Synergos resources.
	uriScheme = "synergos://"

	// historyLimit caps the entries returned by the history resource.
	historyLimit = 100
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the request journal.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Most recent calls made to the TTP",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	// Template for the projects of a collaboration.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "collaborations/{collabId}/projects",
		Name:        "collaboration-projects",
		Description: "Projects registered under a collaboration",
		MIMEType:    "application/json",
	}, s.handleProjectsResource)
}

// handleHistoryResource returns the journal, newest first.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return jsonResource(req.Params.URI, "[]"), nil
	}

	entries, err := s.ports.History.List(ctx, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	// Build simplified entry list.
	type entryInfo struct {
		ID         string `json:"id"`
		Time       string `json:"time"`
		Method     string `json:"method"`
		Path       string `json:"path"`
		StatusCode int    `json:"status_code"`
		DurationMS int64  `json:"duration_ms"`
		Error      string `json:"error,omitempty"`
	}

	infos := make([]entryInfo, len(entries))
	for i, e := range entries {
		infos[i] = entryInfo{
			ID:         e.ID,
			Time:       e.Time.UTC().Format("2006-01-02T15:04:05Z"),
			Method:     e.Method,
			Path:       e.Path,
			StatusCode: e.StatusCode,
			DurationMS: e.Duration.Milliseconds(),
			Error:      e.Error,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}
	return jsonResource(req.Params.URI, string(data)), nil
}

// handleProjectsResource returns the projects of one collaboration.
func (s *Server) handleProjectsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract collabId from URI: synergos://collaborations/{collabId}/projects
	collabID := extractCollabID(req.Params.URI)
	if collabID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	resp, err := s.ports.Projects.ReadAll(ctx, domain.Keys{CollabID: collabID})
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	text := "[]"
	if len(resp.Data) > 0 {
		text = string(resp.Data)
	}
	return jsonResource(req.Params.URI, text), nil
}

func jsonResource(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}

// extractCollabID extracts the collaboration ID from a URI like
// synergos://collaborations/{collabId}/projects.
func extractCollabID(uri string) string {
	const prefix = uriScheme + "collaborations/"
	const suffix = "/projects"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	id, err := url.PathUnescape(strings.TrimSuffix(uri, suffix))
	if err != nil {
		return ""
	}
	return id
}
