// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Synergos. It lets AI assistants inspect a TTP and trigger training,
// validation and prediction through the driver's services.
package mcp

import "errors"

// ErrMissingService is returned when a required service is not provided.
var ErrMissingService = errors.New("mcp: service is required")
