// Package driving defines interfaces that external actors (the public
// driver facade, CLI, MCP server and TUI) use to interact with core
// services. These are the "driving" ports in hexagonal architecture
// terminology - they drive the application.
//
// Every sub-resource of a TTP is exposed as one service interface. Records
// are addressed with domain.Keys; which keys are required depends on the
// resource.
//
// Implementations of these interfaces live in internal/core/services.
package driving
