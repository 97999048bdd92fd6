// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the driver to function:
//
//   - GridTransport: Sends one request to the TTP and decodes the envelope
//
// # Optional Interfaces
//
// These are only wired by the CLI:
//
//   - JournalStore: Request journal persistence (memory or SQLite)
//   - ConfigStore: Application configuration
//   - ManifestReader: Workflow manifests and request bodies from files
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
