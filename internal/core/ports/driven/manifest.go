package driven

import "github.com/custodia-labs/synergos-cli/internal/core/domain"

// ManifestReader reads workflow manifests and request bodies from files.
// The encoding is chosen from the file extension.
type ManifestReader interface {
	// ReadWorkflow parses a workflow manifest.
	ReadWorkflow(path string) (*domain.Workflow, error)

	// Decode parses any file into v.
	Decode(path string, v any) error
}
