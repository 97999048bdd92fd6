// Package manifest reads workflow manifests and request bodies from TOML,
// YAML or JSON files. The encoding is chosen by file extension.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.ManifestReader = (*Reader)(nil)

// Format is a supported file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf returns the encoding of a file by its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", domain.Invalid("file", fmt.Sprintf("%q must end in .toml, .yaml, .yml or .json", path))
	}
}

// Reader decodes files from disk.
type Reader struct {
	// Strict rejects keys that do not map to a field of the target.
	Strict bool
}

// NewReader creates a reader that rejects unknown keys.
func NewReader() *Reader {
	return &Reader{Strict: true}
}

// ReadWorkflow parses a TOML or YAML workflow manifest.
func (r *Reader) ReadWorkflow(path string) (*domain.Workflow, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	if format == FormatJSON {
		return nil, domain.Invalid("file", "workflow manifests must be TOML or YAML")
	}

	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	// Decode into a plain document first so omitted keys pick up their
	// defaults before the strict decode below.
	var doc map[string]any
	if err := r.decode(format, data, &doc); err != nil {
		return nil, parseError(path, err)
	}
	if data, err = encode(format, seedDefaults(doc, string(format))); err != nil {
		return nil, parseError(path, err)
	}

	var wf domain.Workflow
	if err := r.decode(format, data, &wf); err != nil {
		return nil, parseError(path, err)
	}
	if wf.Collaboration.ID == "" {
		return nil, domain.Invalid("file", fmt.Sprintf("%s: collaboration.id is required", path))
	}
	return &wf, nil
}

// Decode parses the file at path into v.
func (r *Reader) Decode(path string, v any) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	data, err := readFile(path)
	if err != nil {
		return err
	}

	if err := r.decode(format, data, v); err != nil {
		return parseError(path, err)
	}
	return nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, domain.Invalid("file", fmt.Sprintf("%s is empty", path))
	}
	return data, nil
}

func parseError(path string, err error) error {
	return fmt.Errorf("%w: failed to parse %s: %v", domain.ErrValidation, path, err)
}

func (r *Reader) decode(format Format, data []byte, v any) error {
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		if r.Strict {
			dec.DisallowUnknownFields()
		}
		return dec.Decode(v)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(r.Strict)
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		if r.Strict {
			dec.DisallowUnknownFields()
		}
		return dec.Decode(v)
	}
}
