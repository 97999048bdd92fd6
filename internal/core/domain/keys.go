package domain

import "strings"

// Field names used in validation errors and payloads.
const (
	FieldCollabID      = "collab_id"
	FieldProjectID     = "project_id"
	FieldExptID        = "expt_id"
	FieldRunID         = "run_id"
	FieldParticipantID = "participant_id"
)

// Keys identifies a record on the TTP. Which fields are required depends on
// the resource being addressed.
type Keys struct {
	CollabID      string `json:"collab_id,omitempty" toml:"collab_id" yaml:"collab_id"`
	ProjectID     string `json:"project_id,omitempty" toml:"project_id" yaml:"project_id"`
	ExptID        string `json:"expt_id,omitempty" toml:"expt_id" yaml:"expt_id"`
	RunID         string `json:"run_id,omitempty" toml:"run_id" yaml:"run_id"`
	ParticipantID string `json:"participant_id,omitempty" toml:"participant_id" yaml:"participant_id"`
}

// Get returns the value of a key by field name.
func (k Keys) Get(field string) string {
	switch field {
	case FieldCollabID:
		return k.CollabID
	case FieldProjectID:
		return k.ProjectID
	case FieldExptID:
		return k.ExptID
	case FieldRunID:
		return k.RunID
	case FieldParticipantID:
		return k.ParticipantID
	default:
		return ""
	}
}

// Require returns a FieldError for the first listed field that is empty
// or whitespace only.
func (k Keys) Require(fields ...string) error {
	for _, f := range fields {
		if strings.TrimSpace(k.Get(f)) == "" {
			return Missing(f)
		}
	}
	return nil
}

// Present returns the names of the non-empty fields, in declaration order.
func (k Keys) Present() []string {
	all := []string{FieldCollabID, FieldProjectID, FieldExptID, FieldRunID, FieldParticipantID}
	present := make([]string, 0, len(all))
	for _, f := range all {
		if strings.TrimSpace(k.Get(f)) != "" {
			present = append(present, f)
		}
	}
	return present
}

// String renders the non-empty keys as "field=value" pairs.
func (k Keys) String() string {
	fields := k.Present()
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+"="+k.Get(f))
	}
	return strings.Join(parts, " ")
}
