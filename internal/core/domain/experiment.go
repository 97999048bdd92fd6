package domain

import "encoding/json"

// Layer describes one layer of an experiment's model architecture.
type Layer struct {
	// Activation is the activation function name. Empty marshals as null,
	// which the TTP reads as "no activation" (e.g. for Flatten).
	Activation string `json:"-" toml:"activation" yaml:"activation"`

	IsInput bool   `json:"is_input" toml:"is_input" yaml:"is_input"`
	LType   string `json:"l_type" toml:"l_type" yaml:"l_type"`

	// Structure holds the layer's constructor arguments.
	Structure map[string]any `json:"structure" toml:"structure" yaml:"structure"`
}

// layerJSON carries a nullable activation on the wire.
type layerJSON struct {
	Activation *string        `json:"activation"`
	IsInput    bool           `json:"is_input"`
	LType      string         `json:"l_type"`
	Structure  map[string]any `json:"structure"`
}

// MarshalJSON writes an empty activation as null.
func (l Layer) MarshalJSON() ([]byte, error) {
	out := layerJSON{IsInput: l.IsInput, LType: l.LType, Structure: l.Structure}
	if l.Activation != "" {
		act := l.Activation
		out.Activation = &act
	}
	if out.Structure == nil {
		out.Structure = map[string]any{}
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads a null activation as empty.
func (l *Layer) UnmarshalJSON(data []byte) error {
	var in layerJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	l.IsInput = in.IsInput
	l.LType = in.LType
	l.Structure = in.Structure
	l.Activation = ""
	if in.Activation != nil {
		l.Activation = *in.Activation
	}
	return nil
}

// Experiment is a model architecture evaluated within a project.
type Experiment struct {
	ID    string  `json:"expt_id" toml:"id" yaml:"id"`
	Model []Layer `json:"model" toml:"model" yaml:"model"`
}

// Payload returns the creation body.
func (e Experiment) Payload() map[string]any {
	model := e.Model
	if model == nil {
		model = []Layer{}
	}
	return map[string]any{"expt_id": e.ID, "model": model}
}
