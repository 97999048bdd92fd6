package domain

import (
	"encoding/json"
	"fmt"
)

// Request is a single call to the TTP.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, DELETE).
	Method string

	// Path is the endpoint path, starting with /ttp/.
	Path string

	// Payload is marshalled as the JSON body when non-nil.
	Payload any
}

// Response is the envelope every TTP endpoint returns.
type Response struct {
	APIVersion string          `json:"apiVersion"`
	Success    int             `json:"success"`
	Status     int             `json:"status"`
	Method     string          `json:"method"`
	Params     map[string]any  `json:"params,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// OK reports whether the TTP flagged the call as successful.
func (r *Response) OK() bool {
	return r != nil && r.Success == 1
}

// DecodeData unmarshals the data field into v.
func (r *Response) DecodeData(v any) error {
	if r == nil || len(r.Data) == 0 {
		return fmt.Errorf("%w: response has no data", ErrService)
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("%w: decode data: %v", ErrService, err)
	}
	return nil
}

// Record decodes the data field as a single JSON object.
func (r *Response) Record() (map[string]any, error) {
	var rec map[string]any
	if err := r.DecodeData(&rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Records decodes the data field as a list of JSON objects.
func (r *Response) Records() ([]map[string]any, error) {
	var recs []map[string]any
	if err := r.DecodeData(&recs); err != nil {
		return nil, err
	}
	return recs, nil
}
