package domain

// Action is the learning task of a project.
type Action string

const (
	ActionClassify Action = "classify"
	ActionRegress  Action = "regress"
)

// Valid reports whether the action is known to the TTP.
func (a Action) Valid() bool {
	return a == ActionClassify || a == ActionRegress
}

// Project is a learning task within a collaboration.
type Project struct {
	ID     string `json:"project_id" toml:"id" yaml:"id"`
	Action Action `json:"action" toml:"action" yaml:"action"`

	// Incentives maps a tier name to the participants in that tier.
	Incentives map[string][]string `json:"incentives" toml:"incentives" yaml:"incentives"`
}

// Payload returns the creation body.
func (p Project) Payload() map[string]any {
	incentives := p.Incentives
	if incentives == nil {
		incentives = map[string][]string{}
	}
	return map[string]any{
		"project_id": p.ID,
		"action":     p.Action,
		"incentives": incentives,
	}
}
