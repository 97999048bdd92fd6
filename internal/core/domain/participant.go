package domain

// Participant is a worker organisation holding private data.
type Participant struct {
	ID       string            `json:"id" toml:"id" yaml:"id"`
	Category []string          `json:"category" toml:"category" yaml:"category"`
	Summary  string            `json:"summary" toml:"summary" yaml:"summary"`
	Phone    string            `json:"phone,omitempty" toml:"phone" yaml:"phone"`
	Email    string            `json:"email,omitempty" toml:"email" yaml:"email"`
	Socials  map[string]string `json:"socials" toml:"socials" yaml:"socials"`

	// Host, Port and FPort are the worker's connection metadata. Current TTP
	// releases take them per registration node instead; they are sent only
	// when set.
	Host  string `json:"host,omitempty" toml:"host" yaml:"host"`
	Port  int    `json:"port,omitempty" toml:"port" yaml:"port"`
	FPort int    `json:"f_port,omitempty" toml:"f_port" yaml:"f_port"`
}

// Payload returns the creation body.
func (p Participant) Payload() Participant {
	if p.Category == nil {
		p.Category = []string{}
	}
	if p.Socials == nil {
		p.Socials = map[string]string{}
	}
	return p
}
