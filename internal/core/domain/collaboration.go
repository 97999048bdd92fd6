package domain

// Port names used in Component.Ports.
const (
	PortMain       = "main"
	PortUI         = "ui"
	PortSysmetrics = "sysmetrics"
	PortDirector   = "director"
	PortTTP        = "ttp"
	PortWorker     = "worker"
)

// Component is the connection information of an auxiliary Synergos
// service (catalogue, logger, meter, MLOps tracker or message queue).
type Component struct {
	Host   string         `json:"host" toml:"host" yaml:"host"`
	Ports  map[string]int `json:"ports" toml:"ports" yaml:"ports"`
	Secure bool           `json:"secure" toml:"secure" yaml:"secure"`
}

// NewComponent declares a component reachable on a main port and an
// optional UI port.
func NewComponent(host string, port, uiPort int, secure bool) *Component {
	return &Component{
		Host:   host,
		Ports:  map[string]int{PortMain: port, PortUI: uiPort},
		Secure: secure,
	}
}

// NewLoggerComponent declares a Synergos Logger, which listens on one port
// per log stream.
func NewLoggerComponent(host string, port, sysmetrics, director, ttp, worker, uiPort int, secure bool) *Component {
	return &Component{
		Host: host,
		Ports: map[string]int{
			PortMain:       port,
			PortUI:         uiPort,
			PortSysmetrics: sysmetrics,
			PortDirector:   director,
			PortTTP:        ttp,
			PortWorker:     worker,
		},
		Secure: secure,
	}
}

// Collaboration groups projects that share infrastructure.
type Collaboration struct {
	ID string `json:"collab_id" toml:"id" yaml:"id"`

	// Catalogue is the dataset catalogue.
	Catalogue *Component `json:"catalogue,omitempty" toml:"catalogue" yaml:"catalogue"`

	// Logs is the centralised logger.
	Logs *Component `json:"logs,omitempty" toml:"logs" yaml:"logs"`

	// Meter is the contribution meter.
	Meter *Component `json:"meter,omitempty" toml:"meter" yaml:"meter"`

	// MLOps is the experiment tracker.
	MLOps *Component `json:"mlops,omitempty" toml:"mlops" yaml:"mlops"`

	// MQ is the message queue.
	MQ *Component `json:"mq,omitempty" toml:"mq" yaml:"mq"`
}

// Payload returns the creation body.
func (c Collaboration) Payload() map[string]any {
	p := map[string]any{"collab_id": c.ID}
	for key, comp := range c.components() {
		p[key] = comp
	}
	return p
}

// Configurations returns only the declared components, keyed by their
// payload name. It is sent on update.
func (c Collaboration) Configurations() map[string]any {
	p := make(map[string]any)
	for key, comp := range c.components() {
		p[key] = comp
	}
	return p
}

func (c Collaboration) components() map[string]*Component {
	all := map[string]*Component{
		"catalogue": c.Catalogue,
		"logs":      c.Logs,
		"meter":     c.Meter,
		"mlops":     c.MLOps,
		"mq":        c.MQ,
	}
	for key, comp := range all {
		if comp == nil {
			delete(all, key)
		}
	}
	return all
}
