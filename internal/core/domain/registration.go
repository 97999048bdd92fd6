package domain

import "fmt"

// Role is a participant's part in a project.
type Role string

const (
	// RoleGuest participates to obtain an enhanced model.
	RoleGuest Role = "guest"

	// RoleHost primarily contributes data.
	RoleHost Role = "host"

	// RoleArbiter is a trusted third party overseeing orchestration.
	RoleArbiter Role = "arbiter"
)

// Valid reports whether the role is known to the TTP.
func (r Role) Valid() bool {
	return r == RoleGuest || r == RoleHost || r == RoleArbiter
}

// Node is one of a participant's worker servers.
type Node struct {
	Host string `json:"host" toml:"host" yaml:"host"`

	// Port is the websocket port federated training runs on.
	Port int `json:"port" toml:"port" yaml:"port"`

	// FPort is the REST-RPC port orchestration calls are sent to.
	FPort int `json:"f_port" toml:"f_port" yaml:"f_port"`

	LogMsgs bool `json:"log_msgs" toml:"log_msgs" yaml:"log_msgs"`
	Verbose bool `json:"verbose" toml:"verbose" yaml:"verbose"`
}

// Registration binds a participant to a project with a role and the nodes
// it contributes.
type Registration struct {
	Role  Role   `json:"role" toml:"role" yaml:"role"`
	Nodes []Node `json:"nodes" toml:"nodes" yaml:"nodes"`
}

// NodeID returns the payload key of the node at index i.
func NodeID(i int) string {
	return fmt.Sprintf("node_%d", i)
}

// Payload returns the creation body. Duplicate nodes are sent once, keeping
// the order of first declaration.
func (r Registration) Payload() map[string]any {
	nodes := UniqueNodes(r.Nodes)
	p := map[string]any{
		"role":    r.Role,
		"n_count": len(nodes),
	}
	for i, n := range nodes {
		p[NodeID(i)] = n
	}
	return p
}

// UniqueNodes drops repeated nodes.
func UniqueNodes(nodes []Node) []Node {
	seen := make(map[Node]struct{}, len(nodes))
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
