package domain

// TagSet maps a participant's data partitions to their uses. Each tag is a
// list of path tokens into the worker's data directory.
type TagSet struct {
	Train    [][]string `json:"train" toml:"train" yaml:"train"`
	Evaluate [][]string `json:"evaluate" toml:"evaluate" yaml:"evaluate"`
	Predict  [][]string `json:"predict" toml:"predict" yaml:"predict"`
}

// Payload returns the creation body.
func (t TagSet) Payload() TagSet {
	if t.Train == nil {
		t.Train = [][]string{}
	}
	if t.Evaluate == nil {
		t.Evaluate = [][]string{}
	}
	if t.Predict == nil {
		t.Predict = [][]string{}
	}
	return t
}
