package domain

import "encoding/json"

// Hyperparameters configure federated training for a run.
type Hyperparameters struct {
	Algorithm string `json:"algorithm" toml:"algorithm" yaml:"algorithm"`

	// BatchSize is omitted from the payload when nil, letting the TTP pick.
	BatchSize *int `json:"batch_size,omitempty" toml:"batch_size" yaml:"batch_size"`

	Rounds      int     `json:"rounds" toml:"rounds" yaml:"rounds"`
	Epochs      int     `json:"epochs" toml:"epochs" yaml:"epochs"`
	LR          float64 `json:"lr" toml:"lr" yaml:"lr"`
	WeightDecay float64 `json:"weight_decay" toml:"weight_decay" yaml:"weight_decay"`
	LRDecay     float64 `json:"lr_decay" toml:"lr_decay" yaml:"lr_decay"`
	Mu          float64 `json:"mu" toml:"mu" yaml:"mu"`
	L1Lambda    float64 `json:"l1_lambda" toml:"l1_lambda" yaml:"l1_lambda"`
	L2Lambda    float64 `json:"l2_lambda" toml:"l2_lambda" yaml:"l2_lambda"`
	Optimizer   string  `json:"optimizer" toml:"optimizer" yaml:"optimizer"`
	Criterion   string  `json:"criterion" toml:"criterion" yaml:"criterion"`
	LRScheduler string  `json:"lr_scheduler" toml:"lr_scheduler" yaml:"lr_scheduler"`
	Delta       float64 `json:"delta" toml:"delta" yaml:"delta"`
	Patience    int     `json:"patience" toml:"patience" yaml:"patience"`
	Seed        int     `json:"seed" toml:"seed" yaml:"seed"`
	IsSNN       bool    `json:"is_snn" toml:"is_snn" yaml:"is_snn"`

	// PrecisionFractional is the decimal precision kept under SMPC/HE.
	PrecisionFractional int `json:"precision_fractional" toml:"precision_fractional" yaml:"precision_fractional"`

	// BaseLR and MaxLR bound the cyclic learning-rate scheduler.
	BaseLR *float64 `json:"base_lr,omitempty" toml:"base_lr" yaml:"base_lr"`
	MaxLR  *float64 `json:"max_lr,omitempty" toml:"max_lr" yaml:"max_lr"`
}

// DefaultHyperparameters returns the TTP's documented defaults.
func DefaultHyperparameters() Hyperparameters {
	return Hyperparameters{
		Algorithm:           "FedProx",
		Rounds:              10,
		Epochs:              100,
		LR:                  0.001,
		WeightDecay:         0.0,
		LRDecay:             0.1,
		Mu:                  0.1,
		L1Lambda:            0.0,
		L2Lambda:            0.0,
		Optimizer:           "SGD",
		Criterion:           "BCELoss",
		LRScheduler:         "CyclicLR",
		Delta:               0.0,
		Patience:            10,
		Seed:                42,
		IsSNN:               false,
		PrecisionFractional: 5,
	}
}

// IsZero reports whether no hyperparameter was set.
func (h Hyperparameters) IsZero() bool {
	return h == Hyperparameters{}
}

// Run is one training configuration of an experiment.
type Run struct {
	ID              string `json:"run_id" toml:"id" yaml:"id"`
	Hyperparameters `yaml:",inline"`

	// Extra carries parameters the TTP accepts beyond the known set.
	// They are merged into the payload and override known keys.
	Extra map[string]any `json:"-" toml:"extra" yaml:"extra"`
}

// NewRun returns a run with default hyperparameters.
func NewRun(id string) Run {
	return Run{ID: id, Hyperparameters: DefaultHyperparameters()}
}

// Payload returns the creation body. A run with zero hyperparameters is
// sent with the defaults.
func (r Run) Payload() (map[string]any, error) {
	hp := r.Hyperparameters
	if hp.IsZero() {
		hp = DefaultHyperparameters()
	}

	raw, err := json.Marshal(hp)
	if err != nil {
		return nil, err
	}
	p := make(map[string]any)
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}

	p["run_id"] = r.ID
	for k, v := range r.Extra {
		p[k] = v
	}
	return p, nil
}
