package domain

// TrainingOptions toggle how the TTP orchestrates training and validation.
type TrainingOptions struct {
	// AutoAlign applies multiple feature alignment before the run.
	AutoAlign bool `json:"auto_align" toml:"auto_align" yaml:"auto_align"`

	// Dockerised reports that workers run in containers.
	Dockerised bool `json:"dockerised" toml:"dockerised" yaml:"dockerised"`

	Verbose bool `json:"verbose" toml:"verbose" yaml:"verbose"`
	LogMsgs bool `json:"log_msgs" toml:"log_msgs" yaml:"log_msgs"`
}

// DefaultTrainingOptions enables every toggle.
func DefaultTrainingOptions() TrainingOptions {
	return TrainingOptions{AutoAlign: true, Dockerised: true, Verbose: true, LogMsgs: true}
}

// SearchParam is one dimension of a hyperparameter search space.
type SearchParam struct {
	// Type is the sampling strategy, e.g. "choice" or "uniform".
	Type string `json:"_type" toml:"type" yaml:"type"`

	Value []any `json:"_value" toml:"value" yaml:"value"`
}

// Optimization configures a hyperparameter search over an experiment.
type Optimization struct {
	SearchSpace      map[string]SearchParam `json:"search_space" toml:"search_space" yaml:"search_space"`
	Tuner            string                 `json:"tuner" toml:"tuner" yaml:"tuner"`
	Metric           string                 `json:"metric" toml:"metric" yaml:"metric"`
	OptimizeMode     string                 `json:"optimize_mode" toml:"optimize_mode" yaml:"optimize_mode"`
	TrialConcurrency int                    `json:"trial_concurrency" toml:"trial_concurrency" yaml:"trial_concurrency"`
	MaxExecDuration  string                 `json:"max_exec_duration" toml:"max_exec_duration" yaml:"max_exec_duration"`
	MaxTrialNum      int                    `json:"max_trial_num" toml:"max_trial_num" yaml:"max_trial_num"`
	IsRemote         bool                   `json:"is_remote" toml:"is_remote" yaml:"is_remote"`
	UseAnnotation    bool                   `json:"use_annotation" toml:"use_annotation" yaml:"use_annotation"`
	Dockerised       bool                   `json:"dockerised" toml:"dockerised" yaml:"dockerised"`
	Verbose          bool                   `json:"verbose" toml:"verbose" yaml:"verbose"`
	LogMsgs          bool                   `json:"log_msgs" toml:"log_msgs" yaml:"log_msgs"`
}

// NewOptimization returns a search with the TTP's default budget.
func NewOptimization(tuner, metric, mode string, space map[string]SearchParam) Optimization {
	return Optimization{
		SearchSpace:      space,
		Tuner:            tuner,
		Metric:           metric,
		OptimizeMode:     mode,
		TrialConcurrency: 1,
		MaxExecDuration:  "1h",
		MaxTrialNum:      10,
		IsRemote:         true,
		UseAnnotation:    true,
		Dockerised:       true,
		Verbose:          true,
		LogMsgs:          true,
	}
}

// Validate checks the fields the TTP cannot default.
func (o Optimization) Validate() error {
	switch {
	case o.Tuner == "":
		return Missing("tuner")
	case o.Metric == "":
		return Missing("metric")
	case o.OptimizeMode == "":
		return Missing("optimize_mode")
	case len(o.SearchSpace) == 0:
		return Missing("search_space")
	}
	return nil
}

// PredictionOptions configure an inference request.
type PredictionOptions struct {
	// Tags maps a project ID to the prediction data tags of that project.
	Tags map[string][][]string `json:"tags" toml:"tags" yaml:"tags"`

	AutoAlign  bool `json:"auto_align" toml:"auto_align" yaml:"auto_align"`
	Dockerised bool `json:"dockerised" toml:"dockerised" yaml:"dockerised"`
}

// NewPredictionOptions returns options with alignment and containers enabled.
func NewPredictionOptions(tags map[string][][]string) PredictionOptions {
	return PredictionOptions{Tags: tags, AutoAlign: true, Dockerised: true}
}
