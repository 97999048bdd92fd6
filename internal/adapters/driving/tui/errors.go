package tui

import "errors"

// ErrMissingWorkflowService is returned when the workflow service is not provided.
var ErrMissingWorkflowService = errors.New("tui: workflow service is required")

// ErrMissingWorkflow is returned when no workflow is given to run.
var ErrMissingWorkflow = errors.New("tui: workflow is required")

// ErrCancelled is returned when the user quits before the workflow finishes.
var ErrCancelled = errors.New("tui: cancelled by user")
