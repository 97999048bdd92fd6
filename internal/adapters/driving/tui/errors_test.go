package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errs := []error{
		ErrMissingWorkflowService,
		ErrMissingWorkflow,
		ErrCancelled,
	}

	seen := make(map[string]bool)
	for _, err := range errs {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrMissingWorkflowService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingWorkflowService.Error(), "workflow service")
}
