package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

var workflowManifest = filepath.Join("..", "..", "driven", "manifest", "testdata", "workflow.toml")

func TestWorkflowCmd_Flags(t *testing.T) {
	f := workflowCmd.PersistentFlags().Lookup("file")
	require.NotNil(t, f)
	assert.Equal(t, "f", f.Shorthand)
	assert.NotNil(t, workflowCmd.PersistentFlags().Lookup("no-tui"))
}

func TestWorkflowCmd_ApplyThenTeardown(t *testing.T) {
	dir := t.TempDir()
	base := ttp(t)

	out, err := runIn(t, dir, append([]string{"workflow", "apply", "-f", workflowManifest}, base...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "workflow apply: test_collab")
	assert.Contains(t, out, "collaboration")
	assert.Contains(t, out, "collab_id=test_collab")
	assert.Contains(t, out, "workflow apply complete")
	assert.NotContains(t, out, "failed")

	out, err = runIn(t, dir, append([]string{"model", "get", "--collab-id", "test_collab", "--project-id", "test_project",
		"--expt-id", "test_experiment", "--run-id", "test_run"}, base...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "test_run")

	out, err = runIn(t, dir, append([]string{"workflow", "teardown", "-f", workflowManifest}, base...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "workflow teardown complete")

	_, err = runIn(t, dir, append([]string{"collaboration", "get", "--collab-id", "test_collab"}, base...)...)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWorkflowCmd_TeardownIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	base := ttp(t)

	out, err := runIn(t, dir, append([]string{"workflow", "teardown", "--no-tui", "-f", workflowManifest}, base...)...)

	require.NoError(t, err)
	assert.Contains(t, out, "skipped")
	assert.Contains(t, out, "workflow teardown complete")
}

func TestWorkflowCmd_RequiresFile(t *testing.T) {
	_, err := runIn(t, t.TempDir(), "workflow", "apply", "--journal", "memory")

	assert.ErrorContains(t, err, "file")
}

func TestWorkflowCmd_MissingManifest(t *testing.T) {
	dir := t.TempDir()

	_, err := runIn(t, dir, "workflow", "apply", "-f", filepath.Join(dir, "absent.toml"), "--journal", "memory")

	assert.Error(t, err)
}

func TestWorkflowCmd_Unreachable(t *testing.T) {
	dir := t.TempDir()

	// Port 1 is never served by a TTP.
	_, err := runIn(t, dir, "workflow", "apply", "-f", workflowManifest, "--journal", "memory", "--port", "1", "--host", "127.0.0.1")

	assert.ErrorIs(t, err, domain.ErrConnection)
	assert.ErrorContains(t, err, "workflow apply")
}

func TestStepLine(t *testing.T) {
	ev := domain.StepEvent{
		Index:    0,
		Total:    3,
		Phase:    "connect",
		Resource: domain.ResourceProject,
		Keys:     domain.Keys{CollabID: "c", ProjectID: "p"},
	}

	ev.Status = domain.StepStarted
	assert.Empty(t, stepLine(ev))

	ev.Status = domain.StepSucceeded
	line := stepLine(ev)
	assert.Contains(t, line, "[1/3]")
	assert.Contains(t, line, "collab_id=c project_id=p")
	assert.Contains(t, line, "ok")

	ev.Status = domain.StepSkipped
	assert.Contains(t, stepLine(ev), "skipped")

	ev.Status = domain.StepFailed
	ev.Err = domain.Missing("collab_id")
	line = stepLine(ev)
	assert.Contains(t, line, "failed")
	assert.Contains(t, line, "collab_id is required")
}
