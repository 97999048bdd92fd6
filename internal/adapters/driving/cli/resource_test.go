package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

func TestRecordCmds_Subcommands(t *testing.T) {
	tests := []struct {
		resource string
		want     []string
	}{
		{resource: "collaboration", want: []string{"create", "delete", "get", "list", "update"}},
		{resource: "registration", want: []string{"create", "delete", "get", "list", "update"}},
		{resource: "model", want: []string{"create", "get"}},
		{resource: "prediction", want: []string{"create", "get"}},
	}

	for _, tt := range tests {
		t.Run(tt.resource, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{tt.resource})
			require.NoError(t, err)

			var names []string
			for _, sub := range cmd.Commands() {
				names = append(names, sub.Name())
			}
			assert.ElementsMatch(t, tt.want, names)
		})
	}
}

func TestRecordCmds_KeyFlags(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"validation", "create"})
	require.NoError(t, err)

	for _, name := range []string{"collab-id", "project-id", "expt-id", "run-id", "participant-id", "file"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Nil(t, cmd.Flags().Lookup("set"))
}

func TestRecordCmds_CRUD(t *testing.T) {
	dir := t.TempDir()
	base := ttp(t)
	cli := func(args ...string) (string, error) {
		return runIn(t, dir, append(args, base...)...)
	}

	out, err := cli("collaboration", "create", "--collab-id", "c1")
	require.NoError(t, err)
	assert.Contains(t, out, `"collab_id": "c1"`)

	project := writeFile(t, dir, "project.json", `{"action": "classify"}`)
	out, err = cli("project", "create", "--collab-id", "c1", "--project-id", "p1", "-f", project)
	require.NoError(t, err)
	assert.Contains(t, out, `"project_id": "p1"`)
	assert.Contains(t, out, `"action": "classify"`)

	out, err = cli("project", "list", "--collab-id", "c1")
	require.NoError(t, err)
	assert.Contains(t, out, `"project_id": "p1"`)

	_, err = cli("project", "update", "--collab-id", "c1", "--project-id", "p1", "--set", "action=regress", "--set", "rounds=3")
	require.NoError(t, err)

	out, err = cli("project", "get", "--collab-id", "c1", "--project-id", "p1")
	require.NoError(t, err)
	assert.Contains(t, out, `"action": "regress"`)
	assert.Contains(t, out, `"rounds": 3`)

	_, err = cli("collaboration", "delete", "--collab-id", "c1")
	require.NoError(t, err)

	_, err = cli("project", "get", "--collab-id", "c1", "--project-id", "p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorContains(t, err, "project get")
}

func TestRecordCmds_RunKeepsUnsetDefaults(t *testing.T) {
	dir := t.TempDir()
	base := ttp(t)
	cli := func(args ...string) (string, error) {
		return runIn(t, dir, append(args, base...)...)
	}

	_, err := cli("collaboration", "create", "--collab-id", "c1")
	require.NoError(t, err)
	project := writeFile(t, dir, "project.json", `{"action": "classify"}`)
	_, err = cli("project", "create", "--collab-id", "c1", "--project-id", "p1", "-f", project)
	require.NoError(t, err)
	expt := writeFile(t, dir, "experiment.yaml", `model:
  - activation: sigmoid
    is_input: true
    l_type: Linear
    structure:
      in_features: 15
      out_features: 1
`)
	_, err = cli("experiment", "create", "--collab-id", "c1", "--project-id", "p1", "--expt-id", "e1", "-f", expt)
	require.NoError(t, err)

	body := writeFile(t, dir, "run.toml", "rounds = 2\nlr = 0.01\n")
	out, err := cli("run", "create", "--collab-id", "c1", "--project-id", "p1", "--expt-id", "e1", "--run-id", "r1", "-f", body)
	require.NoError(t, err)

	assert.Contains(t, out, `"rounds": 2`)
	assert.Contains(t, out, `"lr": 0.01`)
	assert.Contains(t, out, `"epochs": 100`)
	assert.Contains(t, out, `"optimizer": "SGD"`)
	assert.Contains(t, out, `"criterion": "BCELoss"`)
	assert.Contains(t, out, `"algorithm": "FedProx"`)
}

func TestRecordCmds_RegistrationNeedsParticipant(t *testing.T) {
	dir := t.TempDir()
	base := ttp(t)
	cli := func(args ...string) (string, error) {
		return runIn(t, dir, append(args, base...)...)
	}

	_, err := cli("collaboration", "create", "--collab-id", "c1")
	require.NoError(t, err)
	project := writeFile(t, dir, "project.json", `{"action": "classify"}`)
	_, err = cli("project", "create", "--collab-id", "c1", "--project-id", "p1", "-f", project)
	require.NoError(t, err)

	reg := writeFile(t, dir, "registration.yaml", `role: host
nodes:
  - host: 172.17.0.2
    port: 8020
    f_port: 5000
`)
	keys := []string{"--collab-id", "c1", "--project-id", "p1", "--participant-id", "w1"}

	_, err = cli(append([]string{"registration", "create", "-f", reg}, keys...)...)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = cli("participant", "create", "--participant-id", "w1")
	require.NoError(t, err)
	out, err := cli(append([]string{"registration", "create", "-f", reg}, keys...)...)
	require.NoError(t, err)
	assert.Contains(t, out, `"role": "host"`)

	out, err = cli("registration", "list", "--participant-id", "w1")
	require.NoError(t, err)
	assert.Contains(t, out, `"project_id": "p1"`)
}

func TestRecordCmds_AlignmentNeedsRegistrations(t *testing.T) {
	dir := t.TempDir()
	base := ttp(t)
	cli := func(args ...string) (string, error) {
		return runIn(t, dir, append(args, base...)...)
	}

	_, err := cli("collaboration", "create", "--collab-id", "c1")
	require.NoError(t, err)
	project := writeFile(t, dir, "project.json", `{"action": "classify"}`)
	_, err = cli("project", "create", "--collab-id", "c1", "--project-id", "p1", "-f", project)
	require.NoError(t, err)

	_, err = cli("alignment", "create", "--collab-id", "c1", "--project-id", "p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorContains(t, err, "alignment create")
}

func TestRecordCmds_ValidationBeforeCall(t *testing.T) {
	dir := t.TempDir()

	// No TTP listens on this port; a missing key fails before any call.
	_, err := runIn(t, dir, "project", "get", "--collab-id", "c1", "--journal", "memory", "--port", "1")

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NotErrorIs(t, err, domain.ErrConnection)
}

func TestRecordCmds_BadFile(t *testing.T) {
	dir := t.TempDir()
	base := ttp(t)
	body := writeFile(t, dir, "collab.json", `{"collab_id": "c1", "unknown": true}`)

	_, err := runIn(t, dir, append([]string{"collaboration", "create", "-f", body}, base...)...)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func newFlagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringP("file", "f", "", "")
	cmd.Flags().StringArray("set", nil, "")
	addKeyFlags(cmd, domain.FieldCollabID, domain.FieldProjectID)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestKeysFrom(t *testing.T) {
	cmd := newFlagCmd(t, "--collab-id", "c1", "--project-id", "p1")

	assert.Equal(t, domain.Keys{CollabID: "c1", ProjectID: "p1"}, keysFrom(cmd))
}

func TestKeyFlag(t *testing.T) {
	assert.Equal(t, "collab-id", keyFlag(domain.FieldCollabID))
	assert.Equal(t, "participant-id", keyFlag(domain.FieldParticipantID))
}

func TestOverride(t *testing.T) {
	assert.Equal(t, "flag", override("body", "flag"))
	assert.Equal(t, "body", override("body", ""))
}

func TestUpdatesFrom(t *testing.T) {
	dir := t.TempDir()
	body := writeFile(t, dir, "update.toml", "rounds = 2\nalgorithm = \"FedAvg\"\n")

	cmd := newFlagCmd(t,
		"-f", body,
		"--set", "rounds=5",
		"--set", "lr=0.01",
		"--set", "name=plain text",
		"--set", "tags=[\"a\",\"b\"]",
		"--set", "empty=",
	)

	updates, err := updatesFrom(cmd)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"rounds":    float64(5),
		"algorithm": "FedAvg",
		"lr":        0.01,
		"name":      "plain text",
		"tags":      []any{"a", "b"},
		"empty":     "",
	}, updates)
}

func TestUpdatesFrom_Invalid(t *testing.T) {
	for _, set := range []string{"novalue", "=value", " =x"} {
		t.Run(set, func(t *testing.T) {
			_, err := updatesFrom(newFlagCmd(t, "--set", set))

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}
