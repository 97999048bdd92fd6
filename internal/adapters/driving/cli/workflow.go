package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/synergos-cli/internal/adapters/driven/manifest"
	"github.com/custodia-labs/synergos-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

var workflowCmd = &cobra.Command{
	Use:   "workflow",
	Short: "Run a full federated cycle from a manifest",
	Long: `Run a full federated cycle from a TOML or YAML manifest.

The manifest declares the collaboration, its projects, experiments and
runs, the participants with their registrations and tags, then what to
train and evaluate. Steps run in order: connect, train, evaluate.`,
}

var workflowApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Create the manifest's records, then train and evaluate",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWorkflow(cmd, tui.ModeApply)
	},
}

var workflowTeardownCmd = &cobra.Command{
	Use:   "teardown",
	Short: "Delete the manifest's registrations, participants and collaboration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWorkflow(cmd, tui.ModeTeardown)
	},
}

func init() {
	workflowCmd.PersistentFlags().StringP("file", "f", "", "workflow manifest (TOML or YAML)")
	workflowCmd.PersistentFlags().Bool("no-tui", false, "print plain progress lines")
	_ = workflowCmd.MarkPersistentFlagRequired("file")
	workflowCmd.AddCommand(workflowApplyCmd)
	workflowCmd.AddCommand(workflowTeardownCmd)
	rootCmd.AddCommand(workflowCmd)
}

func runWorkflow(cmd *cobra.Command, mode tui.Mode) error {
	if workflowService == nil {
		return errors.New("workflow service not configured")
	}

	path, _ := cmd.Flags().GetString("file")
	wf, err := manifest.NewReader().ReadWorkflow(path)
	if err != nil {
		return err
	}

	noTUI, _ := cmd.Flags().GetBool("no-tui")
	if !noTUI && isTerminal(cmd.OutOrStdout()) {
		app, err := tui.NewApp(tui.NewPorts(workflowService), wf, mode)
		if err != nil {
			return err
		}
		app.WithContext(cmd.Context())
		return app.Run(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, plain.Title.Render(fmt.Sprintf("workflow %s: %s on %s", mode, wf.Collaboration.ID, ttpAddress)))

	observe := func(ev domain.StepEvent) {
		if line := stepLine(ev); line != "" {
			fmt.Fprintln(out, line)
		}
	}
	switch mode {
	case tui.ModeTeardown:
		err = workflowService.Teardown(cmd.Context(), wf, observe)
	default:
		err = workflowService.Apply(cmd.Context(), wf, observe)
	}
	if err != nil {
		return fmt.Errorf("workflow %s: %w", mode, err)
	}

	fmt.Fprintln(out, plain.Success.Render(fmt.Sprintf("workflow %s complete", mode)))
	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
