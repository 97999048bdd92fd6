package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/synergos-cli/internal/stub"
)

var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Serve an in-memory TTP for local testing",
	Long: `Serve an in-memory TTP implementing the connect, train and evaluate
endpoints. Records live until the process exits and no model is trained.

Point the CLI at it with --host and --port, e.g.
  synergos stub --addr :5000 &
  synergos workflow apply -f workflow.toml`,
	Args:        cobra.NoArgs,
	Annotations: offline,
	RunE: func(cmd *cobra.Command, _ []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		fmt.Fprintf(cmd.ErrOrStderr(), "Stub TTP listening on %s (API %s)\n", addr, stub.APIVersion)
		return stub.New().Run(cmd.Context(), addr)
	},
}

func init() {
	stubCmd.Flags().String("addr", "127.0.0.1:5000", "listen address")
	rootCmd.AddCommand(stubCmd)
}
