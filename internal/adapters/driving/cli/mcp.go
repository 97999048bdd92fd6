package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/synergos-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start a Model Context Protocol server exposing the TTP to AI assistants.

By default, the server communicates over stdio using JSON-RPC. Use --http
to serve streamable HTTP instead, e.g. for the MCP Inspector.

Tools list collaborations, projects, experiments, runs and registrations,
trigger alignment, training, validation and prediction, and read their
results. The request journal is exposed as the synergos://history resource.

Examples:
  # Stdio mode (default)
  synergos mcp --host ttp.example.org --port 5000

  # HTTP mode
  synergos mcp --http :8080 --journal memory`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().String("http", "", "serve HTTP on this address instead of stdio")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	if grid == nil {
		return errors.New("TTP services not configured")
	}

	addr, err := cmd.Flags().GetString("http")
	if err != nil {
		return fmt.Errorf("getting http flag: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Collaborations: grid.Collaborations,
		Projects:       grid.Projects,
		Experiments:    grid.Experiments,
		Runs:           grid.Runs,
		Registrations:  grid.Registrations,
		Alignments:     grid.Alignments,
		Models:         grid.Models,
		Validations:    grid.Validations,
		Predictions:    grid.Predictions,
		History:        historyService,
	})
	if err != nil {
		return err
	}

	if addr != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://%s for TTP %s\n", addr, ttpAddress)
		return server.RunHTTP(cmd.Context(), addr)
	}
	return server.Run(cmd.Context())
}
