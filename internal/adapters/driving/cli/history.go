package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear the request journal",
	Long: `Every call made to the TTP is recorded in the request journal unless
--journal off is given. The sqlite journal lives in the config directory;
the memory journal only lasts for one command.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent requests, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every recorded request",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyListCmd.Flags().IntP("limit", "n", 20, "number of entries to show (0 for all)")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := historyService.List(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No requests recorded.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tMETHOD\tPATH\tSTATUS\tDURATION\tERROR")
	for _, e := range entries {
		status := "-"
		if e.StatusCode > 0 {
			status = fmt.Sprintf("%d", e.StatusCode)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Time.Local().Format(time.DateTime),
			e.Method,
			e.Path,
			status,
			e.Duration.Round(time.Millisecond),
			truncate(e.Error, 60),
		)
	}
	return w.Flush()
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}
	if err := historyService.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	cmd.Println("History cleared.")
	return nil
}

// truncate shortens s to maxLen characters.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
