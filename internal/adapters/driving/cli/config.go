package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/synergos-cli/internal/core/services"
)

// offline marks a command that does not need a TTP.
var offline = map[string]string{annotationOffline: "true"}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage stored settings",
	Long: `View and change the settings stored in ~/.synergos/config.toml.

Flags and SYNERGOS_* environment variables override stored values, e.g.
SYNERGOS_TTP_HOST overrides ttp.host.`,
}

var configListCmd = &cobra.Command{
	Use:         "list",
	Short:       "Show every setting with its effective stored value",
	Args:        cobra.NoArgs,
	Annotations: offline,
	RunE:        runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:         "get <key>",
	Short:       "Print one setting",
	Args:        cobra.ExactArgs(1),
	Annotations: offline,
	RunE:        runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:         "set <key> <value>",
	Short:       "Store one setting",
	Args:        cobra.ExactArgs(2),
	Annotations: offline,
	RunE:        runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:         "unset <key>",
	Short:       "Remove a stored setting so its default applies",
	Args:        cobra.ExactArgs(1),
	Annotations: offline,
	RunE:        runConfigUnset,
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, key := range settingsService.Keys() {
		value, err := settingsService.Value(key)
		if err != nil {
			return err
		}
		if key == services.KeyTTPToken {
			value = maskToken(value)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, value)
	}
	return w.Flush()
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	value, err := settingsService.Value(args[0])
	if err != nil {
		return err
	}
	cmd.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("%s updated.\n", args[0])
	return nil
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Unset(args[0]); err != nil {
		return fmt.Errorf("failed to unset %s: %w", args[0], err)
	}
	cmd.Printf("%s reset to default.\n", args[0])
	return nil
}

// maskToken hides all but the ends of a token.
func maskToken(token string) string {
	switch {
	case token == "":
		return "(not set)"
	case len(token) <= 8:
		return "****"
	default:
		return token[:4] + "..." + token[len(token)-4:]
	}
}
