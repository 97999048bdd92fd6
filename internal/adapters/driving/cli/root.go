// Package cli implements the synergos command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/custodia-labs/synergos-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/synergos-cli/internal/adapters/driven/journal"
	"github.com/custodia-labs/synergos-cli/internal/adapters/driven/rest"
	"github.com/custodia-labs/synergos-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/synergos-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driving"
	"github.com/custodia-labs/synergos-cli/internal/core/services"
	"github.com/custodia-labs/synergos-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// envPrefix prefixes environment overrides, e.g. SYNERGOS_TTP_HOST.
const envPrefix = "SYNERGOS"

// annotationOffline marks commands that never talk to a TTP.
const annotationOffline = "offline"

// Services used by the commands. They are wired once flags are parsed.
var (
	settingsService driving.SettingsService
	grid            *services.Grid
	workflowService driving.WorkflowService
	historyService  driving.HistoryService

	// ttpAddress is the base URL of the resolved TTP.
	ttpAddress string

	// closers release wired resources after the command runs.
	closers []func() error
)

var rootCmd = &cobra.Command{
	Use:   "synergos",
	Short: "Drive a Synergos federated learning grid",
	Long: `synergos drives the Trusted Third Party (TTP) of a Synergos grid over REST.

It registers collaborations, projects, experiments, runs, participants,
registrations and tags, then triggers alignment, training, validation and
prediction. A workflow manifest runs the whole cycle in one command.

Settings resolve in order: flag, SYNERGOS_* environment variable,
~/.synergos/config.toml, default.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("host", "", "TTP host (default localhost)")
	flags.Int("port", 0, "TTP port (default 5000)")
	flags.Bool("secure", false, "use https")
	flags.Duration("timeout", 0, "request timeout (default 30s)")
	flags.String("token", "", "bearer token sent to the TTP")
	flags.BoolP("verbose", "v", false, "log every request to stderr")
	flags.String("config-dir", "", "configuration directory (default ~/.synergos)")
	flags.String("journal", "", "request journal: off, memory or sqlite (default sqlite)")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	return errors.Join(err, teardown(nil, nil))
}

// flagKeys maps persistent flags to configuration keys.
var flagKeys = map[string]string{
	"host":    services.KeyTTPHost,
	"port":    services.KeyTTPPort,
	"secure":  services.KeyTTPSecure,
	"timeout": services.KeyTTPTimeout,
	"token":   services.KeyTTPToken,
	"journal": services.KeyJournalBackend,
}

// setup wires the services for the command about to run.
func setup(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetVerbose(verbose)

	configDir, _ := cmd.Flags().GetString("config-dir")
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	settingsService = services.NewSettingsService(store)

	if cmd.Annotations[annotationOffline] == "true" {
		return nil
	}

	settings, err := resolveSettings(cmd, store.Path())
	if err != nil {
		return err
	}
	return wire(settings, filepath.Dir(store.Path()))
}

// resolveSettings layers flags over environment over the config file over
// the defaults.
func resolveSettings(cmd *cobra.Command, configPath string) (domain.Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := domain.DefaultSettings()
	v.SetDefault(services.KeyTTPHost, defaults.TTP.Host)
	v.SetDefault(services.KeyTTPPort, defaults.TTP.Port)
	v.SetDefault(services.KeyTTPSecure, defaults.TTP.Secure)
	v.SetDefault(services.KeyTTPTimeout, defaults.TTP.Timeout)
	v.SetDefault(services.KeyTTPToken, defaults.TTP.Token)
	v.SetDefault(services.KeyTTPRateLimit, defaults.TTP.RateLimit)
	v.SetDefault(services.KeyTTPBurst, defaults.TTP.Burst)
	v.SetDefault(services.KeyJournalBackend, defaults.Journal.String())

	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return domain.Settings{}, fmt.Errorf("binding --%s: %w", name, err)
		}
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return domain.Settings{}, fmt.Errorf("reading %s: %w", configPath, err)
		}
	}

	settings := domain.Settings{
		TTP: domain.TTPSettings{
			Host:      v.GetString(services.KeyTTPHost),
			Port:      v.GetInt(services.KeyTTPPort),
			Secure:    v.GetBool(services.KeyTTPSecure),
			Timeout:   v.GetDuration(services.KeyTTPTimeout),
			Token:     v.GetString(services.KeyTTPToken),
			RateLimit: v.GetFloat64(services.KeyTTPRateLimit),
			Burst:     v.GetInt(services.KeyTTPBurst),
		},
		Journal: domain.JournalBackend(v.GetString(services.KeyJournalBackend)),
	}
	if !settings.Journal.IsValid() {
		return domain.Settings{}, domain.Invalid("journal", "must be off, memory or sqlite")
	}
	return settings, settings.TTP.Validate()
}

// wire builds the transport, journal and services.
func wire(settings domain.Settings, dataDir string) error {
	transport, err := rest.New(rest.Config{
		Settings:  settings.TTP,
		UserAgent: "synergos-cli/" + version,
	})
	if err != nil {
		return err
	}

	var store driven.JournalStore
	switch settings.Journal {
	case domain.JournalMemory:
		store = memory.NewJournalStore()
	case domain.JournalSQLite:
		db, err := sqlite.NewStore(filepath.Join(dataDir, "data"))
		if err != nil {
			return fmt.Errorf("opening journal: %w", err)
		}
		closers = append(closers, db.Close)
		store = db.JournalStore()
	case domain.JournalOff:
	}

	var gridTransport driven.GridTransport = transport
	if store != nil {
		gridTransport = journal.NewTransport(transport, store)
	}

	ttpAddress = transport.BaseURL()
	grid = services.NewGrid(gridTransport)
	workflowService = services.NewWorkflowService(grid)
	historyService = services.NewHistoryService(store)
	logger.Debug("TTP at %s, journal %s", ttpAddress, settings.Journal)
	return nil
}

// teardown releases what setup opened.
func teardown(_ *cobra.Command, _ []string) error {
	var errs []error
	for _, c := range closers {
		errs = append(errs, c())
	}
	closers = nil
	return errors.Join(errs...)
}

// requireGrid reports an unwired grid.
func requireGrid() error {
	if grid == nil {
		return errors.New("TTP services not configured")
	}
	return nil
}
