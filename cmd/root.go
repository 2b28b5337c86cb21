package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/beekhof/file-stack/pkg/config"
	"github.com/beekhof/file-stack/pkg/files"
	"github.com/beekhof/file-stack/pkg/logging"
	"github.com/beekhof/file-stack/pkg/session"

	"github.com/spf13/cobra"
)

// DefaultSession is the session ID used by the command-line commands
const DefaultSession = "cli"

var (
	configDirFlag string
	sessionFlag   string
	logLevelFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "stack",
	Short: "Keep track of the files you recently worked with",
	Long: `stack remembers, per session, the files you recently uploaded, inserted or
selected, so they can be offered again without browsing for them.

Each session keeps a bounded list: adding a file puts it first, adding a file
that is already listed moves it to the front, and once the list is full the
oldest file drops off.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "Configuration directory (default ~/.file-stack)")
	rootCmd.PersistentFlags().StringVarP(&sessionFlag, "session", "s", DefaultSession, "Session whose stack is used")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn or error (overrides config)")
}

// GetConfigDir returns the configuration directory from --config-dir, or the default
func GetConfigDir() string {
	return config.GetConfigDir(configDirFlag)
}

// GetSession returns the session selected with --session
func GetSession() string {
	return sessionFlag
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(config.GetConfigPath(GetConfigDir()))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w. Please run 'stack init'", err)
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logging.NewLogger(os.Stderr, cfg.LogLevel)
}

func newResolver(cfg *config.Config) *files.Resolver {
	return files.NewResolver(cfg.RootDir, cfg.AcceptFileTypes)
}

// openStore loads the session stacks from the state file
func openStore(cfg *config.Config) (*session.Store, error) {
	store := session.NewStore(config.GetStatePath(GetConfigDir()), cfg.MaxItems)
	if err := store.Load(); err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return store, nil
}
