package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/userlist/internal/config"
	"github.com/rshade/userlist/internal/logging"
)

// Command annotations read by the root hooks.
const (
	// annotationSkipConfig marks commands that manage the config file
	// themselves and must run even when it is broken.
	annotationSkipConfig = "userlist/skip-config"
	// annotationOwnsTerminal marks commands that may take over the terminal.
	annotationOwnsTerminal = "userlist/owns-terminal"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the userlist CLI.
// It loads configuration, wires up logging and tracing, and adds the
// browse, list and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.Result

	cmd := &cobra.Command{
		Use:           "userlist",
		Short:         "Browse a remote user directory",
		Long:          "userlist: fetch users from an HTTP API, then search, sort and page through them",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $USERLIST_CONFIG or ~/.userlist/config.yaml)")
	cmd.AddCommand(NewBrowseCmd(), NewListCmd(), newConfigCmd(), NewSetupCmd())

	return cmd
}

const rootCmdExample = `  # Browse users interactively
  userlist browse

  # Print the second page of users whose name or role contains "an"
  userlist list --search an --page 2

  # Sort by email and emit JSON
  userlist list --sort email --output json

  # Use another endpoint
  userlist list --endpoint http://localhost:8080/users

  # Create directories and a default configuration
  userlist setup

  # Initialize configuration
  userlist config init

  # Set configuration values
  userlist config set view.page_size 10`

// loadConfig reads the config file and environment into the global config.
func loadConfig(cmd *cobra.Command) error {
	path := configPath(cmd)
	cfg, err := config.Load(path)
	if err != nil {
		if cmd.Annotations[annotationSkipConfig] != "true" {
			return fmt.Errorf("loading configuration: %w", err)
		}
		cfg = config.New()
		cfg.SetConfigPath(path)
	}
	config.SetGlobalConfig(cfg)
	return nil
}

// configPath returns --config, or the default path.
func configPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.DefaultPath()
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
