package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/userlist/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values at --config,
$USERLIST_CONFIG or ~/.userlist/config.yaml.

If the file exists, an interactive terminal is asked before overwriting it;
otherwise --force is required.`,
		Example: `  # Create the configuration file
  userlist config init

  # Create configuration, overwriting existing
  userlist config init --force`,
		Annotations: map[string]string{annotationSkipConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := configPath(cmd)
			cfg, err := config.Init(path, force)
			if errors.Is(err, config.ErrConfigExists) {
				answer := ConfirmOverwrite(cmd.OutOrStdout(), cmd.InOrStdin(), path, isTerminal(os.Stdin))
				if !answer.Accepted {
					return err
				}
				cfg, err = config.Init(path, true)
			}
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			cmd.Printf("Configuration initialized successfully\n")
			cmd.Printf("Configuration file: %s\n", cfg.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}
