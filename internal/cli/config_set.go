package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/userlist/internal/config"
)

// NewConfigSetCmd creates the config set command.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Sets a dotted key in the configuration file. The new configuration is
validated before it is written.`,
		Example: `  userlist config set view.page_size 10
  userlist config set view.page_policy reset
  userlist config set source.timeout 30s
  userlist config set theme.primary "#3F51B5"`,
		Args: cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			// Edit the file contents, not the environment-adjusted view.
			path := configPath(cmd)
			cfg := config.New()
			cfg.SetConfigPath(path)
			if err := mergeIfExists(cfg, path); err != nil {
				return err
			}

			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			cmd.Printf("Set %s = %s\n", args[0], args[1])
			return nil
		},
	}
}
