package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/userlist/internal/config"
)

// NewConfigListCmd creates the config list command.
func NewConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Example: `  userlist config list
  USERLIST_VIEW_PAGE_SIZE=20 userlist config list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			entries, err := cfg.List()
			if err != nil {
				return err
			}
			cmd.Printf("# %s\n", cfg.Path())
			for _, e := range entries {
				cmd.Println(e)
			}
			return nil
		},
	}
}
