package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/userlist/internal/config"
)

// NewConfigGetCmd creates the config get command.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a configuration value",
		Long:  "Prints the effective value of a dotted key, after the config file and USERLIST_* environment are applied.",
		Example: `  userlist config get view.page_size
  userlist config get source`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return err
			}
			cmd.Println(value)
			return nil
		},
	}
}
