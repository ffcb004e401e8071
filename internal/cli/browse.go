package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/userlist/internal/config"
	"github.com/rshade/userlist/internal/listing"
	"github.com/rshade/userlist/internal/source"
	"github.com/rshade/userlist/internal/theme"
	"github.com/rshade/userlist/internal/tui"
)

// NewBrowseCmd creates the browse command: the interactive user listing.
func NewBrowseCmd() *cobra.Command {
	var (
		flags   viewFlags
		noColor bool
		plain   bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse users interactively",
		Long: `Opens the interactive user list: search by name or role, toggle the sort
between name and email, and page through the results.

When stdout is not a terminal the requested page is printed once instead.`,
		Example: `  # Open the interactive list
  userlist browse

  # Start on page 2, filtered to admins
  userlist browse --search admin --page 2

  # One-shot uncolored render
  userlist browse --plain`,
		Annotations: map[string]string{annotationOwnsTerminal: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, &flags, noColor, plain)
		},
	}

	flags.bind(cmd)
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors")
	cmd.Flags().BoolVar(&plain, "plain", false, "print the page once without styling")

	return cmd
}

func runBrowse(cmd *cobra.Command, flags *viewFlags, noColor, plain bool) error {
	cfg := config.GetGlobalConfig()
	settings, err := flags.resolve(cfg, 0)
	if err != nil {
		return err
	}

	client := source.NewClient(settings.source)
	t := theme.New(cfg.Theme)

	mode := tui.DetectOutputMode(false, noColor, plain)
	logger.Debug().Ctx(cmd.Context()).Str("mode", mode.String()).Msg("browse output mode")

	switch mode {
	case tui.OutputModeInteractive:
		return runBrowseInteractive(cmd.Context(), client, settings, t)
	case tui.OutputModeStyled:
		return renderBrowseStatic(cmd, client, settings, t)
	case tui.OutputModePlain:
		return renderBrowseStatic(cmd, client, settings, tui.PlainTheme())
	default:
		return fmt.Errorf("unknown output mode %d", mode)
	}
}

// runBrowseInteractive runs the Bubble Tea program until the user quits.
func runBrowseInteractive(
	ctx context.Context,
	client *source.Client,
	settings viewSettings,
	t theme.Theme,
) error {
	state := settings.state
	model := tui.NewUsersModel(ctx, client.Fetch, tui.UsersModelOptions{
		PageSize: settings.pageSize,
		Policy:   settings.policy,
		Theme:    &t,
		State:    &state,
	})

	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interactive view: %w", err)
	}

	// The error screen has already shown the message; still exit non-zero.
	if err := model.Err(); err != nil {
		return &LoadFailure{Err: err}
	}
	return nil
}

// renderBrowseStatic prints the requested page once.
func renderBrowseStatic(cmd *cobra.Command, client *source.Client, settings viewSettings, t theme.Theme) error {
	records, err := fetchUsers(cmd.Context(), client)
	if err != nil {
		logger.Error().Ctx(cmd.Context()).Err(err).Msg("browse failed")
		return err
	}

	view := listing.Derive(records, settings.state, settings.pageSize)
	_, err = fmt.Fprint(cmd.OutOrStdout(), tui.RenderStatic(t, settings.state, view))
	return err
}
