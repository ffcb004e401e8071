package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/rshade/userlist/internal/config"
	"github.com/rshade/userlist/internal/logging"
	"github.com/rshade/userlist/internal/source"
	"github.com/rshade/userlist/pkg/version"
)

// StepStatus represents the outcome of a single setup step.
type StepStatus int

const (
	// StepSuccess indicates the step completed successfully.
	StepSuccess StepStatus = iota
	// StepWarning indicates the step completed with a non-fatal issue.
	StepWarning
	// StepSkipped indicates the step was intentionally skipped via flag.
	StepSkipped
	// StepError indicates the step failed.
	StepError
)

// StepResult describes the outcome of executing a single setup step.
type StepResult struct {
	Name     string
	Status   StepStatus
	Message  string
	Critical bool
	Err      error
}

// SetupOptions holds the configuration for the setup command, derived from CLI flags.
type SetupOptions struct {
	SkipCheck      bool
	NonInteractive bool
}

// SetupResult is the aggregate outcome of all setup steps.
type SetupResult struct {
	Steps       []StepResult
	HasErrors   bool
	HasWarnings bool
}

// dirPermBase is the permission mode for the config and log directories.
const dirPermBase = 0o700

// formatStatus returns a status marker appropriate for the output mode.
func formatStatus(status StepStatus, nonInteractive bool) string {
	if nonInteractive {
		switch status {
		case StepSuccess:
			return "[OK]"
		case StepWarning:
			return "[WARN]"
		case StepSkipped:
			return "[SKIP]"
		case StepError:
			return "[ERR]"
		default:
			return "[??]"
		}
	}

	switch status {
	case StepSuccess:
		return "\u2713" // ✓
	case StepWarning:
		return "!"
	case StepSkipped:
		return "-"
	case StepError:
		return "\u2717" // ✗
	default:
		return "?"
	}
}

// NewSetupCmd creates the setup command that bootstraps the userlist environment.
func NewSetupCmd() *cobra.Command {
	var opts SetupOptions

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Bootstrap the userlist environment",
		Long: `Creates the configuration and log directories, writes a default
configuration file if none exists, and checks that the user API answers.

Running it again is safe: an existing configuration file is kept.`,
		Example: `  # Full setup
  userlist setup

  # CI setup (no TTY-dependent output)
  userlist setup --non-interactive

  # Offline setup
  userlist setup --skip-check`,
		Annotations: map[string]string{annotationSkipConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetup(cmd, &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.NonInteractive, "non-interactive", false,
		"Disable TTY-dependent output (status symbols)")
	cmd.Flags().BoolVar(&opts.SkipCheck, "skip-check", false,
		"Skip the user API reachability check")

	return cmd
}

// runSetup runs every step in order; a failing step does not stop the ones
// after it. It returns an error only if a critical step fails.
func runSetup(cmd *cobra.Command, opts *SetupOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	log := logging.ComponentLogger(*logging.FromContext(ctx), "setup")

	// Auto-detect non-interactive mode when stdin is not a TTY
	if !opts.NonInteractive && !isTerminal(os.Stdin) {
		opts.NonInteractive = true
	}

	path := configPath(cmd)
	result := &SetupResult{}
	record := func(steps ...StepResult) {
		for _, s := range steps {
			printStep(cmd, s, opts.NonInteractive)
			result.Steps = append(result.Steps, s)
		}
	}

	record(stepDisplayVersion())
	record(stepCreateDirectories(filepath.Dir(path))...)
	record(stepInitConfig(path))

	if opts.SkipCheck {
		record(StepResult{
			Name:    "Endpoint check",
			Status:  StepSkipped,
			Message: "Skipped user API check",
		})
	} else {
		record(stepCheckEndpoint(ctx, config.GetGlobalConfig()))
	}

	for _, s := range result.Steps {
		if s.Status == StepError && s.Critical {
			result.HasErrors = true
		}
		if s.Status == StepWarning {
			result.HasWarnings = true
		}
	}

	printSummary(cmd, result)

	if result.HasErrors {
		log.Error().
			Ctx(ctx).
			Msg("setup completed with critical errors")
		return errors.New("setup failed: one or more critical steps failed")
	}

	return nil
}

// printStep outputs a single step's status line.
func printStep(cmd *cobra.Command, step StepResult, nonInteractive bool) {
	marker := formatStatus(step.Status, nonInteractive)
	cmd.Printf("%s %s\n", marker, step.Message)
}

// printSummary outputs the final completion message.
func printSummary(cmd *cobra.Command, result *SetupResult) {
	cmd.Println()
	if result.HasErrors {
		cmd.Println("Setup completed with errors. Review the messages above for remediation steps.")
	} else {
		cmd.Println("Setup complete! Run 'userlist browse' to get started.")
	}
}

// stepDisplayVersion reports the userlist version and Go runtime.
func stepDisplayVersion() StepResult {
	return StepResult{
		Name:    "Version display",
		Status:  StepSuccess,
		Message: fmt.Sprintf("userlist %s (%s)", version.GetVersion(), runtime.Version()),
	}
}

// stepCreateDirectories creates the config directory and its logs directory.
// Returns one StepResult per directory.
func stepCreateDirectories(baseDir string) []StepResult {
	dirs := []string{baseDir, filepath.Join(baseDir, "logs")}

	results := make([]StepResult, 0, len(dirs))
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err == nil && info.IsDir() {
			results = append(results, StepResult{
				Name:     "Directory creation",
				Status:   StepSuccess,
				Message:  fmt.Sprintf("Directory exists: %s", dir),
				Critical: true,
			})
			continue
		}

		if mkErr := os.MkdirAll(dir, dirPermBase); mkErr != nil {
			results = append(results, StepResult{
				Name:   "Directory creation",
				Status: StepError,
				Message: fmt.Sprintf(
					"Failed to create %s: %v\n  Try: export USERLIST_CONFIG=/path/to/writable/config.yaml",
					dir,
					mkErr,
				),
				Critical: true,
				Err:      mkErr,
			})
			continue
		}

		results = append(results, StepResult{
			Name:     "Directory creation",
			Status:   StepSuccess,
			Message:  fmt.Sprintf("Created %s", dir),
			Critical: true,
		})
	}

	return results
}

// stepInitConfig writes the default config file if one does not exist.
func stepInitConfig(path string) StepResult {
	if _, err := config.Init(path, false); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return StepResult{
				Name:     "Config initialization",
				Status:   StepSuccess,
				Message:  fmt.Sprintf("Config already exists (%s)", path),
				Critical: true,
			}
		}
		return StepResult{
			Name:     "Config initialization",
			Status:   StepError,
			Message:  fmt.Sprintf("Failed to initialize config: %v", err),
			Critical: true,
			Err:      err,
		}
	}

	return StepResult{
		Name:     "Config initialization",
		Status:   StepSuccess,
		Message:  fmt.Sprintf("Initialized config (%s)", path),
		Critical: true,
	}
}

// stepCheckEndpoint fetches the user list once. Failure is a warning: the
// API may simply be unreachable from this machine right now.
func stepCheckEndpoint(ctx context.Context, cfg *config.Config) StepResult {
	client := source.NewClient(source.Config{
		Endpoint: cfg.Source.Endpoint,
		Timeout:  cfg.Source.Timeout,
		Role:     cfg.Source.DefaultRole,
	})

	records, err := client.Fetch(ctx)
	if err != nil {
		return StepResult{
			Name:    "Endpoint check",
			Status:  StepWarning,
			Message: fmt.Sprintf("%s from %s", source.UserMessage, client.Endpoint),
			Err:     err,
		}
	}

	return StepResult{
		Name:    "Endpoint check",
		Status:  StepSuccess,
		Message: fmt.Sprintf("Fetched %d users from %s", len(records), client.Endpoint),
	}
}
