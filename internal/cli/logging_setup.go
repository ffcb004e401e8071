package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/userlist/internal/config"
	"github.com/rshade/userlist/internal/logging"
	"github.com/rshade/userlist/internal/tui"
)

// setupLogging configures logging based on config file, environment, and CLI flags.
func setupLogging(cmd *cobra.Command) logging.Result {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
	}

	// Ensure log directory exists after all overrides have been applied.
	if err := config.EnsureLogDir(loggingCfg); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
	}

	logCfg := loggingCfg.ToLoggingConfig()
	if ownsTerminal(cmd) && logCfg.Output == logging.OutputStderr {
		// Log lines would tear the interactive screen.
		logCfg.Output = logging.OutputDiscard
	}

	result := logging.NewLogger(logCfg, cmd.ErrOrStderr())

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	// Packages tag their own component on the context logger.
	ctx = logging.WithLogger(ctx, result.Logger)
	cmd.SetContext(ctx)
	logger = logging.ComponentLogger(*logging.FromContext(ctx), "cli")

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// ownsTerminal reports whether cmd is about to run the interactive view.
func ownsTerminal(cmd *cobra.Command) bool {
	if cmd.Annotations[annotationOwnsTerminal] != "true" {
		return false
	}
	noColor, _ := cmd.Flags().GetBool("no-color")
	plain, _ := cmd.Flags().GetBool("plain")
	return tui.DetectOutputMode(false, noColor, plain) == tui.OutputModeInteractive
}

// cleanupLogging closes the log file handle.
func cleanupLogging(cmd *cobra.Command, logResult *logging.Result) error {
	logger.Debug().Str("command", cmd.Name()).Msg("command finished")
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
