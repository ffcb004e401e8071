package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/userlist/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness.

This includes:
- YAML syntax
- Schema version compatibility
- Endpoint URL and timeout
- Page size, default sort and page policy
- Log level and format
- Theme colors`,
		Example: `  # Validate current configuration
  userlist config validate

  # Validate and show the effective values
  userlist config validate --verbose`,
		Annotations: map[string]string{annotationSkipConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg, err := config.Load(configPath(cmd))
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		if _, statErr := os.Stat(cfg.Path()); errors.Is(statErr, os.ErrNotExist) {
			cmd.Printf("Configuration file: %s (not found, using defaults)\n", cfg.Path())
		} else {
			cmd.Printf("Configuration file: %s\n", cfg.Path())
		}
		entries, listErr := cfg.List()
		if listErr != nil {
			return listErr
		}
		for _, e := range entries {
			cmd.Printf("  %s\n", e)
		}
	}

	return nil
}

// mergeIfExists merges the file at path onto cfg when it exists.
func mergeIfExists(cfg *config.Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("cannot access config path %s: %w", path, err)
	}
	return config.MergeYAML(cfg, path)
}
