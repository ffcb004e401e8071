package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rshade/userlist/internal/logging"
)

// ToLoggingConfig converts the logging section into a logging.Config.
//
// If File is set, Output becomes "file"; otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := outputTypeStderr
	if lc.File != "" {
		output = outputTypeFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
		Caller: false,
	}
}

// GetLoggingConfig returns a copy of the global config's logging section.
// Flag overrides (for example --debug) are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}

// EnsureLogDir creates the directory of the configured log file, if any.
func EnsureLogDir(lc LoggingConfig) error {
	if lc.File == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(lc.File), configDirMode); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	return nil
}
