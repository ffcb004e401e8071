package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// ApplyEnv overlays USERLIST_* environment variables onto c. Variables are
// named after the section and field, e.g. USERLIST_SOURCE_ENDPOINT,
// USERLIST_VIEW_PAGE_SIZE, USERLIST_LOGGING_LEVEL. Unset variables leave the
// current values alone.
func (c *Config) ApplyEnv() error {
	if err := envconfig.Process(envPrefix, c); err != nil {
		return fmt.Errorf("reading %s_* environment: %w", envPrefix, err)
	}
	return nil
}
