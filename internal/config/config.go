package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/userlist/internal/source"
	"github.com/rshade/userlist/internal/theme"
	"github.com/rshade/userlist/internal/users"
)

// Defaults for a fresh configuration.
const (
	SchemaVersion      = "1.0.0"
	DefaultEndpoint    = source.DefaultEndpoint
	DefaultTimeout     = source.DefaultTimeout
	DefaultRole        = users.DefaultRole
	DefaultPageSize    = 5
	DefaultSort        = "name"
	DefaultPagePolicy  = "keep"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
	configDirName      = ".userlist"
	configFileName     = "config.yaml"
	configFileMode     = 0o600
	configDirMode      = 0o750
	outputTypeFile     = "file"
	outputTypeStderr   = "stderr"
	envConfigPath      = "USERLIST_CONFIG"
	envPrefix          = "USERLIST"
)

// ErrConfigExists is returned by Init when the file exists and force is off.
var ErrConfigExists = errors.New("configuration file already exists, use --force to overwrite")

// Config is the userlist configuration file.
type Config struct {
	Version string        `yaml:"version" ignored:"true" validate:"required,schema_version"`
	Source  SourceConfig  `yaml:"source"`
	View    ViewConfig    `yaml:"view"`
	Logging LoggingConfig `yaml:"logging"`
	Theme   theme.Palette `yaml:"theme"`

	path string
}

// SourceConfig configures the remote user API.
type SourceConfig struct {
	Endpoint    string        `yaml:"endpoint"     validate:"required,url"`
	Timeout     time.Duration `yaml:"timeout"      validate:"gt=0"`
	DefaultRole string        `yaml:"default_role" validate:"required,max=64" split_words:"true"`
}

// ViewConfig configures the listing.
type ViewConfig struct {
	PageSize    int    `yaml:"page_size"    validate:"min=1,max=100"    split_words:"true"`
	DefaultSort string `yaml:"default_sort" validate:"oneof=name email" split_words:"true"`
	PagePolicy  string `yaml:"page_policy"  validate:"oneof=keep reset" split_words:"true"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level  string `yaml:"level"  validate:"oneof=trace debug info warn error disabled"`
	Format string `yaml:"format" validate:"oneof=console json"`
	File   string `yaml:"file,omitempty"`
}

// New returns a Config holding the defaults, bound to the default path.
func New() *Config {
	return &Config{
		Version: SchemaVersion,
		Source: SourceConfig{
			Endpoint:    DefaultEndpoint,
			Timeout:     DefaultTimeout,
			DefaultRole: DefaultRole,
		},
		View: ViewConfig{
			PageSize:    DefaultPageSize,
			DefaultSort: DefaultSort,
			PagePolicy:  DefaultPagePolicy,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Theme: theme.DefaultPalette(),
		path:  DefaultPath(),
	}
}

// DefaultDir returns ~/.userlist, or .userlist in the working directory when
// the home directory cannot be determined.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return configDirName
	}
	return filepath.Join(home, configDirName)
}

// DefaultPath returns the config file path: $USERLIST_CONFIG if set,
// otherwise ~/.userlist/config.yaml.
func DefaultPath() string {
	if p := os.Getenv(envConfigPath); p != "" {
		return p
	}
	return filepath.Join(DefaultDir(), configFileName)
}

// Path returns the file the config is bound to.
func (c *Config) Path() string {
	return c.path
}

// SetConfigPath binds the config to path.
func (c *Config) SetConfigPath(path string) {
	c.path = path
}

// Load reads the config at path on top of the defaults and then applies
// USERLIST_* environment overrides. An empty path means DefaultPath. A
// missing file is not an error. The result is not validated.
func Load(path string) (*Config, error) {
	cfg := New()
	if path != "" {
		cfg.path = path
	}

	if _, err := os.Stat(cfg.path); err == nil {
		if mergeErr := MergeYAML(cfg, cfg.path); mergeErr != nil {
			return nil, mergeErr
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("cannot access config path %s: %w", cfg.path, err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

// normalize lower-cases the enumerated settings, which are matched
// case-insensitively everywhere else.
func (c *Config) normalize() {
	c.View.DefaultSort = strings.ToLower(strings.TrimSpace(c.View.DefaultSort))
	c.View.PagePolicy = strings.ToLower(strings.TrimSpace(c.View.PagePolicy))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}

// Save writes the config as YAML to its path, creating the directory.
func (c *Config) Save() error {
	if c.path == "" {
		return errors.New("config has no path")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if mkErr := os.MkdirAll(filepath.Dir(c.path), configDirMode); mkErr != nil {
		return fmt.Errorf("creating config directory: %w", mkErr)
	}
	if writeErr := os.WriteFile(c.path, data, configFileMode); writeErr != nil {
		return fmt.Errorf("writing config file: %w", writeErr)
	}
	return nil
}

// Init writes a default config to path. It refuses to overwrite an existing
// file unless force is set.
func Init(path string, force bool) (*Config, error) {
	cfg := New()
	if path != "" {
		cfg.path = path
	}
	if !force {
		_, err := os.Stat(cfg.path)
		if err == nil {
			return nil, ErrConfigExists
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("cannot access config path %s: %w", cfg.path, err)
		}
	}
	if err := cfg.Save(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// global holds the config loaded for the running command.
var (
	global   *Config      //nolint:gochecknoglobals // Set once per command, read by subcommands
	globalMu sync.RWMutex //nolint:gochecknoglobals // Protects global
)

// SetGlobalConfig stores cfg for the running command.
func SetGlobalConfig(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = cfg
}

// GetGlobalConfig returns the config of the running command, or defaults.
func GetGlobalConfig() *Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if global == nil {
		return New()
	}
	return global
}
