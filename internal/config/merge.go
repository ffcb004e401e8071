package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names.
const (
	keyVersion = "version"
	keySource  = "source"
	keyView    = "view"
	keyLogging = "logging"
	keyTheme   = "theme"
)

// knownTopLevelKeys lists the YAML keys that correspond to Config fields.
// Keys not in this list are silently ignored during merge.
//
//nolint:gochecknoglobals // Constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keyVersion: true,
	keySource:  true,
	keyView:    true,
	keyLogging: true,
	keyTheme:   true,
}

// MergeYAML loads a YAML file and merges it onto target section by section.
// Fields present in the file replace the target's values; absent fields keep
// them. Unknown top-level keys are ignored.
func MergeYAML(target *Config, path string) error {
	if target == nil {
		return errors.New("nil target *Config in MergeYAML")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var overlay map[string]interface{}
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config YAML from %s: %w", path, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	for key, value := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}

		sectionBytes, marshalErr := yaml.Marshal(value)
		if marshalErr != nil {
			return fmt.Errorf("re-marshalling config section %q: %w", key, marshalErr)
		}

		if err = mergeSection(target, key, sectionBytes); err != nil {
			return fmt.Errorf("applying config section %q: %w", key, err)
		}
	}

	return nil
}

// mergeSection decodes data onto a copy of the named section and stores the
// copy only when decoding succeeds, so a bad section leaves target intact.
func mergeSection(target *Config, key string, data []byte) error {
	switch key {
	case keyVersion:
		var v string
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Version = v
	case keySource:
		v := target.Source
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Source = v
	case keyView:
		v := target.View
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.View = v
	case keyLogging:
		v := target.Logging
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Logging = v
	case keyTheme:
		v := target.Theme
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Theme = v
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
