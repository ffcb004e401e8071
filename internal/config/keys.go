package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownKey is returned for dotted keys that do not name a setting.
var ErrUnknownKey = errors.New("unknown configuration key")

// toMap renders c as nested maps keyed by YAML names.
func (c *Config) toMap() (map[string]interface{}, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	var m map[string]interface{}
	if err = yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return m, nil
}

// Get returns the value of a dotted key such as "view.page_size".
// Section keys return the section as YAML.
func (c *Config) Get(key string) (string, error) {
	m, err := c.toMap()
	if err != nil {
		return "", err
	}

	var cur interface{} = m
	for _, part := range strings.Split(key, ".") {
		section, ok := cur.(map[string]interface{})
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
		}
		cur, ok = section[part]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
		}
	}

	if section, ok := cur.(map[string]interface{}); ok {
		out, marshalErr := yaml.Marshal(section)
		if marshalErr != nil {
			return "", fmt.Errorf("marshalling %s: %w", key, marshalErr)
		}
		return strings.TrimRight(string(out), "\n"), nil
	}
	return fmt.Sprint(cur), nil
}

// Set assigns a value to a dotted "section.field" key. The value is parsed
// as a YAML scalar, so "10" becomes a number and "10s" stays a string. The
// result is validated before c is changed.
func (c *Config) Set(key, value string) error {
	parts := strings.Split(key, ".")
	if len(parts) != 2 || !knownTopLevelKeys[parts[0]] || parts[0] == keyVersion { //nolint:mnd // section.field
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	m, err := c.toMap()
	if err != nil {
		return err
	}
	section, ok := m[parts[0]].(map[string]interface{})
	if !ok {
		section = map[string]interface{}{}
	}
	if _, exists := section[parts[1]]; !exists && !optionalKeys[key] {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	var parsed interface{}
	if err = yaml.Unmarshal([]byte(value), &parsed); err != nil || parsed == nil {
		// Colors such as "#9C27B0" read as YAML comments.
		parsed = value
	}
	section[parts[1]] = parsed

	sectionBytes, err := yaml.Marshal(section)
	if err != nil {
		return fmt.Errorf("marshalling %s: %w", parts[0], err)
	}

	next := *c
	if err = mergeSection(&next, parts[0], sectionBytes); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	next.normalize()
	if err = next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// optionalKeys are settings omitted from YAML when empty.
//
//nolint:gochecknoglobals // Constant lookup table.
var optionalKeys = map[string]bool{
	"logging.file": true,
}

// List returns every leaf setting as sorted "key=value" pairs.
func (c *Config) List() ([]string, error) {
	m, err := c.toMap()
	if err != nil {
		return nil, err
	}
	var out []string
	flatten("", m, &out)
	sort.Strings(out)
	return out, nil
}

func flatten(prefix string, m map[string]interface{}, out *[]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if child, ok := v.(map[string]interface{}); ok {
			flatten(key, child, out)
			continue
		}
		*out = append(*out, fmt.Sprintf("%s=%v", key, v))
	}
}
