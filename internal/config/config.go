// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/mitchellh/copystructure"

	"github.com/tfctl/cfgctl/internal/overlay"
)

// Config is the resolved, read-only configuration.
//
// Fields:
//   - source: path or object key the document was loaded from.
//   - values: flat key/value mapping after the env and defaults overlays.
//   - origins: layer that supplied each key.
//
// Values are kept as any so the document's own scalar types survive. Callers
// should use Get or the typed getters (GetString, GetInt, GetBool).
type Config struct {
	source  string
	values  map[string]any
	origins map[string]overlay.Origin
}

// New builds a Config from values loaded from source. values is deep copied,
// so later changes by the caller, nested maps and lists included, are not
// observed. origins may be nil.
func New(values map[string]any, source string, origins map[string]overlay.Origin) *Config {
	cfg := &Config{
		source:  source,
		values:  CloneValues(values),
		origins: maps.Clone(origins),
	}
	if cfg.origins == nil {
		cfg.origins = map[string]overlay.Origin{}
	}
	return cfg
}

// CloneValues returns a deep copy of values. A nil map yields an empty one.
func CloneValues(values map[string]any) map[string]any {
	if len(values) == 0 {
		return map[string]any{}
	}
	return copystructure.Must(copystructure.Copy(values)).(map[string]any)
}

func cloneValue(v any) any {
	if v == nil {
		return nil
	}
	return copystructure.Must(copystructure.Copy(v))
}

// Source returns the path or object key this Config was loaded from.
func (c *Config) Source() string {
	return c.source
}

// Get returns the value stored under key, or ErrMissingKey. Nested maps and
// lists are returned as copies.
func (c *Config) Get(key string) (any, error) {
	val, ok := c.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingKey, key)
	}
	return cloneValue(val), nil
}

// GetOrDefault returns the value under key, or fallback when the key is
// absent. A present nil or empty value is returned as is.
func (c *Config) GetOrDefault(key string, fallback any) any {
	if val, ok := c.values[key]; ok {
		return cloneValue(val)
	}
	return fallback
}

// Has reports whether key is present.
func (c *Config) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Len returns the number of keys.
func (c *Config) Len() int {
	return len(c.values)
}

// Keys returns all keys in sorted order.
func (c *Config) Keys() []string {
	return slices.Sorted(maps.Keys(c.values))
}

// Values returns a deep copy of the underlying mapping.
func (c *Config) Values() map[string]any {
	return CloneValues(c.values)
}

// Origin returns the layer that supplied key.
func (c *Config) Origin(key string) (overlay.Origin, bool) {
	o, ok := c.origins[key]
	return o, ok
}

// GetString returns the string value for key. If the key is not found and a
// single defaultValue is provided, the default is returned. Returns an error
// if the value exists but is not a string.
func (c *Config) GetString(key string, defaultValue ...string) (string, error) {
	val, err := c.Get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T, not a string", ErrWrongType, key, val)
	}

	return s, nil
}

// GetInt returns the integer value for key. A single defaultValue may be
// provided and is returned when the key is missing. Parsers may decode numbers
// as int, int64, or float64; whole floats are accepted.
func (c *Config) GetInt(key string, defaultValue ...int) (int, error) {
	val, err := c.Get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, err
	}

	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v == math.Trunc(v) {
			return int(v), nil
		}
	}
	return 0, fmt.Errorf("%w: %s is %T, not an int", ErrWrongType, key, val)
}

// GetBool returns the boolean value for key, or the single defaultValue when
// the key is missing.
func (c *Config) GetBool(key string, defaultValue ...bool) (bool, error) {
	val, err := c.Get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return false, err
	}

	b, ok := val.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s is %T, not a bool", ErrWrongType, key, val)
	}
	return b, nil
}

// GetStringSlice returns the string slice value for key. If the key is not
// found and a single default slice is provided, that default is returned.
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	val, err := c.Get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return nil, err
	}

	switch v := val.(type) {
	case []string:
		return slices.Clone(v), nil
	case []any:
		result := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s[%d] is %T, not a string", ErrWrongType, key, i, item)
			}
			result[i] = s
		}
		return result, nil
	default:
		return nil, fmt.Errorf("%w: %s is %T, not a slice", ErrWrongType, key, val)
	}
}

// String renders the Config for debugging.
func (c *Config) String() string {
	return fmt.Sprintf("Config(source=%q, keys=%d)", c.source, len(c.values))
}
