// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. This separation allows config.go to focus on YAML structure
// and loading, while this file handles the CLI interface where config is
// accessed by string keys (e.g., "limits.max_results").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to zero/false". This enables proper
// defaulting - we only apply defaults when the user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"limits.max_line_length", "limits.max_results", "limits.max_depth",
		"track.enabled", "track.tokens",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "limits.max_line_length":
		return strconv.Itoa(c.MaxLineLength()), nil
	case "limits.max_results":
		return strconv.Itoa(c.MaxResults()), nil
	case "limits.max_depth":
		return strconv.Itoa(c.MaxDepth()), nil
	case "track.enabled":
		return strconv.FormatBool(c.TrackEnabled()), nil
	case "track.tokens":
		return strconv.FormatBool(c.TrackTokens()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "limits.max_line_length":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinMaxLineLength || n > MaxMaxLineLength {
			return fmt.Errorf("%w: limits.max_line_length must be an integer between %d and %d",
				ErrInvalidValue, MinMaxLineLength, MaxMaxLineLength)
		}
		c.Limits.MaxLineLength = &n
	case "limits.max_results":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinMaxResults || n > MaxMaxResults {
			return fmt.Errorf("%w: limits.max_results must be an integer between %d and %d",
				ErrInvalidValue, MinMaxResults, MaxMaxResults)
		}
		c.Limits.MaxResults = &n
	case "limits.max_depth":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinMaxDepth || n > MaxMaxDepth {
			return fmt.Errorf("%w: limits.max_depth must be an integer between %d and %d",
				ErrInvalidValue, MinMaxDepth, MaxMaxDepth)
		}
		c.Limits.MaxDepth = &n
	case "track.enabled":
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("%w: track.enabled must be true or false", ErrInvalidValue)
		}
		c.Track.Enabled = &b
	case "track.tokens":
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("%w: track.tokens must be true or false", ErrInvalidValue)
		}
		c.Track.Tokens = &b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"limits.max_line_length": strconv.Itoa(c.MaxLineLength()),
		"limits.max_results":     strconv.Itoa(c.MaxResults()),
		"limits.max_depth":       strconv.Itoa(c.MaxDepth()),
		"track.enabled":          strconv.FormatBool(c.TrackEnabled()),
		"track.tokens":           strconv.FormatBool(c.TrackTokens()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "limits.max_line_length":
		return c.Limits.MaxLineLength != nil
	case "limits.max_results":
		return c.Limits.MaxResults != nil
	case "limits.max_depth":
		return c.Limits.MaxDepth != nil
	case "track.enabled":
		return c.Track.Enabled != nil
	case "track.tokens":
		return c.Track.Tokens != nil
	default:
		return false
	}
}

func parseBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, ErrInvalidValue
}
