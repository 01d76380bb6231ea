// Package config provides reading and writing of sift configuration.
// Supports both global (~/.sift/config.yaml) and local (.sift/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.sift/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is repository-specific config in .sift/config.yaml
	ScopeLocal
)

// Limits holds the rendering caps applied when no flag overrides them.
type Limits struct {
	MaxLineLength *int `yaml:"max_line_length,omitempty"`
	MaxResults    *int `yaml:"max_results,omitempty"`
	MaxDepth      *int `yaml:"max_depth,omitempty"`
}

// Track holds usage-tracking configuration options.
type Track struct {
	Enabled *bool `yaml:"enabled,omitempty"`
	Tokens  *bool `yaml:"tokens,omitempty"`
}

// Default limits applied when not configured.
const (
	DefaultMaxLineLength = 100
	DefaultMaxResults    = 50
	DefaultMaxDepth      = 5
)

// Validation bounds for configuration values.
const (
	MinMaxLineLength = 4 // room for at least one byte plus an ellipsis
	MaxMaxLineLength = 1024 * 1024
	MinMaxResults    = 1
	MaxMaxResults    = 1_000_000
	MinMaxDepth      = 0
	MaxMaxDepth      = 1024
)

// Config contains configuration for sift.
type Config struct {
	Limits Limits `yaml:"limits,omitempty"`
	Track  Track  `yaml:"track,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Limits.MaxLineLength != nil {
		v := *c.Limits.MaxLineLength
		if v < MinMaxLineLength || v > MaxMaxLineLength {
			return fmt.Errorf("%w: max_line_length must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxLineLength, MaxMaxLineLength, v)
		}
	}
	if c.Limits.MaxResults != nil {
		v := *c.Limits.MaxResults
		if v < MinMaxResults || v > MaxMaxResults {
			return fmt.Errorf("%w: max_results must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxResults, MaxMaxResults, v)
		}
	}
	if c.Limits.MaxDepth != nil {
		v := *c.Limits.MaxDepth
		if v < MinMaxDepth || v > MaxMaxDepth {
			return fmt.Errorf("%w: max_depth must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxDepth, MaxMaxDepth, v)
		}
	}
	return nil
}

// MaxLineLength returns the per-line byte cap for condensed output (defaults to 100).
func (c *Config) MaxLineLength() int {
	if c.Limits.MaxLineLength == nil {
		return DefaultMaxLineLength
	}
	return *c.Limits.MaxLineLength
}

// MaxResults returns the global cap on rendered match lines (defaults to 50).
func (c *Config) MaxResults() int {
	if c.Limits.MaxResults == nil {
		return DefaultMaxResults
	}
	return *c.Limits.MaxResults
}

// MaxDepth returns the JSON traversal depth cap (defaults to 5).
func (c *Config) MaxDepth() int {
	if c.Limits.MaxDepth == nil {
		return DefaultMaxDepth
	}
	return *c.Limits.MaxDepth
}

// TrackEnabled returns whether usage tracking is enabled (defaults to true).
func (c *Config) TrackEnabled() bool {
	if c.Track.Enabled == nil {
		return true
	}
	return *c.Track.Enabled
}

// TrackTokens returns whether token counts are recorded per tracking entry
// (defaults to true). Disabling skips the tokenizer load on every run.
func (c *Config) TrackTokens() bool {
	if c.Track.Tokens == nil {
		return true
	}
	return *c.Track.Tokens
}

// LocalPath returns the path to the local (repository) config file.
func LocalPath() string {
	return filepath.Join(".sift", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.sift/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sift", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
