// Package config loads ccache CLI settings from a dotfile, merging them
// over built-in defaults.
package config

import (
	"fmt"
	"slices"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "ccache"
	// ConfigFile is the config file name
	ConfigFile = "config.json"
)

// Config holds CLI settings. Keys in the dotfile use the mapstructure
// tags.
type Config struct {
	CacheFile   string `json:"cacheFile" mapstructure:"cache_file"`
	BaseDir     string `json:"baseDir" mapstructure:"base_dir"`
	Concurrency int    `json:"concurrency" mapstructure:"concurrency"`
	DebounceMs  int    `json:"debounceMs" mapstructure:"debounce_ms"`
	LogLevel    string `json:"logLevel" mapstructure:"log_level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		CacheFile:   "checksum_cache.json",
		Concurrency: 10,
		DebounceMs:  500,
		LogLevel:    "info",
	}
}

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency cannot be negative: %d", c.Concurrency)
	}
	if c.DebounceMs < 0 {
		return fmt.Errorf("debounce_ms cannot be negative: %d", c.DebounceMs)
	}
	levels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(levels, c.LogLevel) {
		return fmt.Errorf("unknown log level: %q", c.LogLevel)
	}
	return nil
}
