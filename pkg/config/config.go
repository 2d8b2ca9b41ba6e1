// Package config defines configuration types for the gomdedit engine.
// These are pure data structures; loading and discovery live in
// internal/configloader.
package config

import (
	"fmt"
	"time"
)

// DefaultDebounceMS is the default cursor-movement debounce delay in
// milliseconds, on the order of one display frame.
const DefaultDebounceMS = 16

// DefaultTabWidth is the indentation width of one list nesting level.
const DefaultTabWidth = 2

// Config is the root configuration for the editing engine.
type Config struct {
	// DebounceMS is the cursor-movement debounce delay in milliseconds.
	DebounceMS int `yaml:"debounce_ms"`

	// TabWidth is the number of spaces per list nesting level.
	TabWidth int `yaml:"tab_width"`

	// DetectFenceLanguage enables auto-detection of a code block's language
	// when its opening fence carries no info string.
	DetectFenceLanguage bool `yaml:"detect_fence_language"`

	// LogLevel is the logging verbosity: debug, info, warn, or error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the default engine configuration.
func Default() *Config {
	return &Config{
		DebounceMS:          DefaultDebounceMS,
		TabWidth:            DefaultTabWidth,
		DetectFenceLanguage: true,
		LogLevel:            "info",
	}
}

// Debounce returns the debounce delay as a duration.
func (c *Config) Debounce() time.Duration {
	if c == nil || c.DebounceMS <= 0 {
		return DefaultDebounceMS * time.Millisecond
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.DebounceMS < 0 {
		return fmt.Errorf("debounce_ms must not be negative, got %d", c.DebounceMS)
	}
	if c.TabWidth < 1 {
		return fmt.Errorf("tab_width must be at least 1, got %d", c.TabWidth)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
