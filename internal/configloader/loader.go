// Package configloader discovers and loads gomdedit configuration files.
package configloader

import (
	"fmt"
	"os"

	"github.com/yaklabco/gomdedit/pkg/config"
)

// Load reads the configuration from an explicit path, or discovers one
// starting from the working directory when path is empty. When no file is
// found, defaults are returned.
func Load(path string) (*config.Config, error) {
	if path == "" {
		discovered, err := Discover(".")
		if err != nil {
			return nil, err
		}
		if discovered == "" {
			return config.Default(), nil
		}
		path = discovered
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := config.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// exists reports whether the path names a regular file.
func exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
