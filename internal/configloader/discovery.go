package configloader

import (
	"path/filepath"
)

// Config file names searched in order.
//
//nolint:gochecknoglobals // fixed search list
var configNames = []string{
	".gomdedit.yaml",
	".gomdedit.yml",
	"gomdedit.yaml",
}

// Discover walks from startDir toward the filesystem root looking for a
// configuration file. Returns the empty string when none exists.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		for _, name := range configNames {
			candidate := filepath.Join(dir, name)
			if exists(candidate) {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
