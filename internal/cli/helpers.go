package cli

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/yaklabco/gomdedit/internal/configloader"
	"github.com/yaklabco/gomdedit/internal/ui/pretty"
	"github.com/yaklabco/gomdedit/pkg/config"
	"github.com/yaklabco/gomdedit/pkg/engine"
)

// loadDocument reads a Markdown file and builds an engine document over it.
func loadDocument(path string, flags *rootFlags) (*engine.Document, *config.Config, error) {
	cfg, err := configloader.Load(flags.configPath)
	if err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc := engine.New(string(data), engine.WithConfig(cfg))
	return doc, cfg, nil
}

// outputStyles resolves the color mode against stdout.
func outputStyles(flags *rootFlags) *pretty.Styles {
	return pretty.NewStyles(pretty.ColorEnabled(flags.color, os.Stdout))
}

// termWidth returns the stdout terminal width, or zero when stdout is not a
// terminal (formatters fall back to their default width).
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}
