// Package pretty provides Lipgloss-based styled output for the gomdedit
// inspection commands.
package pretty

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Paragraph classification styles.
	Heading    lipgloss.Style
	Code       lipgloss.Style
	Blockquote lipgloss.Style
	List       lipgloss.Style
	Body       lipgloss.Style

	// Token dump components.
	Kind    lipgloss.Style
	Syntax  lipgloss.Style
	Content lipgloss.Style
	Lang    lipgloss.Style

	// Table components.
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style
	IndexColumn    lipgloss.Style
	Active         lipgloss.Style

	// Misc.
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	return &Styles{
		Heading:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Code:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Blockquote: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		List:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Body:       lipgloss.NewStyle(),

		Kind:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Syntax:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Content: lipgloss.NewStyle(),
		Lang:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Italic(true),

		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		IndexColumn:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Active:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Heading:        plain,
		Code:           plain,
		Blockquote:     plain,
		List:           plain,
		Body:           plain,
		Kind:           plain,
		Syntax:         plain,
		Content:        plain,
		Lang:           plain,
		TableHeader:    plain,
		TableSeparator: plain,
		IndexColumn:    plain,
		Active:         plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// ColorEnabled resolves a color mode flag ("auto", "always", "never")
// against the given output file.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if f == nil {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}
