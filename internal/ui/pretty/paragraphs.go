package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Layout constants for the inspect table.
const (
	minTextWidth     = 20
	defaultTermWidth = 100
	columnGap        = 2
)

// ParagraphRow is one paragraph's classification in the inspect table.
type ParagraphRow struct {
	Index  int
	Type   string
	Class  string
	Lang   string
	Text   string
	Active bool
}

// ParagraphFormatter renders paragraph classification tables.
type ParagraphFormatter struct {
	styles    *Styles
	termWidth int
}

// NewParagraphFormatter creates a formatter for the given terminal width.
func NewParagraphFormatter(styles *Styles, termWidth int) *ParagraphFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &ParagraphFormatter{styles: styles, termWidth: termWidth}
}

// Format renders the rows as an aligned table with a header line.
func (f *ParagraphFormatter) Format(rows []ParagraphRow) string {
	if len(rows) == 0 {
		return ""
	}

	typeWidth, classWidth, langWidth := f.columnWidths(rows)
	fixed := 4 + typeWidth + classWidth + langWidth + 4*columnGap
	textWidth := f.termWidth - fixed
	if textWidth < minTextWidth {
		textWidth = minTextWidth
	}

	var b strings.Builder
	header := fmt.Sprintf("%-4s  %-*s  %-*s  %-*s  %s",
		"IDX", typeWidth, "TYPE", classWidth, "BLOCK", langWidth, "LANG", "TEXT")
	b.WriteString(f.styles.TableHeader.Render(header))
	b.WriteString("\n")
	b.WriteString(f.styles.TableSeparator.Render(strings.Repeat("-", len(header))))
	b.WriteString("\n")

	for _, row := range rows {
		idx := fmt.Sprintf("%-4d", row.Index)
		if row.Active {
			idx = f.styles.Active.Render(idx)
		} else {
			idx = f.styles.IndexColumn.Render(idx)
		}
		b.WriteString(fmt.Sprintf("%s  %s  %-*s  %s  %s\n",
			idx,
			f.typeStyle(row.Type).Render(fmt.Sprintf("%-*s", typeWidth, row.Type)),
			classWidth, row.Class,
			f.styles.Lang.Render(fmt.Sprintf("%-*s", langWidth, row.Lang)),
			truncate(row.Text, textWidth),
		))
	}

	return b.String()
}

func (f *ParagraphFormatter) columnWidths(rows []ParagraphRow) (typeWidth, classWidth, langWidth int) {
	typeWidth, classWidth, langWidth = 4, 5, 4
	for _, row := range rows {
		typeWidth = max(typeWidth, lipgloss.Width(row.Type))
		classWidth = max(classWidth, lipgloss.Width(row.Class))
		langWidth = max(langWidth, lipgloss.Width(row.Lang))
	}
	return typeWidth, classWidth, langWidth
}

func (f *ParagraphFormatter) typeStyle(displayType string) lipgloss.Style {
	switch {
	case strings.HasPrefix(displayType, "heading"):
		return f.styles.Heading
	case strings.HasPrefix(displayType, "code"):
		return f.styles.Code
	case strings.HasPrefix(displayType, "blockquote"):
		return f.styles.Blockquote
	case strings.HasPrefix(displayType, "bullet"), strings.HasPrefix(displayType, "ordered"):
		return f.styles.List
	default:
		return f.styles.Body
	}
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
