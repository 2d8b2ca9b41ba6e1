package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gomdedit/pkg/mdtoken"
)

// FormatTokens renders the token stream of one paragraph, one token per
// line, with marker spans muted the way the editor mutes them.
func FormatTokens(styles *Styles, text string, tokens []mdtoken.Token) string {
	if len(tokens) == 0 {
		return styles.Dim.Render("(plain text)") + "\n"
	}

	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(styles.Kind.Render(fmt.Sprintf("%-12s", tok.Element.String())))
		b.WriteString(" ")
		b.WriteString(describeToken(styles, text, tok))
		b.WriteString("\n")
	}
	return b.String()
}

func describeToken(styles *Styles, text string, tok mdtoken.Token) string {
	var parts []string

	for _, r := range tok.Syntax {
		parts = append(parts, styles.Syntax.Render(fmt.Sprintf("syntax[%d,%d)=%q", r.Start, r.End, slice(text, r))))
	}
	if !tok.Content.IsEmpty() {
		parts = append(parts, styles.Content.Render(
			fmt.Sprintf("content[%d,%d)=%q", tok.Content.Start, tok.Content.End, slice(text, tok.Content))))
	}
	if tok.Level > 0 {
		parts = append(parts, fmt.Sprintf("level=%d", tok.Level))
	}
	if tok.Depth > 0 {
		parts = append(parts, fmt.Sprintf("depth=%d", tok.Depth))
	}
	if tok.Ordinal != "" {
		parts = append(parts, fmt.Sprintf("ordinal=%s", tok.Ordinal))
	}
	if tok.Target != "" {
		parts = append(parts, styles.Lang.Render("target="+tok.Target))
	}

	return strings.Join(parts, " ")
}

func slice(text string, r mdtoken.Range) string {
	if r.Start < 0 || r.End > len(text) || r.Start > r.End {
		return ""
	}
	return text[r.Start:r.End]
}
