// Package mdtoken provides the per-paragraph Markdown tokenizer for gomdedit.
// It classifies one paragraph of text into structural and inline tokens, each
// carrying the content span that survives syntax hiding and the marker spans
// that are hidden or muted by the renderer.
package mdtoken

// Range is a half-open [Start, End) span of byte offsets within one
// paragraph's text.
type Range struct {
	Start int
	End   int
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start >= r.End
}

// Contains reports whether the byte offset lies within the range.
func (r Range) Contains(off int) bool {
	return off >= r.Start && off < r.End
}

// Overlaps reports whether two ranges share at least one offset.
func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End && o.Start < r.End
}

// Shift returns the range moved by delta offsets.
func (r Range) Shift(delta int) Range {
	return Range{Start: r.Start + delta, End: r.End + delta}
}

// ElementKind classifies what a token represents.
type ElementKind uint8

// Element kinds. Exactly one block-level kind may apply per paragraph;
// inline kinds may co-occur.
const (
	KindText ElementKind = iota

	// Block-level kinds.
	KindHeading
	KindBlockquote
	KindBulletList
	KindOrderedList
	KindCodeBlock
	KindRule

	// Inline kinds.
	KindBold
	KindItalic
	KindBoldItalic
	KindCodeSpan
	KindLink
)

// kindNames maps element kinds to display names for logs and dumps.
var kindNames = map[ElementKind]string{
	KindText:        "text",
	KindHeading:     "heading",
	KindBlockquote:  "blockquote",
	KindBulletList:  "bullet-list",
	KindOrderedList: "ordered-list",
	KindCodeBlock:   "code-block",
	KindRule:        "rule",
	KindBold:        "bold",
	KindItalic:      "italic",
	KindBoldItalic:  "bold-italic",
	KindCodeSpan:    "code-span",
	KindLink:        "link",
}

// String returns the display name of the element kind.
func (k ElementKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsBlock reports whether the kind is a block-level structure that changes
// a paragraph's line metrics.
func (k ElementKind) IsBlock() bool {
	switch k {
	case KindHeading, KindBlockquote, KindBulletList, KindOrderedList, KindCodeBlock, KindRule:
		return true
	default:
		return false
	}
}

// IsInline reports whether the kind is an inline formatting span.
func (k ElementKind) IsInline() bool {
	switch k {
	case KindBold, KindItalic, KindBoldItalic, KindCodeSpan, KindLink:
		return true
	default:
		return false
	}
}

// Token represents one classified structure within a paragraph.
// Content is the span that remains visible after syntax hiding; Syntax holds
// the marker spans that are hidden or muted. Offsets are paragraph-local.
type Token struct {
	// Element classifies this token.
	Element ElementKind

	// Content is the visible text span.
	Content Range

	// Syntax holds the marker character spans.
	Syntax []Range

	// Depth is the nesting depth for blockquotes and list items.
	Depth int

	// Level is the heading level (1-6), zero otherwise.
	Level int

	// Ordinal is the displayed number of an ordered list item ("1", "12").
	Ordinal string

	// Target is the destination of a link token.
	Target string
}

// Spans returns every range the token claims, syntax first.
func (t Token) Spans() []Range {
	spans := make([]Range, 0, len(t.Syntax)+1)
	spans = append(spans, t.Syntax...)
	if !t.Content.IsEmpty() {
		spans = append(spans, t.Content)
	}
	return spans
}

// ValidateTokens checks the range invariants for one parse result:
// every range lies within [0, textLen], and no two syntax ranges overlap
// each other or any content range of the same kind.
func ValidateTokens(tokens []Token, textLen int) bool {
	var syntax []Range
	for _, tok := range tokens {
		for _, r := range tok.Syntax {
			if r.Start < 0 || r.End > textLen || r.Start > r.End {
				return false
			}
			syntax = append(syntax, r)
		}
		c := tok.Content
		if c.Start < 0 || c.End > textLen || c.Start > c.End {
			return false
		}
	}
	for i := range syntax {
		for j := i + 1; j < len(syntax); j++ {
			if syntax[i].Overlaps(syntax[j]) {
				return false
			}
		}
	}
	// Content ranges of the same kind must not overlap. Nesting across kinds
	// (emphasis inside a link, inline spans inside a heading) is allowed.
	for i := range tokens {
		for j := i + 1; j < len(tokens); j++ {
			if tokens[i].Element != tokens[j].Element {
				continue
			}
			if !tokens[i].Content.IsEmpty() && tokens[i].Content.Overlaps(tokens[j].Content) {
				return false
			}
		}
	}
	return true
}
