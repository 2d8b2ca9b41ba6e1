// Package engine is the incremental rendering-decision core of gomdedit.
// It owns the document buffer, the shared block context, and one
// active-paragraph tracker per attached viewer, and decides on every edit
// which paragraphs must be re-tagged or invalidated.
package engine

import (
	"fmt"

	"github.com/yaklabco/gomdedit/pkg/blockctx"
	"github.com/yaklabco/gomdedit/pkg/mdtoken"
)

// DisplayKind enumerates the structural paragraph classes that carry
// distinct font and line-height metrics.
type DisplayKind uint8

const (
	DisplayBody DisplayKind = iota
	DisplayHeading
	DisplayCode
	DisplayBlockquote
	DisplayBulletList
	DisplayOrderedList
)

// String returns the display name of the kind.
func (k DisplayKind) String() string {
	switch k {
	case DisplayHeading:
		return "heading"
	case DisplayCode:
		return "code"
	case DisplayBlockquote:
		return "blockquote"
	case DisplayBulletList:
		return "bullet-list"
	case DisplayOrderedList:
		return "ordered-list"
	default:
		return "body"
	}
}

// DisplayType is the structural classification of one paragraph, used to
// decide whether a full-paragraph font re-tag is required. It is stored
// explicitly per paragraph rather than reconstructed from presentation
// attributes, so two types that happen to share visual attributes can never
// be confused.
type DisplayType struct {
	Kind DisplayKind

	// Level is the heading level (1-6) for DisplayHeading.
	Level int

	// Depth is the nesting depth for blockquotes and list items.
	Depth int
}

// String renders the type for logs and dumps, e.g. "heading(2)" or
// "bullet-list@1".
func (t DisplayType) String() string {
	switch t.Kind {
	case DisplayHeading:
		return fmt.Sprintf("heading(%d)", t.Level)
	case DisplayBlockquote, DisplayBulletList, DisplayOrderedList:
		return fmt.Sprintf("%s@%d", t.Kind, t.Depth)
	default:
		return t.Kind.String()
	}
}

// DisplayTypeFor derives a paragraph's display type from a fresh tokenizer
// result and its block context class. Code block membership wins over any
// paragraph-local marker: a heading-looking line inside a fence is code.
func DisplayTypeFor(tokens []mdtoken.Token, class blockctx.Class) DisplayType {
	if class != blockctx.Outside {
		return DisplayType{Kind: DisplayCode}
	}

	for _, tok := range tokens {
		switch tok.Element {
		case mdtoken.KindHeading:
			return DisplayType{Kind: DisplayHeading, Level: tok.Level}
		case mdtoken.KindCodeBlock:
			return DisplayType{Kind: DisplayCode}
		case mdtoken.KindBlockquote:
			return DisplayType{Kind: DisplayBlockquote, Depth: tok.Depth}
		case mdtoken.KindBulletList:
			return DisplayType{Kind: DisplayBulletList, Depth: tok.Depth}
		case mdtoken.KindOrderedList:
			return DisplayType{Kind: DisplayOrderedList, Depth: tok.Depth}
		}
	}
	return DisplayType{Kind: DisplayBody}
}
