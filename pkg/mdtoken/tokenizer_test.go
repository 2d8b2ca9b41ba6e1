package mdtoken

import (
	"reflect"
	"testing"
)

func TestParse_Empty(t *testing.T) {
	if tokens := Parse(""); len(tokens) != 0 {
		t.Errorf("expected 0 tokens for empty input, got %d", len(tokens))
	}
}

func TestParse_PlainText(t *testing.T) {
	if tokens := Parse("just some words"); len(tokens) != 0 {
		t.Errorf("plain text should produce no tokens, got %d", len(tokens))
	}
}

func TestParse_Heading(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLevel int
	}{
		{"h1", "# Heading", 1},
		{"h2", "## Heading", 2},
		{"h3", "### Heading", 3},
		{"h6", "###### Heading", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Parse(tt.text)
			if len(tokens) == 0 {
				t.Fatal("expected at least one token")
			}
			if tokens[0].Element != KindHeading {
				t.Fatalf("first token = %v, want heading", tokens[0].Element)
			}
			if tokens[0].Level != tt.wantLevel {
				t.Errorf("level = %d, want %d", tokens[0].Level, tt.wantLevel)
			}
			if tokens[0].Syntax[0].Start != 0 || tokens[0].Syntax[0].End != tt.wantLevel+1 {
				t.Errorf("syntax range = %v, want [0,%d)", tokens[0].Syntax[0], tt.wantLevel+1)
			}
		})
	}
}

func TestParse_HeadingRejected(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no space after marker", "#Heading"},
		{"seven markers", "####### x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, tok := range Parse(tt.text) {
				if tok.Element == KindHeading {
					t.Errorf("%q should not produce a heading token", tt.text)
				}
			}
		})
	}
}

func TestParse_HeadingEmptyContent(t *testing.T) {
	tokens := Parse("# ")
	if len(tokens) != 1 || tokens[0].Element != KindHeading {
		t.Fatalf("heading with empty content must still be a heading, got %v", tokens)
	}
	if !tokens[0].Content.IsEmpty() {
		t.Errorf("content = %v, want empty", tokens[0].Content)
	}
}

func TestParse_Blockquote(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantDepth   int
		wantContent Range
	}{
		{"single", "> quote", 1, Range{Start: 2, End: 7}},
		{"nested", ">> q", 2, Range{Start: 3, End: 4}},
		{"no space", ">q", 1, Range{Start: 1, End: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Parse(tt.text)
			if len(tokens) == 0 || tokens[0].Element != KindBlockquote {
				t.Fatalf("expected blockquote token, got %v", tokens)
			}
			if tokens[0].Depth != tt.wantDepth {
				t.Errorf("depth = %d, want %d", tokens[0].Depth, tt.wantDepth)
			}
			if tokens[0].Content != tt.wantContent {
				t.Errorf("content = %v, want %v", tokens[0].Content, tt.wantContent)
			}
		})
	}
}

func TestParse_BulletList(t *testing.T) {
	for _, marker := range []string{"-", "*", "+"} {
		t.Run(marker, func(t *testing.T) {
			tokens := Parse(marker + " item")
			if len(tokens) == 0 || tokens[0].Element != KindBulletList {
				t.Fatalf("expected bullet-list token, got %v", tokens)
			}
			if tokens[0].Depth != 1 {
				t.Errorf("depth = %d, want 1", tokens[0].Depth)
			}
		})
	}
}

func TestParse_NestedList(t *testing.T) {
	tokens := Parse("  - item")
	if len(tokens) == 0 || tokens[0].Element != KindBulletList {
		t.Fatalf("expected bullet-list token, got %v", tokens)
	}
	if tokens[0].Depth != 2 {
		t.Errorf("depth = %d, want 2", tokens[0].Depth)
	}
}

func TestParseIndent_Width(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		width     int
		wantDepth int
	}{
		{"four spaces at width four", "    - item", 4, 2},
		{"two spaces at width four", "  - item", 4, 1},
		{"tab counts as one level", "\t- item", 4, 2},
		{"default matches Parse", "  - item", DefaultIndentWidth, 2},
		{"zero width falls back", "  - item", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := ParseIndent(tt.text, tt.width)
			if len(tokens) == 0 || tokens[0].Element != KindBulletList {
				t.Fatalf("expected bullet-list token, got %v", tokens)
			}
			if tokens[0].Depth != tt.wantDepth {
				t.Errorf("depth = %d, want %d", tokens[0].Depth, tt.wantDepth)
			}
		})
	}
}

func TestParse_OrderedList(t *testing.T) {
	tokens := Parse("12. twelfth")
	if len(tokens) == 0 || tokens[0].Element != KindOrderedList {
		t.Fatalf("expected ordered-list token, got %v", tokens)
	}
	if tokens[0].Ordinal != "12" {
		t.Errorf("ordinal = %q, want %q", tokens[0].Ordinal, "12")
	}
	if tokens[0].Content != (Range{Start: 4, End: 11}) {
		t.Errorf("content = %v", tokens[0].Content)
	}
}

func TestParse_HorizontalRule(t *testing.T) {
	tests := []string{"---", "***", "___", "- - -", "----------"}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			tokens := Parse(text)
			if len(tokens) != 1 || tokens[0].Element != KindRule {
				t.Fatalf("expected exactly one rule token, got %v", tokens)
			}
			if !tokens[0].Content.IsEmpty() {
				t.Errorf("rule content must be empty, got %v", tokens[0].Content)
			}
		})
	}

	// Two markers are not a rule; a rule with other characters is not a rule.
	for _, text := range []string{"--", "--- x", "***bold***"} {
		for _, tok := range Parse(text) {
			if tok.Element == KindRule {
				t.Errorf("%q should not produce a rule token", text)
			}
		}
	}
}

func TestParse_FenceLine(t *testing.T) {
	for _, text := range []string{"```", "```go", "~~~python", "````"} {
		t.Run(text, func(t *testing.T) {
			tokens := Parse(text)
			if len(tokens) != 1 || tokens[0].Element != KindCodeBlock {
				t.Fatalf("expected code-block token, got %v", tokens)
			}
		})
	}
}

func TestParse_IndentedCode(t *testing.T) {
	tokens := Parse("    indented")
	if len(tokens) != 1 || tokens[0].Element != KindCodeBlock {
		t.Fatalf("expected code-block token, got %v", tokens)
	}
	if tokens[0].Content != (Range{Start: 4, End: 12}) {
		t.Errorf("content = %v", tokens[0].Content)
	}
}

func TestParse_InlineCode(t *testing.T) {
	tokens := Parse("use `code` here")
	if len(tokens) != 1 || tokens[0].Element != KindCodeSpan {
		t.Fatalf("expected code-span token, got %v", tokens)
	}
	if tokens[0].Content != (Range{Start: 5, End: 9}) {
		t.Errorf("content = %v", tokens[0].Content)
	}
}

func TestParse_CodeSpanExcludesEmphasis(t *testing.T) {
	tokens := Parse("a `*x*` b")
	if len(tokens) != 1 || tokens[0].Element != KindCodeSpan {
		t.Fatalf("markers inside code must not become emphasis, got %v", tokens)
	}
}

func TestParse_DoubleBacktickSpan(t *testing.T) {
	tokens := Parse("``a ` b``")
	if len(tokens) != 1 || tokens[0].Element != KindCodeSpan {
		t.Fatalf("expected code-span token, got %v", tokens)
	}
	if tokens[0].Content != (Range{Start: 2, End: 7}) {
		t.Errorf("content = %v", tokens[0].Content)
	}
}

func TestParse_Emphasis(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantKind    ElementKind
		wantContent Range
	}{
		{"italic star", "*it*", KindItalic, Range{Start: 1, End: 3}},
		{"italic underscore", "_it_", KindItalic, Range{Start: 1, End: 3}},
		{"bold star", "**b**", KindBold, Range{Start: 2, End: 3}},
		{"bold underscore", "__b__", KindBold, Range{Start: 2, End: 3}},
		{"bold italic", "***bi***", KindBoldItalic, Range{Start: 3, End: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Parse(tt.text)
			if len(tokens) != 1 {
				t.Fatalf("expected one token, got %v", tokens)
			}
			if tokens[0].Element != tt.wantKind {
				t.Errorf("kind = %v, want %v", tokens[0].Element, tt.wantKind)
			}
			if tokens[0].Content != tt.wantContent {
				t.Errorf("content = %v, want %v", tokens[0].Content, tt.wantContent)
			}
		})
	}
}

func TestParse_EmphasisRejected(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"unterminated", "*abc"},
		{"marker before space", "a * b"},
		{"empty content", "**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tokens := Parse(tt.text); len(tokens) != 0 {
				t.Errorf("%q should produce no tokens, got %v", tt.text, tokens)
			}
		})
	}
}

func TestParse_AdjacentBoldItalic(t *testing.T) {
	// The *** run between bold and italic must split, not merge.
	tokens := Parse("**bold***italic*")
	if len(tokens) != 2 {
		t.Fatalf("expected bold + italic, got %v", tokens)
	}
	if tokens[0].Element != KindBold || tokens[0].Content != (Range{Start: 2, End: 6}) {
		t.Errorf("bold = %+v", tokens[0])
	}
	if tokens[1].Element != KindItalic || tokens[1].Content != (Range{Start: 9, End: 15}) {
		t.Errorf("italic = %+v", tokens[1])
	}
}

func TestParse_ItalicThenBold(t *testing.T) {
	tokens := Parse("*italic***bold**")
	if len(tokens) != 2 {
		t.Fatalf("expected bold + italic, got %v", tokens)
	}
	// Bold is scanned first, so it appears first in the token stream.
	if tokens[0].Element != KindBold || tokens[0].Content != (Range{Start: 10, End: 14}) {
		t.Errorf("bold = %+v", tokens[0])
	}
	if tokens[1].Element != KindItalic || tokens[1].Content != (Range{Start: 1, End: 7}) {
		t.Errorf("italic = %+v", tokens[1])
	}
}

func TestParse_Link(t *testing.T) {
	tokens := Parse("[text](url)")
	if len(tokens) != 1 || tokens[0].Element != KindLink {
		t.Fatalf("expected link token, got %v", tokens)
	}
	if tokens[0].Content != (Range{Start: 1, End: 5}) {
		t.Errorf("content = %v", tokens[0].Content)
	}
	if tokens[0].Target != "url" {
		t.Errorf("target = %q, want %q", tokens[0].Target, "url")
	}
}

func TestParse_EmphasisInsideLink(t *testing.T) {
	tokens := Parse("[*em*](u)")
	var link, italic bool
	for _, tok := range tokens {
		switch tok.Element {
		case KindLink:
			link = true
		case KindItalic:
			italic = true
			if tok.Content != (Range{Start: 2, End: 4}) {
				t.Errorf("italic content = %v", tok.Content)
			}
		}
	}
	if !link || !italic {
		t.Errorf("expected link with nested italic, got %v", tokens)
	}
}

func TestParse_InlineInsideHeading(t *testing.T) {
	tokens := Parse("# **b**")
	if len(tokens) != 2 {
		t.Fatalf("expected heading + bold, got %v", tokens)
	}
	if tokens[0].Element != KindHeading || tokens[1].Element != KindBold {
		t.Errorf("tokens = %v", tokens)
	}
}

func TestParse_Deterministic(t *testing.T) {
	inputs := []string{
		"# Title with *em* and `code`",
		"> quoted **bold**",
		"- [link](https://example.com) item",
		"***a*** __b__ _c_",
		"```go",
		"plain",
	}
	for _, text := range inputs {
		first := Parse(text)
		second := Parse(text)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("parse of %q is not deterministic", text)
		}
	}
}

func TestParse_RangeInvariants(t *testing.T) {
	inputs := []string{
		"# Heading with **bold** and `code`",
		"1. item with [l](u) and *em*",
		">> deep quote with ***all***",
		"**bold***italic*",
		"a `code **not bold**` b",
		"- - -",
	}
	for _, text := range inputs {
		tokens := Parse(text)
		if !ValidateTokens(tokens, len(text)) {
			t.Errorf("range invariants violated for %q: %v", text, tokens)
		}
	}
}
