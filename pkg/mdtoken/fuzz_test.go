package mdtoken

import (
	"reflect"
	"testing"
)

// FuzzParse fuzzes the per-paragraph tokenizer with random input.
func FuzzParse(f *testing.F) {
	// Add seed corpus.
	seeds := []string{
		"",
		"Hello, world!",
		"# Heading",
		"###### deep",
		"- list item",
		"  - nested",
		"1. ordered item",
		"> blockquote",
		">> nested quote",
		"```go",
		"~~~",
		"    indented code",
		"*emphasis*",
		"**strong**",
		"***both***",
		"**bold***italic*",
		"`code`",
		"``double `tick` span``",
		"[link](url)",
		"[*em*](url)",
		"---",
		"- - -",
		"# Mixed *em* and `code` and [l](u)",
		"a * b * c",
		"****",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, text string) {
		// Parse should never panic.
		tokens := Parse(text)

		// Ranges must stay within bounds and honor the overlap rules.
		if !ValidateTokens(tokens, len(text)) {
			t.Errorf("invalid token ranges for %q: %v", text, tokens)
		}

		// Same input, same output.
		if again := Parse(text); !reflect.DeepEqual(tokens, again) {
			t.Errorf("parse of %q is not deterministic", text)
		}
	})
}
