// Package langdetect infers the language of fenced code block content.
// It is used when an opening fence carries no info string, so the editor
// can still pick a sensible hint for the block.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Fallback is returned when no language can be inferred.
const Fallback = "text"

// candidates narrows the classifier to languages that commonly appear in
// Markdown code blocks.
//
//nolint:gochecknoglobals // fixed candidate list
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Dockerfile",
}

// Detect returns the inferred language tag for code content,
// or Fallback when nothing can be inferred with confidence.
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return Fallback
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := detectByPattern(trimmed); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return Fallback
}

// detectByPattern checks a few highly indicative prefixes before falling
// back to the classifier.
func detectByPattern(trimmed []byte) string {
	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")):
		return "go"
	case bytes.HasPrefix(trimmed, []byte("#!/")):
		return "bash"
	case bytes.HasPrefix(trimmed, []byte("FROM ")):
		return "dockerfile"
	case bytes.HasPrefix(trimmed, []byte("<!DOCTYPE")), bytes.HasPrefix(trimmed, []byte("<html")):
		return "html"
	}
	if (trimmed[0] == '{' || trimmed[0] == '[') && bytes.Contains(trimmed, []byte(`"`)) {
		return "json"
	}
	upper := strings.ToUpper(string(trimmed))
	if strings.HasPrefix(upper, "SELECT ") || strings.HasPrefix(upper, "INSERT ") ||
		strings.HasPrefix(upper, "CREATE ") {
		return "sql"
	}
	return ""
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
