package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Edit scripts are plain text, one edit per line:
//
//	@offset,length:replacement
//
// The replacement may contain \n and \\ escapes. Blank lines and lines
// starting with '#' are ignored. Scripts drive the replay CLI command and
// the pipeline tests.

// ParseScript parses an edit script into the edits it describes.
func ParseScript(data []byte) ([]Edit, error) {
	var edits []Edit
	for lineNo, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		edit, err := parseScriptLine(line)
		if err != nil {
			return nil, fmt.Errorf("script line %d: %w", lineNo+1, err)
		}
		edits = append(edits, edit)
	}
	return edits, nil
}

func parseScriptLine(line string) (Edit, error) {
	if !strings.HasPrefix(line, "@") {
		return Edit{}, fmt.Errorf("expected '@', got %q", line)
	}

	rest := line[1:]
	comma := strings.IndexByte(rest, ',')
	if comma < 0 {
		return Edit{}, fmt.Errorf("missing ',' in %q", line)
	}
	colon := strings.IndexByte(rest, ':')
	if colon < comma {
		return Edit{}, fmt.Errorf("missing ':' in %q", line)
	}

	start, err := strconv.Atoi(rest[:comma])
	if err != nil {
		return Edit{}, fmt.Errorf("bad offset: %w", err)
	}
	length, err := strconv.Atoi(rest[comma+1 : colon])
	if err != nil {
		return Edit{}, fmt.Errorf("bad length: %w", err)
	}
	if start < 0 || length < 0 {
		return Edit{}, fmt.Errorf("offset and length must not be negative in %q", line)
	}

	return Edit{Start: start, Length: length, Text: unescape(rest[colon+1:])}, nil
}

func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Replay applies a parsed script to the document in order and returns the
// decision for every edit.
func (d *Document) Replay(edits []Edit) []Decision {
	decisions := make([]Decision, 0, len(edits))
	for _, e := range edits {
		decisions = append(decisions, d.Apply(e))
	}
	return decisions
}
