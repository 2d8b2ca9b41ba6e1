package mdtoken

import "strings"

// DefaultIndentWidth is the number of leading spaces that make up one list
// nesting level; a tab counts as one level.
const DefaultIndentWidth = 2

// Parse tokenizes a single paragraph of Markdown text.
// It is referentially transparent: the same text always yields the same
// tokens, with no dependency on document position or prior calls.
// Malformed input is never rejected; an unterminated marker simply produces
// no token.
func Parse(text string) []Token {
	return ParseIndent(text, DefaultIndentWidth)
}

// ParseIndent is Parse with a configurable indentation width for list
// nesting depth. Widths below one fall back to the default.
func ParseIndent(text string, indentWidth int) []Token {
	if text == "" {
		return nil
	}
	if indentWidth < 1 {
		indentWidth = DefaultIndentWidth
	}

	p := &parser{text: text, indentWidth: indentWidth}
	p.run()

	return p.tokens
}

// parser scans one paragraph in fixed precedence order: horizontal rule,
// heading, blockquote, list item, code, then inline spans. Spans claimed by
// an earlier pass are excluded from later passes so ranges never overlap.
type parser struct {
	text        string
	indentWidth int
	tokens      []Token
	excluded    []Range
}

func (p *parser) run() {
	if p.tryRule() {
		return
	}

	content := Range{Start: 0, End: len(p.text)}

	switch {
	case p.tryHeading(&content):
	case p.tryBlockquote(&content):
	case p.tryList(&content):
	case p.tryFence():
		return
	case p.tryIndentedCode():
		return
	}

	// Inline passes over the remaining content. Code spans run first so
	// their interiors are excluded from emphasis scanning; links run before
	// emphasis so emphasis can nest inside link text.
	p.scanCodeSpans(content)
	p.scanLinks(content)
	p.scanPaired(content, 3, KindBoldItalic)
	p.scanPaired(content, 2, KindBold)
	p.scanItalic(content)
}

// tryRule matches a horizontal rule: the whole trimmed line is three or more
// repeated '-', '*', or '_' characters, ignoring embedded spaces. Rules have
// no further structure.
func (p *parser) tryRule() bool {
	trimmed := strings.TrimSpace(p.text)
	if len(trimmed) < 3 {
		return false
	}

	marker := trimmed[0]
	if marker != '-' && marker != '*' && marker != '_' {
		return false
	}

	count := 0
	for i := 0; i < len(trimmed); i++ {
		switch trimmed[i] {
		case marker:
			count++
		case ' ', '\t':
		default:
			return false
		}
	}
	if count < 3 {
		return false
	}

	p.emit(Token{
		Element: KindRule,
		Content: Range{Start: len(p.text), End: len(p.text)},
		Syntax:  []Range{{Start: 0, End: len(p.text)}},
	})
	return true
}

// tryHeading matches "1-6 '#' characters, one or more spaces, then content".
// A heading with empty content is still a heading.
func (p *parser) tryHeading(content *Range) bool {
	i := 0
	for i < len(p.text) && p.text[i] == '#' {
		i++
	}

	level := i
	if level < 1 || level > 6 {
		return false
	}
	if i >= len(p.text) || p.text[i] != ' ' {
		return false
	}
	for i < len(p.text) && p.text[i] == ' ' {
		i++
	}

	*content = Range{Start: i, End: len(p.text)}
	p.emit(Token{
		Element: KindHeading,
		Level:   level,
		Content: *content,
		Syntax:  []Range{{Start: 0, End: i}},
	})
	return true
}

// tryBlockquote counts leading '>' markers, each optionally followed by one
// space, recording the nesting depth.
func (p *parser) tryBlockquote(content *Range) bool {
	i := 0
	depth := 0
	for i < len(p.text) && p.text[i] == '>' {
		depth++
		i++
		if i < len(p.text) && p.text[i] == ' ' {
			i++
		}
	}
	if depth == 0 {
		return false
	}

	*content = Range{Start: i, End: len(p.text)}
	p.emit(Token{
		Element: KindBlockquote,
		Depth:   depth,
		Content: *content,
		Syntax:  []Range{{Start: 0, End: i}},
	})
	return true
}

// tryList matches unordered ('-', '*', '+' plus space) and ordered (digits,
// '.', space) list markers. Leading indentation sets the nesting depth,
// indentWidth spaces or one tab per level.
func (p *parser) tryList(content *Range) bool {
	i := 0
	indent := 0
	for i < len(p.text) && (p.text[i] == ' ' || p.text[i] == '\t') {
		if p.text[i] == '\t' {
			indent += p.indentWidth
		} else {
			indent++
		}
		i++
	}
	depth := 1 + indent/p.indentWidth

	if i < len(p.text) && (p.text[i] == '-' || p.text[i] == '*' || p.text[i] == '+') {
		if i+1 < len(p.text) && p.text[i+1] == ' ' {
			*content = Range{Start: i + 2, End: len(p.text)}
			p.emit(Token{
				Element: KindBulletList,
				Depth:   depth,
				Content: *content,
				Syntax:  []Range{{Start: 0, End: i + 2}},
			})
			return true
		}
		return false
	}

	j := i
	for j < len(p.text) && isDigit(p.text[j]) {
		j++
	}
	if j > i && j+1 < len(p.text) && p.text[j] == '.' && p.text[j+1] == ' ' {
		*content = Range{Start: j + 2, End: len(p.text)}
		p.emit(Token{
			Element: KindOrderedList,
			Depth:   depth,
			Ordinal: p.text[i:j],
			Content: *content,
			Syntax:  []Range{{Start: 0, End: j + 2}},
		})
		return true
	}

	return false
}

// tryFence matches a fence line: trimmed text starting with three or more
// backticks or tildes. The whole line is syntax; whether the paragraph sits
// inside a code block is the block context tracker's concern.
func (p *parser) tryFence() bool {
	trimmed := strings.TrimSpace(p.text)
	if len(trimmed) < 3 {
		return false
	}
	marker := trimmed[0]
	if marker != '`' && marker != '~' {
		return false
	}
	count := 0
	for count < len(trimmed) && trimmed[count] == marker {
		count++
	}
	if count < 3 {
		return false
	}

	p.emit(Token{
		Element: KindCodeBlock,
		Content: Range{Start: len(p.text), End: len(p.text)},
		Syntax:  []Range{{Start: 0, End: len(p.text)}},
	})
	return true
}

// tryIndentedCode matches a line indented by four spaces or a tab.
func (p *parser) tryIndentedCode() bool {
	var syntaxEnd int
	switch {
	case strings.HasPrefix(p.text, "    "):
		syntaxEnd = 4
	case strings.HasPrefix(p.text, "\t"):
		syntaxEnd = 1
	default:
		return false
	}

	p.emit(Token{
		Element: KindCodeBlock,
		Content: Range{Start: syntaxEnd, End: len(p.text)},
		Syntax:  []Range{{Start: 0, End: syntaxEnd}},
	})
	return true
}

// scanCodeSpans finds inline code delimited by matching backtick runs.
// The entire span, backticks included, is claimed so later passes never
// scan emphasis inside code.
func (p *parser) scanCodeSpans(r Range) {
	i := r.Start
	for i < r.End {
		if p.text[i] != '`' {
			i++
			continue
		}

		openEnd := i
		for openEnd < r.End && p.text[openEnd] == '`' {
			openEnd++
		}
		runLen := openEnd - i

		// Find a closing run of exactly the same length.
		closeStart := -1
		k := openEnd
		for k < r.End {
			if p.text[k] != '`' {
				k++
				continue
			}
			runEnd := k
			for runEnd < r.End && p.text[runEnd] == '`' {
				runEnd++
			}
			if runEnd-k == runLen {
				closeStart = k
				break
			}
			k = runEnd
		}
		if closeStart < 0 {
			i = openEnd
			continue
		}

		content := Range{Start: openEnd, End: closeStart}
		if content.IsEmpty() {
			i = closeStart + runLen
			continue
		}

		p.emit(Token{
			Element: KindCodeSpan,
			Content: content,
			Syntax: []Range{
				{Start: i, End: openEnd},
				{Start: closeStart, End: closeStart + runLen},
			},
		})
		p.claim(Range{Start: i, End: closeStart + runLen})
		i = closeStart + runLen
	}
}

// scanLinks finds inline links of the form [text](target). Only the marker
// spans are claimed: emphasis may still nest inside the link text because
// it is scanned in a later pass.
func (p *parser) scanLinks(r Range) {
	i := r.Start
	for i < r.End {
		if p.text[i] != '[' || p.isExcluded(i) {
			i++
			continue
		}

		closeBracket := -1
		for j := i + 1; j < r.End; j++ {
			if p.text[j] == ']' && !p.isExcluded(j) {
				closeBracket = j
				break
			}
		}
		if closeBracket < 0 || closeBracket+1 >= r.End || p.text[closeBracket+1] != '(' {
			i++
			continue
		}

		closeParen := -1
		for j := closeBracket + 2; j < r.End; j++ {
			if p.isExcluded(j) {
				break
			}
			if p.text[j] == ')' {
				closeParen = j
				break
			}
		}
		if closeParen < 0 {
			i = closeBracket + 1
			continue
		}

		p.emit(Token{
			Element: KindLink,
			Content: Range{Start: i + 1, End: closeBracket},
			Target:  p.text[closeBracket+2 : closeParen],
			Syntax: []Range{
				{Start: i, End: i + 1},
				{Start: closeBracket, End: closeParen + 1},
			},
		})
		p.claim(Range{Start: i, End: i + 1})
		p.claim(Range{Start: closeBracket, End: closeParen + 1})
		i = closeParen + 1
	}
}

// scanPaired finds emphasis delimited by runs of runLen identical markers.
// An opener is the trailing runLen markers of a run (the markers hugging the
// content from the left); a closer is the leading runLen markers of a run.
// This asymmetry keeps a boundary like **bold***italic* from being merged:
// the bold closer takes the first two markers of the *** run and leaves the
// third for the italic pass.
func (p *parser) scanPaired(r Range, runLen int, kind ElementKind) {
	for _, marker := range []byte{'*', '_'} {
		p.scanPairedMarker(r, marker, runLen, kind)
	}
}

func (p *parser) scanPairedMarker(r Range, marker byte, runLen int, kind ElementKind) {
	i := r.Start
	for i+2*runLen <= r.End {
		if !p.markerRun(i, marker, runLen) {
			i++
			continue
		}
		// Opener: the run must end here so the markers hug the content.
		if p.isMarkerAt(i+runLen, marker) {
			i++
			continue
		}
		if i+runLen >= r.End || p.text[i+runLen] == ' ' {
			i += runLen
			continue
		}

		closer := -1
		for j := i + runLen + 1; j+runLen <= r.End; j++ {
			if !p.markerRun(j, marker, runLen) {
				continue
			}
			if p.isMarkerAt(j-1, marker) || p.text[j-1] == ' ' {
				continue
			}
			closer = j
			break
		}
		if closer < 0 {
			i += runLen
			continue
		}

		p.emit(Token{
			Element: kind,
			Content: Range{Start: i + runLen, End: closer},
			Syntax: []Range{
				{Start: i, End: i + runLen},
				{Start: closer, End: closer + runLen},
			},
		})
		p.claim(Range{Start: i, End: i + runLen})
		p.claim(Range{Start: closer, End: closer + runLen})
		i = closer + runLen
	}
}

// scanItalic hand-scans single-marker emphasis character by character.
// A bare marker adjacent to an unclaimed marker of the same character is
// never an emphasis boundary, so leftovers of bold runs do not leak in.
func (p *parser) scanItalic(r Range) {
	for _, marker := range []byte{'*', '_'} {
		p.scanItalicMarker(r, marker)
	}
}

func (p *parser) scanItalicMarker(r Range, marker byte) {
	i := r.Start
	for i < r.End {
		if p.text[i] != marker || p.isExcluded(i) {
			i++
			continue
		}
		// Opener must stand alone and be followed by content.
		if p.isMarkerAt(i+1, marker) || p.isMarkerAt(i-1, marker) {
			i++
			continue
		}
		if i+1 >= r.End || p.text[i+1] == ' ' {
			i++
			continue
		}

		closer := -1
		for j := i + 2; j < r.End; j++ {
			if p.text[j] != marker || p.isExcluded(j) {
				continue
			}
			if p.isMarkerAt(j-1, marker) || p.text[j-1] == ' ' {
				continue
			}
			closer = j
			break
		}
		if closer < 0 {
			i++
			continue
		}

		p.emit(Token{
			Element: KindItalic,
			Content: Range{Start: i + 1, End: closer},
			Syntax: []Range{
				{Start: i, End: i + 1},
				{Start: closer, End: closer + 1},
			},
		})
		p.claim(Range{Start: i, End: i + 1})
		p.claim(Range{Start: closer, End: closer + 1})
		i = closer + 1
	}
}

// isMarkerAt reports an unclaimed marker byte at offset i.
// Claimed markers no longer count as adjacency: the third backtick-free '*'
// left over from a consumed ** run may open or close italic.
func (p *parser) isMarkerAt(i int, marker byte) bool {
	if i < 0 || i >= len(p.text) {
		return false
	}
	return p.text[i] == marker && !p.isExcluded(i)
}

// markerRun reports runLen consecutive unclaimed marker bytes at offset i.
func (p *parser) markerRun(i int, marker byte, runLen int) bool {
	if i+runLen > len(p.text) {
		return false
	}
	for k := 0; k < runLen; k++ {
		if p.text[i+k] != marker || p.isExcluded(i+k) {
			return false
		}
	}
	return true
}

func (p *parser) isExcluded(i int) bool {
	for _, r := range p.excluded {
		if r.Contains(i) {
			return true
		}
	}
	return false
}

func (p *parser) claim(r Range) {
	p.excluded = append(p.excluded, r)
}

func (p *parser) emit(tok Token) {
	p.tokens = append(p.tokens, tok)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
