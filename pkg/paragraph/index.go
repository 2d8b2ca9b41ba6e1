// Package paragraph maintains the mapping between character offsets and
// paragraph indices for one document. A paragraph is one line of text; its
// span includes the line terminator, so spans are contiguous and
// non-overlapping across the whole document.
package paragraph

import (
	"sort"
	"strings"
)

// Span is the character span of one paragraph, terminator included.
// The End of span i equals the Start of span i+1.
type Span struct {
	Start int
	End   int
	Index int
}

// Index is the ordered offset-span table for a document's paragraphs.
// Callers must Rebuild after any content mutation before issuing lookups.
type Index struct {
	spans       []Span
	contentLen  int
	trailingEOL bool
}

// NewIndex builds an index for the given content.
func NewIndex(content string) *Index {
	ix := &Index{}
	ix.Rebuild(content)
	return ix
}

// Rebuild recomputes every span in a single linear pass.
// A document ending in a line terminator has no paragraph for the empty
// trailing line; an empty document has zero paragraphs.
func (ix *Index) Rebuild(content string) {
	ix.spans = ix.spans[:0]
	ix.contentLen = len(content)
	ix.trailingEOL = strings.HasSuffix(content, "\n")

	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] != '\n' {
			continue
		}
		ix.spans = append(ix.spans, Span{Start: start, End: i + 1, Index: len(ix.spans)})
		start = i + 1
	}
	if start < len(content) {
		ix.spans = append(ix.spans, Span{Start: start, End: len(content), Index: len(ix.spans)})
	}
}

// Count returns the number of paragraphs.
func (ix *Index) Count() int {
	return len(ix.spans)
}

// IndexForOffset returns the paragraph containing the given offset.
// An offset on the empty trailing line after a final terminator, or out of
// range, yields no paragraph; that is a normal state, not an error.
func (ix *Index) IndexForOffset(offset int) (int, bool) {
	if offset < 0 || len(ix.spans) == 0 {
		return 0, false
	}
	if offset >= ix.contentLen {
		if offset > ix.contentLen || ix.trailingEOL {
			return 0, false
		}
		// Cursor at end of a document without a trailing terminator still
		// sits on the last paragraph.
		return len(ix.spans) - 1, true
	}

	i := sort.Search(len(ix.spans), func(k int) bool {
		return ix.spans[k].End > offset
	})
	if i >= len(ix.spans) {
		return 0, false
	}
	return i, true
}

// RangeForIndex returns the character span of the paragraph at index i,
// terminator included.
func (ix *Index) RangeForIndex(i int) (start, end int, ok bool) {
	if i < 0 || i >= len(ix.spans) {
		return 0, 0, false
	}
	return ix.spans[i].Start, ix.spans[i].End, true
}

// SpanAt returns the full span record for the paragraph at index i.
func (ix *Index) SpanAt(i int) (Span, bool) {
	if i < 0 || i >= len(ix.spans) {
		return Span{}, false
	}
	return ix.spans[i], true
}

// Spans returns the ordered span table.
func (ix *Index) Spans() []Span {
	return ix.spans
}

// Split returns the paragraph texts of a document with line terminators
// stripped, in the same order and count as the index built from the same
// content. CRLF terminators are handled.
func Split(content string) []string {
	if content == "" {
		return nil
	}

	var texts []string
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] != '\n' {
			continue
		}
		texts = append(texts, trimCR(content[start:i]))
		start = i + 1
	}
	if start < len(content) {
		texts = append(texts, trimCR(content[start:]))
	}
	return texts
}

func trimCR(line string) string {
	return strings.TrimSuffix(line, "\r")
}
