// Package blockctx tracks fenced code blocks across the paragraphs of a
// document. It classifies every paragraph as outside any block, an opening
// fence, block content, or a closing fence, and records each block's span
// and language hint.
//
// There is exactly one Context per document; it is shared by all viewers.
package blockctx

import "strings"

// Class is a paragraph's relation to fenced code blocks.
type Class uint8

const (
	// Outside means the paragraph is not part of any fenced block.
	Outside Class = iota
	// Opening means the paragraph is the fence line that opens a block.
	Opening
	// Content means the paragraph sits inside a block.
	Content
	// Closing means the paragraph is the fence line that closes a block.
	Closing
)

// String returns the display name of the class.
func (c Class) String() string {
	switch c {
	case Opening:
		return "opening"
	case Content:
		return "content"
	case Closing:
		return "closing"
	default:
		return "outside"
	}
}

// Block records one fenced code block by paragraph index.
type Block struct {
	// Open is the paragraph index of the opening fence line.
	Open int

	// Close is the paragraph index of the closing fence line,
	// or -1 when the block runs unterminated to the end of the document.
	Close int

	// Lang is the language hint from the opening fence's info string,
	// empty when the fence carries none.
	Lang string
}

// Unterminated reports whether the block has no closing fence.
func (b Block) Unterminated() bool {
	return b.Close < 0
}

// Contains reports whether the paragraph index belongs to this block,
// fence lines included.
func (b Block) Contains(i int) bool {
	if i < b.Open {
		return false
	}
	return b.Unterminated() || i <= b.Close
}

// Context is the derived, paragraph-indexed fence state for one document.
type Context struct {
	classes []Class
	blocks  []Block
}

// IsFence reports whether a paragraph is a fence line: trimmed text starting
// with three or more backticks or tildes.
func IsFence(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 3 {
		return false
	}
	marker := trimmed[0]
	if marker != '`' && marker != '~' {
		return false
	}
	return trimmed[1] == marker && trimmed[2] == marker
}

// FenceInfo returns the language token trailing a fence line, if any.
func FenceInfo(text string) string {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimLeft(trimmed, "`~")
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Scan computes the fence context for the full ordered paragraph list.
// The first fence line opens a block; a later fence while inside closes it.
// An unterminated fence leaves every following paragraph classified as
// content until the end of the document.
func Scan(paragraphs []string) *Context {
	c := &Context{classes: make([]Class, len(paragraphs))}

	inside := false
	for i, text := range paragraphs {
		c.classes[i] = classify(text, &inside)
	}
	c.rebuildBlocks(paragraphs)

	return c
}

// classify assigns the class of one paragraph and advances the inside flag.
func classify(text string, inside *bool) Class {
	if IsFence(text) {
		if *inside {
			*inside = false
			return Closing
		}
		*inside = true
		return Opening
	}
	if *inside {
		return Content
	}
	return Outside
}

// RescanFrom recomputes the context after an edit confined to one paragraph.
// It reuses the prefix before the edited paragraph and scans forward only
// until fence parity matches the previous state again; the unchanged tail is
// then copied over. Falls back to a full scan when the paragraph count
// changed, since every index after the edit may have shifted.
func (c *Context) RescanFrom(edited int, paragraphs []string) *Context {
	if c == nil || len(c.classes) != len(paragraphs) {
		return Scan(paragraphs)
	}
	if edited < 0 {
		edited = 0
	}
	if edited >= len(paragraphs) {
		return Scan(paragraphs)
	}

	next := &Context{classes: make([]Class, len(paragraphs))}
	copy(next.classes[:edited], c.classes[:edited])

	inside := edited > 0 && insideAfter(c.classes[edited-1])
	for i := edited; i < len(paragraphs); i++ {
		if i > edited && inside == insideBefore(c.classes[i]) {
			copy(next.classes[i:], c.classes[i:])
			break
		}
		next.classes[i] = classify(paragraphs[i], &inside)
	}
	next.rebuildBlocks(paragraphs)

	return next
}

// insideBefore reports the inside flag on entry to a paragraph of the
// given class.
func insideBefore(c Class) bool {
	return c == Content || c == Closing
}

// insideAfter reports the inside flag on exit from a paragraph of the
// given class.
func insideAfter(c Class) bool {
	return c == Opening || c == Content
}

// rebuildBlocks derives the block list from the class slice. Only fence
// lines are re-examined for their info string.
func (c *Context) rebuildBlocks(paragraphs []string) {
	c.blocks = nil

	var current Block
	open := false
	for i, class := range c.classes {
		switch class {
		case Opening:
			current = Block{Open: i, Close: -1, Lang: FenceInfo(paragraphs[i])}
			open = true
		case Closing:
			current.Close = i
			c.blocks = append(c.blocks, current)
			open = false
		}
	}
	if open {
		c.blocks = append(c.blocks, current)
	}
}

// Len returns the number of classified paragraphs.
func (c *Context) Len() int {
	if c == nil {
		return 0
	}
	return len(c.classes)
}

// ClassOf returns the class of the paragraph at index i,
// Outside when i is out of range.
func (c *Context) ClassOf(i int) Class {
	if c == nil || i < 0 || i >= len(c.classes) {
		return Outside
	}
	return c.classes[i]
}

// InBlock reports whether the paragraph belongs to a fenced block,
// fence lines included.
func (c *Context) InBlock(i int) bool {
	return c.ClassOf(i) != Outside
}

// Blocks returns the fenced blocks in document order.
func (c *Context) Blocks() []Block {
	if c == nil {
		return nil
	}
	return c.blocks
}

// BlockAt returns the block containing the paragraph at index i.
func (c *Context) BlockAt(i int) (Block, bool) {
	if c == nil {
		return Block{}, false
	}
	for _, b := range c.blocks {
		if b.Contains(i) {
			return b, true
		}
	}
	return Block{}, false
}

// LangAt returns the language hint inherited by the paragraph at index i.
func (c *Context) LangAt(i int) (string, bool) {
	b, ok := c.BlockAt(i)
	if !ok {
		return "", false
	}
	return b.Lang, true
}

// Diff returns the indices whose class changed between two contexts.
// Indices present in only one context count as changed.
func Diff(old, next *Context) []int {
	oldLen := old.Len()
	nextLen := next.Len()
	longest := oldLen
	if nextLen > longest {
		longest = nextLen
	}

	var changed []int
	for i := 0; i < longest; i++ {
		if old.ClassOf(i) != next.ClassOf(i) {
			changed = append(changed, i)
		}
	}
	return changed
}
