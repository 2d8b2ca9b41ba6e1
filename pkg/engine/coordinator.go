package engine

import (
	"github.com/yaklabco/gomdedit/internal/logging"
	"github.com/yaklabco/gomdedit/pkg/blockctx"
	"github.com/yaklabco/gomdedit/pkg/mdtoken"
)

// InlineRange is an inline-formatting font to re-apply over a document
// offset range of a body paragraph.
type InlineRange struct {
	Kind  mdtoken.ElementKind
	Range mdtoken.Range
}

// Decision captures the re-tag and invalidation work one edit requires.
type Decision struct {
	// Edited is the paragraph index containing the edit. EditedValid is
	// false when the document has no paragraph there (e.g. it became empty).
	Edited      int
	EditedValid bool

	// Previous and Current are the edited paragraph's display types before
	// and after the edit.
	Previous DisplayType
	Current  DisplayType

	// TypeChanged reports that the structural type flipped, requiring a
	// full-paragraph re-tag because line metrics changed for every
	// character on the line.
	TypeChanged bool

	// FullRetag selects between whole-paragraph and edited-range-only
	// attribute stamping.
	FullRetag bool

	// Retag is the document offset range to stamp. Zero length means the
	// stamping is skipped entirely.
	Retag mdtoken.Range

	// CursorRestore is the offset the live selection must be restored to
	// after attribute writes perturb it. Always set, even for deletions.
	CursorRestore int

	// Inline lists the inline-formatting fonts to re-apply on a body
	// paragraph; these participate in cursor-metric calculation.
	Inline []InlineRange

	// Invalidate lists every other paragraph whose code-block membership
	// flipped as a side effect of this edit. The edited paragraph itself is
	// excluded; it was already handled.
	Invalidate []int
}

// decide combines the fresh tokenizer and block context results with the
// previously recorded display type of the edited paragraph.
func (d *Document) decide(e Edit, edited int, ok bool, oldBlocks *blockctx.Context, oldTypes []DisplayType, oldCount int) Decision {
	dec := Decision{
		Edited:        edited,
		EditedValid:   ok,
		CursorRestore: e.Caret(),
	}

	countChanged := len(d.paras) != oldCount
	changed := blockctx.Diff(oldBlocks, d.blocks)

	if countChanged {
		// Paragraph indices shifted; every recorded type is stale.
		d.types = make([]DisplayType, len(d.paras))
		for i, text := range d.paras {
			d.types[i] = DisplayTypeFor(d.parse(text), d.blocks.ClassOf(i))
		}
	} else {
		for _, i := range changed {
			if i == edited || i < 0 || i >= len(d.types) {
				continue
			}
			d.types[i] = DisplayTypeFor(d.parse(d.paras[i]), d.blocks.ClassOf(i))
		}
	}

	for _, i := range changed {
		if i != edited {
			dec.Invalidate = append(dec.Invalidate, i)
		}
	}

	if !ok {
		return dec
	}

	tokens := d.parse(d.paras[edited])
	current := DisplayTypeFor(tokens, d.blocks.ClassOf(edited))

	var previous DisplayType
	if edited < len(oldTypes) {
		previous = oldTypes[edited]
	}
	d.crossCheckAttrs(edited, previous)

	dec.Previous = previous
	dec.Current = current
	dec.TypeChanged = countChanged || current != previous
	dec.FullRetag = dec.TypeChanged
	d.types[edited] = current

	span, haveSpan := d.index.SpanAt(edited)
	if haveSpan {
		if dec.FullRetag {
			dec.Retag = mdtoken.Range{Start: span.Start, End: span.End}
		} else {
			inserted := mdtoken.Range{Start: e.Start, End: e.Start + len(e.Text)}
			dec.Retag = clampRange(inserted, span.Start, span.End)
		}

		if current.Kind == DisplayBody {
			for _, tok := range tokens {
				if !tok.Element.IsInline() || tok.Content.IsEmpty() {
					continue
				}
				dec.Inline = append(dec.Inline, InlineRange{
					Kind:  tok.Element,
					Range: tok.Content.Shift(span.Start),
				})
			}
		}
	}

	return dec
}

// crossCheckAttrs compares the engine's recorded type against what is
// actually stamped on the paragraph. The record is authoritative; a
// disagreement is logged, never acted on.
func (d *Document) crossCheckAttrs(index int, recorded DisplayType) {
	if d.attrs == nil {
		return
	}
	stamped, found := d.attrs.ParagraphType(index)
	if found && stamped != recorded {
		d.logger.Warn("stamped paragraph style disagrees with recorded type",
			logging.FieldParagraph, index,
			logging.FieldType, recorded.String(),
			logging.FieldStamped, stamped.String(),
		)
	}
}

// applyAttrs performs the attribute side effects of a decision.
// Zero-length ranges are skipped; membership-flipped paragraphs get their
// structural style restamped so cursor metrics stay accurate.
func (d *Document) applyAttrs(dec Decision) {
	if d.attrs == nil {
		return
	}

	if dec.EditedValid {
		switch {
		case dec.FullRetag:
			d.attrs.SetParagraphType(dec.Edited, dec.Current)
		case !dec.Retag.IsEmpty():
			d.attrs.SetRangeType(dec.Retag.Start, dec.Retag.End, dec.Current)
		}
		for _, inline := range dec.Inline {
			if inline.Range.IsEmpty() {
				continue
			}
			d.attrs.SetInlineKind(inline.Range.Start, inline.Range.End, inline.Kind)
		}
	}

	for _, i := range dec.Invalidate {
		if t, ok := d.TypeOf(i); ok {
			d.attrs.SetParagraphType(i, t)
		}
	}
}

// clampRange bounds r to [lo, hi]; the result may be empty.
func clampRange(r mdtoken.Range, lo, hi int) mdtoken.Range {
	if r.Start < lo {
		r.Start = lo
	}
	if r.End > hi {
		r.End = hi
	}
	if r.End < r.Start {
		r.End = r.Start
	}
	return r
}
