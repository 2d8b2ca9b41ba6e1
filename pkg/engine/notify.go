package engine

import "github.com/yaklabco/gomdedit/pkg/mdtoken"

// NotificationKind distinguishes a genuine content edit from a display-only
// invalidation at the channel level. A redraw request is structurally
// incapable of being mistaken for an edit, so invalidation can never feed
// back into another edit-notification cycle.
type NotificationKind uint8

const (
	// NoteContentEdit signals that stored text changed.
	NoteContentEdit NotificationKind = iota

	// NoteDisplayInvalidation signals a zero-content-length redraw request.
	NoteDisplayInvalidation
)

// String returns the display name of the notification kind.
func (k NotificationKind) String() string {
	if k == NoteDisplayInvalidation {
		return "display-invalidation"
	}
	return "content-edit"
}

// Edit is a single replacement of Length characters at Start with Text.
// A deletion has empty Text; an insertion has zero Length.
type Edit struct {
	Start  int
	Length int
	Text   string
}

// Delta returns the change in document length the edit produces.
func (e Edit) Delta() int {
	return len(e.Text) - e.Length
}

// End returns the offset just past the replaced span in the old text.
func (e Edit) End() int {
	return e.Start + e.Length
}

// Caret returns the cursor offset that must be restored after the edit's
// attribute side effects perturb the live selection: the end of the inserted
// text, or the deletion point for a pure deletion.
func (e Edit) Caret() int {
	return e.Start + len(e.Text)
}

// InvalidationSink receives paragraph-level redraw requests for one viewer.
// Implementations regenerate their cached visual representation for the
// given paragraphs without touching stored text.
type InvalidationSink interface {
	InvalidateDisplay(indices []int)
}

// AttrStore is the host's font and paragraph-style tagging surface, used
// only for cursor-metric accuracy. Implementations must treat any range
// already clamped to zero length as a no-op and must never fail when a
// range touches the end of the text.
type AttrStore interface {
	// SetParagraphType stamps a whole paragraph's structural style.
	SetParagraphType(index int, t DisplayType)

	// SetRangeType stamps a sub-range with the paragraph's structural style.
	SetRangeType(start, end int, t DisplayType)

	// SetInlineKind stamps an inline formatting font over a content range.
	SetInlineKind(start, end int, kind mdtoken.ElementKind)

	// ParagraphType reads back the structural style last stamped on a
	// paragraph. Used as a cross-check against the engine's own record.
	ParagraphType(index int) (DisplayType, bool)
}
