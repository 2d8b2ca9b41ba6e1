package engine

import (
	"sync"
	"time"

	"github.com/yaklabco/gomdedit/internal/logging"
)

// Viewer is the active-paragraph tracker for one attached view.
// Each viewer owns its cursor and active state; two viewers over the same
// document never invalidate each other's paragraphs when only a cursor
// moves.
type Viewer struct {
	id       ViewerID
	doc      *Document
	sink     InvalidationSink
	sched    Scheduler
	debounce time.Duration

	mu     sync.Mutex
	cursor int
	active int // -1 when the cursor sits on no paragraph
	cancel func()
}

// ID returns the viewer's identifier.
func (v *Viewer) ID() ViewerID {
	return v.id
}

// Cursor returns the viewer's last reported cursor offset.
func (v *Viewer) Cursor() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cursor
}

// ActiveParagraph returns the paragraph the cursor sits in. The second
// return is false when there is none, e.g. on the empty trailing line.
func (v *Viewer) ActiveParagraph() (int, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.active < 0 {
		return 0, false
	}
	return v.active, true
}

// SetCursor records a selection-change event. Rapid-fire movement is
// coalesced: a pending recomputation is canceled and a fresh one scheduled,
// so only the most recent position is acted on.
//
// Scheduling happens outside the viewer lock: a scheduler is allowed to run
// the callback inline (Synchronous does), and recompute takes the same lock.
// recompute always reads the current cursor, so a callback that survives a
// cancel race is a harmless no-op pass.
func (v *Viewer) SetCursor(offset int) {
	v.mu.Lock()
	v.cursor = offset
	cancel := v.cancel
	v.cancel = nil
	v.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	next := v.sched.Schedule(v.debounce, v.recompute)
	v.mu.Lock()
	v.cancel = next
	v.mu.Unlock()
}

// Flush runs any pending debounced recomputation immediately.
func (v *Viewer) Flush() {
	v.mu.Lock()
	pending := v.cancel != nil
	if pending {
		v.cancel()
		v.cancel = nil
	}
	v.mu.Unlock()
	if pending {
		v.recompute()
	}
}

// cancelPending drops any scheduled recomputation; used on detach.
func (v *Viewer) cancelPending() {
	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.mu.Unlock()
}

// recompute maps the current cursor through the offset index and, when the
// active paragraph changed, invalidates exactly the previous and new
// indices. Only the presentation flag changed, so no re-parse happens here.
func (v *Viewer) recompute() {
	v.mu.Lock()
	v.cancel = nil
	previous := v.active
	next := -1
	if idx, ok := v.doc.index.IndexForOffset(v.cursor); ok {
		next = idx
	}
	v.active = next
	v.mu.Unlock()

	if previous == next {
		return
	}

	var indices []int
	if previous >= 0 {
		indices = append(indices, previous)
	}
	if next >= 0 {
		indices = append(indices, next)
	}
	v.invalidate(indices)

	v.doc.logger.Debug("active paragraph changed",
		logging.FieldViewer, int(v.id),
		logging.FieldActive, next,
	)
}

// handleNotification reacts to a document-level notification. A content
// edit shifts the cursor by the edit delta and recomputes the active
// paragraph immediately; a display-only invalidation is forwarded without
// touching any state, so it can never look like an edit.
func (v *Viewer) handleNotification(n Notification) {
	if n.Kind == NoteDisplayInvalidation {
		v.invalidate(n.Indices)
		return
	}

	v.mu.Lock()
	if v.cursor > n.Edit.Start {
		v.cursor += n.Edit.Delta()
		if v.cursor < n.Edit.Start {
			v.cursor = n.Edit.Start
		}
	}
	previous := v.active
	next := -1
	if idx, ok := v.doc.index.IndexForOffset(v.cursor); ok {
		next = idx
	}
	v.active = next
	v.mu.Unlock()

	indices := append([]int(nil), n.Indices...)
	if previous != next {
		if previous >= 0 {
			indices = append(indices, previous)
		}
		if next >= 0 {
			indices = append(indices, next)
		}
	}
	v.invalidate(indices)
}

func (v *Viewer) invalidate(indices []int) {
	if v.sink == nil || len(indices) == 0 {
		return
	}
	v.sink.InvalidateDisplay(indices)
}
