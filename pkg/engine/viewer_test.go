package engine_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/yaklabco/gomdedit/pkg/engine"
)

// recordingSink captures every invalidation delivered to one viewer.
type recordingSink struct {
	calls [][]int
}

func (s *recordingSink) InvalidateDisplay(indices []int) {
	s.calls = append(s.calls, append([]int(nil), indices...))
}

// manualScheduler holds scheduled callbacks until the test releases them.
type manualScheduler struct {
	pending  []func()
	canceled int
}

func (m *manualScheduler) Schedule(_ time.Duration, fn func()) func() {
	i := len(m.pending)
	m.pending = append(m.pending, fn)
	return func() {
		if m.pending[i] != nil {
			m.pending[i] = nil
			m.canceled++
		}
	}
}

func (m *manualScheduler) fire() int {
	fired := 0
	for i, fn := range m.pending {
		if fn == nil {
			continue
		}
		m.pending[i] = nil
		fired++
		fn()
	}
	return fired
}

func TestViewer_ActiveParagraph(t *testing.T) {
	doc := engine.New("# a\n\nb\n", engine.WithScheduler(engine.Synchronous()))
	sink := &recordingSink{}
	v := doc.Attach(sink)

	if _, ok := v.ActiveParagraph(); ok {
		t.Fatal("fresh viewer must have no active paragraph")
	}

	v.SetCursor(0)
	if active, ok := v.ActiveParagraph(); !ok || active != 0 {
		t.Errorf("ActiveParagraph = %d, %v; want 0, true", active, ok)
	}
	if len(sink.calls) != 1 || !reflect.DeepEqual(sink.calls[0], []int{0}) {
		t.Errorf("sink calls = %v, want [[0]]", sink.calls)
	}

	// Moving within the same paragraph invalidates nothing.
	v.SetCursor(2)
	if len(sink.calls) != 1 {
		t.Errorf("cursor move within a paragraph must not invalidate, got %v", sink.calls)
	}

	// Crossing into another paragraph invalidates exactly the old and new.
	v.SetCursor(5)
	if active, ok := v.ActiveParagraph(); !ok || active != 2 {
		t.Errorf("ActiveParagraph = %d, %v; want 2, true", active, ok)
	}
	if len(sink.calls) != 2 || !reflect.DeepEqual(sink.calls[1], []int{0, 2}) {
		t.Errorf("sink calls = %v, want second call [0 2]", sink.calls)
	}
}

func TestViewer_InlineSchedulerCompletes(t *testing.T) {
	// A scheduler may run the callback during Schedule itself; SetCursor must
	// return with the recomputation already done rather than blocking on its
	// own lock.
	doc := engine.New("a\nb\n", engine.WithScheduler(engine.Synchronous()))
	sink := &recordingSink{}
	v := doc.Attach(sink)

	done := make(chan struct{})
	go func() {
		v.SetCursor(2)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("SetCursor did not return with an inline scheduler")
	}

	if active, ok := v.ActiveParagraph(); !ok || active != 1 {
		t.Errorf("ActiveParagraph = %d, %v; want 1, true", active, ok)
	}
	if len(sink.calls) != 1 || !reflect.DeepEqual(sink.calls[0], []int{1}) {
		t.Errorf("sink calls = %v, want [[1]]", sink.calls)
	}

	// Flushing after an inline run must not produce another invalidation.
	v.Flush()
	if len(sink.calls) != 1 {
		t.Errorf("Flush after inline recompute invalidated again: %v", sink.calls)
	}
}

func TestViewer_TrailingLineHasNoActiveParagraph(t *testing.T) {
	doc := engine.New("# a\n\nb\n", engine.WithScheduler(engine.Synchronous()))
	sink := &recordingSink{}
	v := doc.Attach(sink)

	v.SetCursor(0)
	v.SetCursor(7)

	if _, ok := v.ActiveParagraph(); ok {
		t.Error("cursor on the empty trailing line must yield no active paragraph")
	}
	// Only the previously active paragraph is invalidated.
	last := sink.calls[len(sink.calls)-1]
	if !reflect.DeepEqual(last, []int{0}) {
		t.Errorf("last invalidation = %v, want [0]", last)
	}
}

func TestViewer_Isolation(t *testing.T) {
	doc := engine.New("# a\n\nb\n", engine.WithScheduler(engine.Synchronous()))
	sink1 := &recordingSink{}
	sink2 := &recordingSink{}
	v1 := doc.Attach(sink1)
	v2 := doc.Attach(sink2)

	v1.SetCursor(0)
	v2.SetCursor(5)

	if a, _ := v1.ActiveParagraph(); a != 0 {
		t.Errorf("v1 active = %d, want 0", a)
	}
	if a, _ := v2.ActiveParagraph(); a != 2 {
		t.Errorf("v2 active = %d, want 2", a)
	}

	// One viewer's cursor movement never reaches the other's sink.
	if len(sink1.calls) != 1 {
		t.Errorf("sink1 calls = %v, want exactly one", sink1.calls)
	}
	if len(sink2.calls) != 1 {
		t.Errorf("sink2 calls = %v, want exactly one", sink2.calls)
	}
}

func TestViewer_Debounce(t *testing.T) {
	sched := &manualScheduler{}
	doc := engine.New("a\nb\nc\n", engine.WithScheduler(sched))
	sink := &recordingSink{}
	v := doc.Attach(sink)

	v.SetCursor(0)
	v.SetCursor(2)
	v.SetCursor(4)

	if sched.canceled != 2 {
		t.Errorf("canceled = %d, want 2: each new event cancels the pending one", sched.canceled)
	}
	if len(sink.calls) != 0 {
		t.Errorf("no invalidation before the debounce fires, got %v", sink.calls)
	}

	if fired := sched.fire(); fired != 1 {
		t.Errorf("fired = %d, want exactly one surviving recomputation", fired)
	}
	if active, ok := v.ActiveParagraph(); !ok || active != 2 {
		t.Errorf("ActiveParagraph = %d, %v; want 2 (the last position)", active, ok)
	}
	if len(sink.calls) != 1 || !reflect.DeepEqual(sink.calls[0], []int{2}) {
		t.Errorf("sink calls = %v, want [[2]]", sink.calls)
	}
}

func TestViewer_Flush(t *testing.T) {
	sched := &manualScheduler{}
	doc := engine.New("a\nb\n", engine.WithScheduler(sched))
	sink := &recordingSink{}
	v := doc.Attach(sink)

	v.SetCursor(2)
	v.Flush()

	if active, ok := v.ActiveParagraph(); !ok || active != 1 {
		t.Errorf("ActiveParagraph after Flush = %d, %v; want 1", active, ok)
	}
	if sched.fire() != 0 {
		t.Error("Flush must consume the pending recomputation")
	}

	// Flushing with nothing pending is a no-op.
	before := len(sink.calls)
	v.Flush()
	if len(sink.calls) != before {
		t.Error("idle Flush must not invalidate")
	}
}

func TestViewer_EditShiftsCursor(t *testing.T) {
	doc := engine.New("hello\n", engine.WithScheduler(engine.Synchronous()))
	sink := &recordingSink{}
	v := doc.Attach(sink)
	v.SetCursor(5)

	doc.Apply(engine.Edit{Start: 0, Length: 0, Text: "ab"})
	if got := v.Cursor(); got != 7 {
		t.Errorf("cursor = %d, want 7 after a 2-char insertion before it", got)
	}

	// An edit after the cursor leaves it alone.
	doc.Apply(engine.Edit{Start: 7, Length: 0, Text: "x"})
	if got := v.Cursor(); got != 7 {
		t.Errorf("cursor = %d, want 7: edit at the cursor does not move it", got)
	}
}

func TestViewer_DeletionClampsCursorToEditStart(t *testing.T) {
	doc := engine.New("abcdef\n", engine.WithScheduler(engine.Synchronous()))
	v := doc.Attach(nil)
	v.SetCursor(4)

	// Deleting a span that contains the cursor pulls it back to the start.
	doc.Apply(engine.Edit{Start: 2, Length: 4, Text: ""})
	if got := v.Cursor(); got != 2 {
		t.Errorf("cursor = %d, want 2", got)
	}
}

func TestViewer_EditRecomputesImmediately(t *testing.T) {
	// A content edit bypasses the debounce entirely.
	sched := &manualScheduler{}
	doc := engine.New("a\nb\n", engine.WithScheduler(sched))
	sink := &recordingSink{}
	v := doc.Attach(sink)

	doc.Apply(engine.Edit{Start: 0, Length: 0, Text: "x"})
	if active, ok := v.ActiveParagraph(); !ok || active != 0 {
		t.Errorf("ActiveParagraph = %d, %v; want 0 immediately after the edit", active, ok)
	}
	if len(sched.pending) != 0 {
		t.Error("an edit must not go through the debounce scheduler")
	}
}

func TestViewer_SetContentInvalidatesEverything(t *testing.T) {
	doc := engine.New("a\nb\n", engine.WithScheduler(engine.Synchronous()))
	sink := &recordingSink{}
	v := doc.Attach(sink)
	v.SetCursor(2)
	before := v.Cursor()

	doc.SetContent("x\ny\nz\n")

	last := sink.calls[len(sink.calls)-1]
	if !reflect.DeepEqual(last, []int{0, 1, 2}) {
		t.Errorf("bulk replace must invalidate every paragraph, got %v", last)
	}
	if v.Cursor() != before {
		t.Error("a display invalidation must never move the cursor")
	}
}

func TestDocument_DetachStopsNotifications(t *testing.T) {
	doc := engine.New("a\n", engine.WithScheduler(engine.Synchronous()))
	sink := &recordingSink{}
	v := doc.Attach(sink)

	doc.Detach(v.ID())
	if doc.ViewerCount() != 0 {
		t.Fatalf("ViewerCount = %d, want 0", doc.ViewerCount())
	}

	doc.Apply(engine.Edit{Start: 0, Length: 1, Text: "```"})
	if len(sink.calls) != 0 {
		t.Errorf("detached viewer must receive nothing, got %v", sink.calls)
	}

	// Detaching twice is harmless.
	doc.Detach(v.ID())
}
