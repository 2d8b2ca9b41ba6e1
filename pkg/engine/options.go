package engine

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gomdedit/pkg/config"
)

// Scheduler defers a function call by a delay and returns a cancel func.
// A new selection-change event cancels the pending call before scheduling a
// replacement, so only the most recent cursor position is ever acted on.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) (cancel func())
}

// timerScheduler is the default Scheduler backed by time.AfterFunc.
type timerScheduler struct{}

func (timerScheduler) Schedule(delay time.Duration, fn func()) func() {
	t := time.AfterFunc(delay, fn)
	return func() { t.Stop() }
}

// Synchronous returns a Scheduler that runs callbacks immediately on the
// calling goroutine. Intended for tests and single-threaded hosts that pump
// their own event loop.
func Synchronous() Scheduler {
	return syncScheduler{}
}

type syncScheduler struct{}

func (syncScheduler) Schedule(_ time.Duration, fn func()) func() {
	fn()
	return func() {}
}

// Option configures a Document.
type Option func(*Document)

// WithConfig sets the engine configuration. A nil config keeps defaults.
func WithConfig(cfg *config.Config) Option {
	return func(d *Document) {
		if cfg != nil {
			d.cfg = cfg
		}
	}
}

// WithLogger sets the structured logger used by the document.
func WithLogger(logger *log.Logger) Option {
	return func(d *Document) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithAttrStore attaches the host's attribute-tagging surface.
func WithAttrStore(attrs AttrStore) Option {
	return func(d *Document) {
		d.attrs = attrs
	}
}

// WithScheduler overrides the debounce scheduler used by viewers.
func WithScheduler(s Scheduler) Option {
	return func(d *Document) {
		if s != nil {
			d.sched = s
		}
	}
}
