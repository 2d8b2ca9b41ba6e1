package engine

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gomdedit/internal/logging"
	"github.com/yaklabco/gomdedit/pkg/blockctx"
	"github.com/yaklabco/gomdedit/pkg/config"
	"github.com/yaklabco/gomdedit/pkg/langdetect"
	"github.com/yaklabco/gomdedit/pkg/mdtoken"
	"github.com/yaklabco/gomdedit/pkg/paragraph"
)

// ViewerID identifies one attached viewer.
type ViewerID int

// Document owns the shared text buffer and all state derived from it: the
// paragraph offset index, the block context, and the per-paragraph display
// types. Viewers hold only their id and per-viewer cursor state; they never
// reference each other.
//
// All mutation happens synchronously on the caller's goroutine. The only
// asynchrony in the engine is the per-viewer cursor debounce.
type Document struct {
	content string
	paras   []string
	index   *paragraph.Index
	blocks  *blockctx.Context
	types   []DisplayType

	viewers map[ViewerID]*Viewer
	nextID  ViewerID

	attrs  AttrStore
	cfg    *config.Config
	logger *log.Logger
	sched  Scheduler
}

// New creates a document around the given content and derives all state.
func New(content string, opts ...Option) *Document {
	d := &Document{
		viewers: make(map[ViewerID]*Viewer),
		cfg:     config.Default(),
		logger:  logging.Default(),
		sched:   timerScheduler{},
		index:   paragraph.NewIndex(""),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.reset(content)
	return d
}

// reset derives every cached structure from scratch: paragraph texts, the
// offset index, the block context, and the display type of each paragraph.
func (d *Document) reset(content string) {
	d.content = content
	d.paras = paragraph.Split(content)
	d.index.Rebuild(content)
	d.blocks = blockctx.Scan(d.paras)

	d.types = make([]DisplayType, len(d.paras))
	for i, text := range d.paras {
		d.types[i] = DisplayTypeFor(d.parse(text), d.blocks.ClassOf(i))
	}

	if d.attrs != nil {
		for i := range d.types {
			d.attrs.SetParagraphType(i, d.types[i])
		}
	}
}

// parse tokenizes one paragraph using the configured list indent width.
func (d *Document) parse(text string) []mdtoken.Token {
	return mdtoken.ParseIndent(text, d.cfg.TabWidth)
}

// Content returns the current document text.
func (d *Document) Content() string {
	return d.content
}

// Paragraphs returns the paragraph texts, terminators stripped.
func (d *Document) Paragraphs() []string {
	out := make([]string, len(d.paras))
	copy(out, d.paras)
	return out
}

// ParagraphCount returns the number of paragraphs.
func (d *Document) ParagraphCount() int {
	return len(d.paras)
}

// Index returns the paragraph offset index.
func (d *Document) Index() *paragraph.Index {
	return d.index
}

// Blocks returns the shared block context.
func (d *Document) Blocks() *blockctx.Context {
	return d.blocks
}

// TypeOf returns the last-known display type of the paragraph at index i.
func (d *Document) TypeOf(i int) (DisplayType, bool) {
	if i < 0 || i >= len(d.types) {
		return DisplayType{}, false
	}
	return d.types[i], true
}

// BlockLang returns the language hint of the code block containing
// paragraph i. When the opening fence carries no info string and detection
// is enabled, the language is inferred from the block's content.
func (d *Document) BlockLang(i int) (string, bool) {
	block, ok := d.blocks.BlockAt(i)
	if !ok {
		return "", false
	}
	if block.Lang != "" {
		return block.Lang, true
	}
	if d.cfg == nil || !d.cfg.DetectFenceLanguage {
		return "", true
	}

	end := block.Close
	if block.Unterminated() {
		end = len(d.paras)
	}
	var body strings.Builder
	for p := block.Open + 1; p < end && p < len(d.paras); p++ {
		body.WriteString(d.paras[p])
		body.WriteByte('\n')
	}
	return langdetect.Detect([]byte(body.String())), true
}

// SetContent performs a bulk replace: every derived structure is rebuilt in
// full and every attached viewer is invalidated across the whole document.
func (d *Document) SetContent(content string) {
	d.reset(content)

	all := make([]int, len(d.paras))
	for i := range all {
		all[i] = i
	}
	for _, v := range d.viewers {
		v.handleNotification(Notification{Kind: NoteDisplayInvalidation, Indices: all})
	}
}

// Notification is delivered to each viewer after the document changes.
type Notification struct {
	Kind    NotificationKind
	Edit    Edit
	Indices []int
}

// Apply performs one character-level edit and runs the full decision
// pipeline: mutate, rebuild the index, rescan the block context from the
// edited paragraph, decide the re-tag, stamp attributes, and notify every
// attached viewer. The edit is clamped to the current text bounds.
func (d *Document) Apply(e Edit) Decision {
	e = d.clampEdit(e)

	oldBlocks := d.blocks
	oldTypes := d.types
	oldCount := len(d.paras)

	// Mutation first; the index rebuild must happen before any lookup.
	d.content = d.content[:e.Start] + e.Text + d.content[e.Start+e.Length:]
	d.paras = paragraph.Split(d.content)
	d.index.Rebuild(d.content)

	edited, ok := d.index.IndexForOffset(e.Start)
	if !ok && len(d.paras) > 0 {
		edited = len(d.paras) - 1
		ok = true
	}

	d.blocks = oldBlocks.RescanFrom(edited, d.paras)

	dec := d.decide(e, edited, ok, oldBlocks, oldTypes, oldCount)
	d.applyAttrs(dec)

	d.logger.Debug("edit applied",
		logging.FieldEditStart, e.Start,
		logging.FieldEditLength, e.Length,
		logging.FieldDelta, e.Delta(),
		logging.FieldParagraph, dec.Edited,
		logging.FieldType, dec.Current.String(),
		logging.FieldFullRetag, dec.FullRetag,
	)

	for _, v := range d.viewers {
		v.handleNotification(Notification{Kind: NoteContentEdit, Edit: e, Indices: dec.Invalidate})
	}

	return dec
}

// clampEdit bounds an edit to the current text so retagging never has to
// deal with an out-of-range replacement.
func (d *Document) clampEdit(e Edit) Edit {
	if e.Start < 0 {
		e.Start = 0
	}
	if e.Start > len(d.content) {
		e.Start = len(d.content)
	}
	if e.Length < 0 {
		e.Length = 0
	}
	if e.Start+e.Length > len(d.content) {
		e.Length = len(d.content) - e.Start
	}
	return e
}

// Attach registers a new viewer over this document and returns it.
// The viewer owns its active-paragraph state; nothing is shared with other
// viewers.
func (d *Document) Attach(sink InvalidationSink) *Viewer {
	d.nextID++
	v := &Viewer{
		id:       d.nextID,
		doc:      d,
		sink:     sink,
		sched:    d.sched,
		debounce: d.cfg.Debounce(),
		active:   -1,
	}
	d.viewers[v.id] = v

	d.logger.Debug("viewer attached", logging.FieldViewer, int(v.id))
	return v
}

// Detach releases a viewer's tracker state and deregisters it from update
// notifications. Detaching an unknown id is a no-op.
func (d *Document) Detach(id ViewerID) {
	v, ok := d.viewers[id]
	if !ok {
		return
	}
	v.cancelPending()
	delete(d.viewers, id)

	d.logger.Debug("viewer detached", logging.FieldViewer, int(id))
}

// ViewerCount returns the number of attached viewers.
func (d *Document) ViewerCount() int {
	return len(d.viewers)
}

// Snapshot is an immutable view of the document's derived state.
type Snapshot struct {
	Content    string
	Paragraphs []string
	Types      []DisplayType
	Blocks     []blockctx.Block
}

// Snapshot captures the current content and derived state for tooling.
func (d *Document) Snapshot() Snapshot {
	s := Snapshot{
		Content:    d.content,
		Paragraphs: make([]string, len(d.paras)),
		Types:      make([]DisplayType, len(d.types)),
	}
	copy(s.Paragraphs, d.paras)
	copy(s.Types, d.types)
	s.Blocks = append(s.Blocks, d.blocks.Blocks()...)
	return s
}
