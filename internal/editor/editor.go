package editor

import (
	"errors"
	"fmt"

	"github.com/dshills/gust/internal/config"
	"github.com/dshills/gust/internal/engine/buffer"
	"github.com/dshills/gust/internal/engine/history"
	"github.com/dshills/gust/internal/engine/rope"
	"github.com/dshills/gust/internal/input/fuzzy"
	"github.com/dshills/gust/internal/input/key"
	"github.com/dshills/gust/internal/session"
)

// ErrNoHandler is returned by the default host functions when the host
// did not supply one.
var ErrNoHandler = errors.New("no handler configured")

// Host supplies the editor's I/O collaborators. Any nil function is
// replaced by one returning ErrNoHandler, which surfaces as a status
// message rather than a crash.
type Host struct {
	// ReadFile loads a file's content for open.
	ReadFile func(path string) (string, error)

	// WriteFile stores a buffer's content on write.
	WriteFile func(path, content string) error

	// FindPaths lists candidate paths for the Find mode. The editor
	// fuzzy-ranks the result itself; the host only gathers candidates.
	FindPaths func(query string) ([]string, error)

	// Session, when present, records visited files and restores the
	// cursor when a recorded path is reopened.
	Session *session.Store
}

// document pairs an undoable buffer with the content last read from or
// written to disk, for the dirty indicator.
type document struct {
	state *history.BufferState
	saved rope.Rope
}

// Editor is one editing session: open documents, the active mode, the
// yank register, and a transient status message.
type Editor struct {
	cfg  config.Config
	host Host

	docs    []*document
	current int

	mode   Mode
	yanked []string
	status string
	quit   bool

	normal  map[key.Event]binding
	gotos   map[key.Event]func(*Editor)
	matcher *fuzzy.Matcher
}

// New creates an editor holding a single scratch document. The keymap
// overrides in cfg are validated here; a bad chord or action name is an
// error.
func New(cfg config.Config, host Host) (*Editor, error) {
	normal, err := normalBindings(cfg.Keymap.Normal)
	if err != nil {
		return nil, err
	}

	if host.ReadFile == nil {
		host.ReadFile = func(string) (string, error) { return "", ErrNoHandler }
	}
	if host.WriteFile == nil {
		host.WriteFile = func(string, string) error { return ErrNoHandler }
	}
	if host.FindPaths == nil {
		host.FindPaths = func(string) ([]string, error) { return nil, ErrNoHandler }
	}

	e := &Editor{
		cfg:     cfg,
		host:    host,
		normal:  normal,
		gotos:   gotoBindings(),
		matcher: fuzzy.NewMatcher(fuzzy.Options{CacheSize: 64}),
	}
	e.docs = append(e.docs, e.newDocument("", ""))
	return e, nil
}

// newDocument builds a document over content with the buffer settings
// from the configuration.
func (e *Editor) newDocument(path, content string) *document {
	buf := buffer.NewBufferFromString(content,
		buffer.WithTabWidth(e.cfg.Editor.TabWidth),
		buffer.WithExpandTabs(e.cfg.Editor.ExpandTabs),
		buffer.WithPath(path),
	)
	return &document{
		state: history.NewBufferState(buf),
		saved: buf.Text(),
	}
}

// Current returns the active document's undo state.
func (e *Editor) Current() *history.BufferState {
	return e.docs[e.current].state
}

// Buffer returns the active document's live buffer. Undo and redo
// replace it, so the result must not be held across key events.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.Current().Buffer()
}

// Mode returns the active mode value.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Status returns the transient status message, empty when none.
func (e *Editor) Status() string {
	return e.status
}

// SetStatus installs a transient status message. It survives until the
// next key event.
func (e *Editor) SetStatus(format string, args ...any) {
	e.status = fmt.Sprintf(format, args...)
}

// ShouldQuit reports whether a quit command has run.
func (e *Editor) ShouldQuit() bool {
	return e.quit
}

// Yanked returns the yank register, one entry per selection at yank
// time, shared across buffers.
func (e *Editor) Yanked() []string {
	return e.yanked
}

// DocumentCount returns the number of open documents.
func (e *Editor) DocumentCount() int {
	return len(e.docs)
}

// DocumentIndex returns the active document's position in the registry.
func (e *Editor) DocumentIndex() int {
	return e.current
}

// Document returns the i-th open document's undo state. The renderer
// keys its per-document view state on these.
func (e *Editor) Document(i int) *history.BufferState {
	return e.docs[i].state
}

// Dirty reports whether the active buffer's text differs from the
// content last read from or written to its file.
func (e *Editor) Dirty() bool {
	doc := e.docs[e.current]
	return !doc.state.Buffer().Text().Equal(doc.saved)
}

// setMode switches modes, committing the outgoing mode's pending edits
// as one undo point. Insert-mode keystrokes stay uncommitted until the
// switch back to Normal seals the whole burst.
func (e *Editor) setMode(m Mode) {
	e.Current().Commit()
	e.mode = m
}

// Open switches to the document backing path, or reads the file into a
// fresh document. A read failure becomes a status message and leaves
// the registry untouched; a missing file opens empty, to be created on
// write. A session-recorded path gets its cursor back.
func (e *Editor) Open(path string) {
	for i, doc := range e.docs {
		if doc.state.Buffer().Path() == path {
			e.current = i
			return
		}
	}

	content, err := e.host.ReadFile(path)
	if err != nil {
		e.SetStatus("open %s: %v", path, err)
		return
	}

	doc := e.newDocument(path, content)
	if e.host.Session != nil {
		if entry, ok := e.host.Session.Lookup(path); ok {
			doc.state.Buffer().MoveToPosition(entry.Line, entry.Column)
		}
	}
	e.docs = append(e.docs, doc)
	e.current = len(e.docs) - 1
}

// Write saves the active buffer to path, or to its own path when path
// is empty. A pathless buffer with no argument, or a write failure, is
// a status message; success updates the dirty baseline.
func (e *Editor) Write(path string) {
	doc := e.docs[e.current]
	buf := doc.state.Buffer()
	if path == "" {
		path = buf.Path()
	}
	if path == "" {
		e.SetStatus("no file name")
		return
	}

	if err := e.host.WriteFile(path, buf.String()); err != nil {
		e.SetStatus("write %s: %v", path, err)
		return
	}
	buf.SetPath(path)
	doc.saved = buf.Text()
	e.SetStatus("wrote %s", path)
}

// Close removes the active document, recording its cursor in the
// session. Closing the last document leaves a fresh scratch one.
func (e *Editor) Close() {
	e.recordSession(e.docs[e.current])
	e.docs = append(e.docs[:e.current], e.docs[e.current+1:]...)
	if len(e.docs) == 0 {
		e.docs = append(e.docs, e.newDocument("", ""))
	}
	if e.current >= len(e.docs) {
		e.current = len(e.docs) - 1
	}
}

// NextDocument cycles to the next document, wrapping at the end.
func (e *Editor) NextDocument() {
	e.current = (e.current + 1) % len(e.docs)
}

// PrevDocument cycles to the previous document, wrapping at the start.
func (e *Editor) PrevDocument() {
	e.current = (e.current - 1 + len(e.docs)) % len(e.docs)
}

// Quit marks the session finished and records every open document in
// the session store. The run loop consults ShouldQuit.
func (e *Editor) Quit() {
	for _, doc := range e.docs {
		e.recordSession(doc)
	}
	e.quit = true
}

// recordSession stores the document's path and primary cursor position,
// when a session store is attached and the document has a path.
func (e *Editor) recordSession(doc *document) {
	if e.host.Session == nil {
		return
	}
	buf := doc.state.Buffer()
	if buf.Path() == "" {
		return
	}
	pos := buf.CursorPosition()
	e.host.Session.Record(session.Entry{
		Path:   buf.Path(),
		Line:   pos.Line,
		Column: pos.Column,
	})
}
