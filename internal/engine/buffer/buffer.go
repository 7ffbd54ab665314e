package buffer

import (
	"strings"

	"github.com/dshills/gust/internal/engine/cursor"
	"github.com/dshills/gust/internal/engine/rope"
)

// Default settings for new buffers.
const (
	DefaultTabWidth = 4
)

// VisualSelection classifies a buffer cell for rendering.
type VisualSelection uint8

const (
	// VisualNone marks a cell outside every selection.
	VisualNone VisualSelection = iota
	// VisualSelected marks a cell strictly inside a selection.
	VisualSelected
	// VisualMarker marks the single cell an empty selection points at.
	VisualMarker
)

// String returns the string representation of the classification.
func (v VisualSelection) String() string {
	switch v {
	case VisualSelected:
		return "selection"
	case VisualMarker:
		return "marker"
	default:
		return "none"
	}
}

// Buffer pairs a rope of text with the selection set editing it.
// It has no internal locking; one goroutine owns a buffer at a time.
type Buffer struct {
	text       rope.Rope
	selection  cursor.Set
	path       string
	tabWidth   int
	expandTabs bool
}

// NewBuffer creates a new empty buffer holding a single caret.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		text:       rope.New(),
		selection:  cursor.NewSet(),
		tabWidth:   DefaultTabWidth,
		expandTabs: true,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content. Line
// endings are normalized to \n; the editing core is newline based.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.text = rope.FromString(normalizeLineEndings(s))
	return b
}

// normalizeLineEndings converts CRLF and CR line endings to LF.
func normalizeLineEndings(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Clone returns an independent copy of the buffer. The rope shares
// structure with the original; selections are deep-copied.
func (b *Buffer) Clone() *Buffer {
	out := *b
	out.selection = b.selection.Clone()
	return &out
}

// Text returns the buffer's rope.
func (b *Buffer) Text() rope.Rope {
	return b.text
}

// String returns the buffer's full content.
func (b *Buffer) String() string {
	return b.text.String()
}

// Len returns the buffer length in runes.
func (b *Buffer) Len() int {
	return b.text.Len()
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int {
	return b.text.LineCount()
}

// Path returns the file path backing the buffer, if any.
func (b *Buffer) Path() string {
	return b.path
}

// SetPath records the file path backing the buffer.
func (b *Buffer) SetPath(path string) {
	b.path = path
}

// TabWidth returns the buffer's tab width.
func (b *Buffer) TabWidth() int {
	return b.tabWidth
}

// ExpandTabs reports whether the buffer inserts spaces for tabs.
func (b *Buffer) ExpandTabs() bool {
	return b.expandTabs
}

// SelectionSet returns a copy of the buffer's selection set.
func (b *Buffer) SelectionSet() cursor.Set {
	return b.selection.Clone()
}

// SetSelectionSet installs a copy of the given selection set.
func (b *Buffer) SetSelectionSet(s cursor.Set) {
	b.selection = s.Clone()
}

// Selections returns a copy of the current selections in set order.
func (b *Buffer) Selections() []cursor.Selection {
	out := make([]cursor.Selection, len(b.selection.Selections))
	copy(out, b.selection.Selections)
	return out
}

// SelectionCount returns the number of selections.
func (b *Buffer) SelectionCount() int {
	return len(b.selection.Selections)
}

// PrimarySelection returns the designated primary selection.
func (b *Buffer) PrimarySelection() cursor.Selection {
	return b.selection.PrimarySelection()
}

// CursorPosition returns the line and column of the first selection's
// cursor, for the status line and scroll tracking.
func (b *Buffer) CursorPosition() cursor.Position {
	return b.selection.Selections[0].Cursor.ToPosition(b.text)
}

// VisualSelectionAt classifies the cell at idx against the selections:
// inside a selection, under an empty selection's direction marker, or
// neither.
func (b *Buffer) VisualSelectionAt(idx cursor.Idx) VisualSelection {
	for _, sel := range b.selection.Selections {
		if sel.Clamp(b.text).ContainsIdx(idx) {
			return VisualSelected
		}
	}
	for _, sel := range b.selection.Selections {
		if sel.IsEmpty() && sel.Clamp(b.text).InDirectionMarker(idx, b.text) {
			return VisualMarker
		}
	}
	return VisualNone
}

// VisualColumn folds tabs before the given position into tab stop
// widths and returns the on-screen column.
func (b *Buffer) VisualColumn(p cursor.Position) int {
	start := b.text.LineStartOffset(p.Line)
	v := 0
	for k := 0; k < p.Column; k++ {
		if b.text.RuneAt(start+k) == '\t' {
			v += DistanceToNextTabstop(v, b.tabWidth)
		} else {
			v++
		}
	}
	return v
}

// indentUnit returns the text one indent step inserts: times stacked
// runs of spaces when expanding tabs, a single tab otherwise.
func (b *Buffer) indentUnit(times int) string {
	if !b.expandTabs {
		return "\t"
	}
	return strings.Repeat(" ", b.tabWidth*times)
}

// DistanceToNextTabstop returns how many columns separate the visual
// column from the next tab stop. A column already on a stop gets the
// full tab width.
func DistanceToNextTabstop(visualColumn, tabWidth int) int {
	return (visualColumn/tabWidth+1)*tabWidth - visualColumn
}

// DistanceToPrevTabstop returns how many columns separate the visual
// column from the previous tab stop. A column already on a stop gets
// the full tab width; column zero gets zero.
func DistanceToPrevTabstop(visualColumn, tabWidth int) int {
	if visualColumn <= 0 {
		return 0
	}
	return visualColumn - (visualColumn-1)/tabWidth*tabWidth
}
