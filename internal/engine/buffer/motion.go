package buffer

import (
	"github.com/dshills/gust/internal/engine/cursor"
	"github.com/dshills/gust/internal/engine/rope"
)

// MoveCursor re-anchors every selection to its cursor, then moves the
// cursor through f.
func (b *Buffer) MoveCursor(f func(cursor.Idx, rope.Rope) cursor.Idx) {
	for i := range b.selection.Selections {
		sel := &b.selection.Selections[i]
		next := f(sel.Cursor, b.text)
		sel.Anchor = sel.Cursor
		sel.Cursor = next
		*sel = sel.UpdateDirection()
	}
}

// ExtendCursor moves every cursor through f, leaving anchors in place.
func (b *Buffer) ExtendCursor(f func(cursor.Idx, rope.Rope) cursor.Idx) {
	for i := range b.selection.Selections {
		sel := &b.selection.Selections[i]
		sel.Cursor = f(sel.Cursor, b.text)
		*sel = sel.UpdateDirection()
	}
}

// MoveCursorPair replaces every selection with the (anchor, cursor)
// pair f derives from its cursor. Word motions use this to select the
// span they jumped over.
func (b *Buffer) MoveCursorPair(f func(cursor.Idx, rope.Rope) (cursor.Idx, cursor.Idx)) {
	for i := range b.selection.Selections {
		sel := &b.selection.Selections[i]
		sel.Anchor, sel.Cursor = f(sel.Cursor, b.text)
		*sel = sel.UpdateDirection()
	}
}

// ExtendCursorPair moves every cursor to the pair's target, leaving
// anchors in place.
func (b *Buffer) ExtendCursorPair(f func(cursor.Idx, rope.Rope) (cursor.Idx, cursor.Idx)) {
	for i := range b.selection.Selections {
		sel := &b.selection.Selections[i]
		_, sel.Cursor = f(sel.Cursor, b.text)
		*sel = sel.UpdateDirection()
	}
}

// ChangeSelection rewrites every selection with the (cursor, anchor)
// pair f derives from the current endpoints.
func (b *Buffer) ChangeSelection(f func(c, a cursor.Idx, text rope.Rope) (cursor.Idx, cursor.Idx)) {
	for i := range b.selection.Selections {
		sel := &b.selection.Selections[i]
		sel.Cursor, sel.Anchor = f(sel.Cursor, sel.Anchor, b.text)
		*sel = sel.UpdateDirection()
	}
}

// MoveCursorPosition re-anchors every selection, then moves the cursor
// through a line/column transform.
func (b *Buffer) MoveCursorPosition(f func(cursor.Position, rope.Rope) cursor.Position) {
	for i := range b.selection.Selections {
		sel := &b.selection.Selections[i]
		next := f(sel.Cursor.ToPosition(b.text), b.text).ToIdx(b.text)
		sel.Anchor = sel.Cursor
		sel.Cursor = next
		*sel = sel.UpdateDirection()
	}
}

// ExtendCursorPosition moves every cursor through a line/column
// transform, leaving anchors in place.
func (b *Buffer) ExtendCursorPosition(f func(cursor.Position, rope.Rope) cursor.Position) {
	for i := range b.selection.Selections {
		sel := &b.selection.Selections[i]
		sel.Cursor = f(sel.Cursor.ToPosition(b.text), b.text).ToIdx(b.text)
		*sel = sel.UpdateDirection()
	}
}

// moveCursorWithColumn is MoveCursor with each selection's saved
// desired column passed through, -1 when none is saved.
func (b *Buffer) moveCursorWithColumn(f func(cursor.Idx, int, rope.Rope) cursor.Idx) {
	for i := range b.selection.Selections {
		sel := &b.selection.Selections[i]
		next := f(sel.Cursor, b.selection.SavedColumn(i), b.text)
		sel.Anchor = sel.Cursor
		sel.Cursor = next
		*sel = sel.UpdateDirection()
	}
}

// extendCursorWithColumn is ExtendCursor with the saved column.
func (b *Buffer) extendCursorWithColumn(f func(cursor.Idx, int, rope.Rope) cursor.Idx) {
	for i := range b.selection.Selections {
		sel := &b.selection.Selections[i]
		sel.Cursor = f(sel.Cursor, b.selection.SavedColumn(i), b.text)
		*sel = sel.UpdateDirection()
	}
}

// MoveBackward moves every cursor n runes left.
func (b *Buffer) MoveBackward(n int) {
	b.selection.ClearColumns()
	b.MoveCursor(func(i cursor.Idx, _ rope.Rope) cursor.Idx { return i.Backward(n) })
}

// MoveForward moves every cursor n runes right.
func (b *Buffer) MoveForward(n int) {
	b.selection.ClearColumns()
	b.MoveCursor(func(i cursor.Idx, text rope.Rope) cursor.Idx { return i.Forward(n, text) })
}

// ExtendBackward extends every selection n runes left.
func (b *Buffer) ExtendBackward(n int) {
	b.selection.ClearColumns()
	b.ExtendCursor(func(i cursor.Idx, _ rope.Rope) cursor.Idx { return i.Backward(n) })
}

// ExtendForward extends every selection n runes right.
func (b *Buffer) ExtendForward(n int) {
	b.selection.ClearColumns()
	b.ExtendCursor(func(i cursor.Idx, text rope.Rope) cursor.Idx { return i.Forward(n, text) })
}

// MoveDown moves every cursor n lines down, aiming at the column the
// vertical run started from.
func (b *Buffer) MoveDown(n int) {
	b.selection.SaveColumns(b.text)
	b.moveCursorWithColumn(func(i cursor.Idx, column int, text rope.Rope) cursor.Idx {
		return i.Down(n, column, text)
	})
}

// MoveUp moves every cursor n lines up, aiming at the column the
// vertical run started from.
func (b *Buffer) MoveUp(n int) {
	b.selection.SaveColumns(b.text)
	b.moveCursorWithColumn(func(i cursor.Idx, column int, text rope.Rope) cursor.Idx {
		return i.Up(n, column, text)
	})
}

// ExtendDown extends every selection n lines down.
func (b *Buffer) ExtendDown(n int) {
	b.selection.SaveColumns(b.text)
	b.extendCursorWithColumn(func(i cursor.Idx, column int, text rope.Rope) cursor.Idx {
		return i.Down(n, column, text)
	})
}

// ExtendUp extends every selection n lines up.
func (b *Buffer) ExtendUp(n int) {
	b.selection.SaveColumns(b.text)
	b.extendCursorWithColumn(func(i cursor.Idx, column int, text rope.Rope) cursor.Idx {
		return i.Up(n, column, text)
	})
}

// MoveLineEnd moves every cursor to the end of its line, before the
// newline.
func (b *Buffer) MoveLineEnd() {
	b.selection.ClearColumns()
	b.MoveCursor(cursor.Idx.ForwardToLineEnd)
}

// ExtendLineEnd extends every selection to the end of its cursor's
// line, leaving anchors in place.
func (b *Buffer) ExtendLineEnd() {
	b.selection.ClearColumns()
	b.ExtendCursor(cursor.Idx.ForwardToLineEnd)
}

// MoveLineStart moves every cursor to column 0 of its line.
func (b *Buffer) MoveLineStart() {
	b.selection.ClearColumns()
	b.MoveCursor(cursor.Idx.BackwardToLineStart)
}

// MoveFirstNonBlank moves every cursor past its line's leading
// whitespace.
func (b *Buffer) MoveFirstNonBlank() {
	b.selection.ClearColumns()
	b.MoveCursor(cursor.Idx.FirstNonBlank)
}

// MoveToLine jumps every cursor to the 0-based line, keeping its column
// where the line allows.
func (b *Buffer) MoveToLine(line int) {
	b.selection.ClearColumns()
	b.MoveCursorPosition(func(p cursor.Position, text rope.Rope) cursor.Position {
		return p.SetLine(line, text)
	})
}

// MoveToPosition jumps every cursor to the given line and column, both
// clamped to the text.
func (b *Buffer) MoveToPosition(line, column int) {
	b.selection.ClearColumns()
	b.MoveCursorPosition(func(p cursor.Position, text rope.Rope) cursor.Position {
		return p.SetLine(line, text).SetColumn(column, text)
	})
}

// MoveForwardWord selects from each cursor to the start of the next
// word, cursor at the far end.
func (b *Buffer) MoveForwardWord() {
	b.selection.ClearColumns()
	b.MoveCursorPair(cursor.Idx.ForwardWord)
}

// MoveBackwardWord selects back from each cursor over the previous
// word, cursor at the near end.
func (b *Buffer) MoveBackwardWord() {
	b.selection.ClearColumns()
	b.MoveCursorPair(cursor.Idx.BackwardWord)
}

// ExtendForwardWord extends every selection over the next word.
func (b *Buffer) ExtendForwardWord() {
	b.selection.ClearColumns()
	b.ExtendCursorPair(cursor.Idx.ForwardWord)
}

// ExtendBackwardWord extends every selection over the previous word.
func (b *Buffer) ExtendBackwardWord() {
	b.selection.ClearColumns()
	b.ExtendCursorPair(cursor.Idx.BackwardWord)
}

// MoveLine selects each cursor's whole line, newline included, cursor
// at the start of the next line. Repeated use walks down one line at
// a time.
func (b *Buffer) MoveLine() {
	b.selection.ClearColumns()
	b.ChangeSelection(func(c, _ cursor.Idx, text rope.Rope) (cursor.Idx, cursor.Idx) {
		return c.ForwardPastLineEnd(text), c.BackwardToLineStart(text)
	})
}

// ExtendLine widens each selection to whole lines and pushes the
// cursor past the end of its line.
func (b *Buffer) ExtendLine() {
	b.selection.ClearColumns()
	b.ChangeSelection(func(c, a cursor.Idx, text rope.Rope) (cursor.Idx, cursor.Idx) {
		anchor := min(c, a)
		if anchor.ToPosition(text).Column != 0 {
			anchor = anchor.BackwardToLineStart(text)
		}
		return c.ForwardPastLineEnd(text), anchor
	})
}

// SelectAll replaces all selections with one spanning the whole
// buffer, oriented the way the primary selection was facing.
func (b *Buffer) SelectAll() {
	b.selection.ClearColumns()
	all := cursor.Selection{Anchor: 0, Cursor: cursor.Idx(b.text.Len()), WasForward: true}
	if !b.selection.PrimarySelection().Clamp(b.text).IsForward() {
		all = all.Reversed()
	}
	b.selection.Replace(all)
}

// Collapse drops to the primary selection when several exist,
// otherwise collapses the one selection onto its cursor.
func (b *Buffer) Collapse() {
	b.selection.ClearColumns()
	if len(b.selection.Selections) > 1 {
		b.selection.KeepPrimary()
		return
	}
	sel := &b.selection.Selections[b.selection.Primary]
	*sel = sel.Collapsed()
}

// ReverseSelections swaps anchor and cursor on every selection.
func (b *Buffer) ReverseSelections() {
	b.selection.ClearColumns()
	for i := range b.selection.Selections {
		b.selection.Selections[i] = b.selection.Selections[i].Reversed().UpdateDirection()
	}
}

// SelectInnerSurrounding replaces every selection with the content of
// the nearest enclosing bracket pair, oriented forward. Invoking it
// again widens to the next pair out; with no enclosing pair the whole
// buffer is selected.
func (b *Buffer) SelectInnerSurrounding() {
	b.selection.ClearColumns()
	for i := range b.selection.Selections {
		sel := &b.selection.Selections[i]
		from, to := sel.Clamp(b.text).SortedPair()
		sel.Anchor, sel.Cursor = cursor.SurroundingArea(b.text, from, to)
		*sel = sel.UpdateDirection()
	}
}

// ExpandInnerSurrounding unions every selection with the content of
// its nearest enclosing bracket pair, keeping the selection's
// direction.
func (b *Buffer) ExpandInnerSurrounding() {
	b.selection.ClearColumns()
	for i := range b.selection.Selections {
		sel := &b.selection.Selections[i]
		from, to := sel.Clamp(b.text).SortedPair()
		sFrom, sTo := cursor.SurroundingArea(b.text, from, to)
		from, to = min(from, sFrom), max(to, sTo)
		if sel.IsForward() {
			sel.Anchor, sel.Cursor = from, to
		} else {
			sel.Anchor, sel.Cursor = to, from
		}
		*sel = sel.UpdateDirection()
	}
}
