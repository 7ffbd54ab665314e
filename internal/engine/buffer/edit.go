package buffer

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dshills/gust/internal/engine/cursor"
)

// span is a half-open [from, to) rune range slated for removal.
type span struct {
	from, to cursor.Idx
}

// Insert inserts s at every cursor. Unless extend is set, selections
// collapse to their cursors first; the insert fixup then grows each
// one back over its own inserted text.
func (b *Buffer) Insert(s string, extend bool) {
	b.selection.ClearColumns()

	points := make([]cursor.Idx, len(b.selection.Selections))
	for i, sel := range b.selection.Selections {
		points[i] = sel.Cursor
	}
	sort.Slice(points, func(i, j int) bool { return points[i] > points[j] })

	if !extend {
		b.selection.CollapseAll()
		b.selection.SortAll()
	}

	n := utf8.RuneCountInString(s)
	if n == 0 {
		return
	}
	for _, idx := range points {
		b.selection.FixOnInsert(idx, n)
		b.text = b.text.Insert(int(idx), s)
	}
}

// InsertRune inserts a single rune at every cursor.
func (b *Buffer) InsertRune(r rune, extend bool) {
	b.Insert(string(r), extend)
}

// InsertTab advances every cursor to the next tab stop: spaces up to
// the stop when expanding tabs, one literal tab otherwise.
func (b *Buffer) InsertTab(extend bool) {
	if !b.expandTabs {
		b.Insert("\t", extend)
		return
	}

	b.selection.ClearColumns()

	type insertion struct {
		idx cursor.Idx
		n   int
	}
	insertions := make([]insertion, len(b.selection.Selections))
	for i, sel := range b.selection.Selections {
		v := b.VisualColumn(sel.Cursor.ToPosition(b.text))
		insertions[i] = insertion{sel.Cursor, DistanceToNextTabstop(v, b.tabWidth)}
	}
	sort.Slice(insertions, func(i, j int) bool { return insertions[i].idx > insertions[j].idx })

	if !extend {
		b.selection.CollapseAll()
		b.selection.SortAll()
	}

	for _, ins := range insertions {
		b.selection.FixOnInsert(ins.idx, ins.n)
		b.text = b.text.Insert(int(ins.idx), strings.Repeat(" ", ins.n))
	}
}

// InsertNewline breaks the line at every cursor, carrying the current
// line's leading indentation onto the new line.
func (b *Buffer) InsertNewline(extend bool) {
	b.openLine(true, extend)
}

// Open starts a new indented line below every cursor's line and moves
// the cursor onto it.
func (b *Buffer) Open() {
	b.openLine(false, false)
}

// openLine inserts a newline plus indentation per selection. The
// insertion point is the cursor itself after Enter, the end of the
// cursor's line for open. A line prefix holding a still-open bracket
// earns one extra indent level.
func (b *Buffer) openLine(wasEnter, extend bool) {
	b.selection.ClearColumns()

	type entry struct {
		sel       int
		indent    string
		insertIdx cursor.Idx
		increase  bool
	}
	entries := make([]entry, len(b.selection.Selections))
	for i, sel := range b.selection.Selections {
		lineStart := sel.Cursor.BackwardToLineStart(b.text)
		indentEnd := sel.Cursor.FirstNonBlank(b.text)
		insertIdx := sel.Cursor
		if !wasEnter {
			insertIdx = sel.Cursor.ForwardToLineEnd(b.text)
		}
		entries[i] = entry{
			sel:       i,
			indent:    b.text.Slice(int(lineStart), int(indentEnd)),
			insertIdx: insertIdx,
			increase:  cursor.LinePrefixIncreasesIndent(b.text, lineStart, insertIdx),
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].insertIdx > entries[j].insertIdx })

	if !extend {
		b.selection.CollapseAll()
	}

	for _, e := range entries {
		inserted := "\n"
		if e.increase {
			inserted += b.indentUnit(1)
		}
		inserted += e.indent
		n := utf8.RuneCountInString(inserted)

		b.text = b.text.Insert(int(e.insertIdx), inserted)
		b.selection.FixOnInsert(e.insertIdx, n)

		sel := &b.selection.Selections[e.sel]
		sel.Cursor = e.insertIdx.Forward(n, b.text)
		if !extend {
			*sel = sel.Collapsed()
		}
	}
}

// Delete removes every selection's span, substituting the direction
// marker span for empty selections, and returns the removed text in
// ascending offset order.
func (b *Buffer) Delete() []string {
	b.selection.ClearColumns()

	spans := make([]span, len(b.selection.Selections))
	for i := range b.selection.Selections {
		sel := &b.selection.Selections[i]
		from, to := sel.Clamp(b.text).WithDirectionMarker(b.text).SortedPair()
		spans[i] = span{from, to}
		*sel = sel.Collapsed()
	}

	yanked := slicesAscending(b, spans)
	b.removeSpans(spans)
	return yanked
}

// Yank copies every selection's span without touching the buffer.
// Empty selections yield empty strings; no direction marker applies.
func (b *Buffer) Yank() []string {
	spans := make([]span, len(b.selection.Selections))
	for i, sel := range b.selection.Selections {
		from, to := sel.Clamp(b.text).SortedPair()
		spans[i] = span{from, to}
	}
	return slicesAscending(b, spans)
}

// slicesAscending reads the text of each span, ordered by start offset.
func slicesAscending(b *Buffer, spans []span) []string {
	ordered := make([]span, len(spans))
	copy(ordered, spans)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].from < ordered[j].from })

	out := make([]string, len(ordered))
	for i, s := range ordered {
		out[i] = b.text.Slice(int(s.from), int(s.to))
	}
	return out
}

// Paste inserts yanked[i] at the i-th cursor in ascending offset
// order and re-anchors each selection around its pasted text. Extra
// selections beyond the yank registers are left untouched.
func (b *Buffer) Paste(yanked []string) {
	b.selection.ClearColumns()
	b.selection.CollapseAll()
	b.pasteAt(yanked)
}

// PasteExtend inserts like Paste but keeps anchors where they are, so
// existing selections grow over the pasted text.
func (b *Buffer) PasteExtend(yanked []string) {
	b.selection.ClearColumns()
	b.pasteAt(yanked)
}

func (b *Buffer) pasteAt(yanked []string) {
	points := make([]cursor.Idx, len(b.selection.Selections))
	for i, sel := range b.selection.Selections {
		points[i] = sel.Cursor
	}
	sort.Slice(points, func(i, j int) bool { return points[i] < points[j] })

	// Back to front so earlier insertions keep their captured offsets.
	// The k-th cursor by offset takes yanked[k]; cursors past the end
	// of the registers take nothing.
	for k := len(points) - 1; k >= 0; k-- {
		if k >= len(yanked) {
			continue
		}
		n := utf8.RuneCountInString(yanked[k])
		if n == 0 {
			continue
		}
		b.selection.FixOnInsert(points[k], n)
		b.text = b.text.Insert(int(points[k]), yanked[k])
	}
}

// Backspace removes one unit before every cursor. With tabs expanded,
// a cursor at the end of pure leading whitespace whose visual column
// sits on a tab stop eats a full stop's worth; otherwise a single
// character goes. At offset zero nothing happens.
func (b *Buffer) Backspace(extend bool) {
	b.selection.ClearColumns()

	if !b.expandTabs {
		b.backspaceOne(extend)
		return
	}

	type removal struct {
		idx cursor.Idx
		n   int
	}
	removals := make([]removal, len(b.selection.Selections))
	for i, sel := range b.selection.Selections {
		c := sel.Cursor.Clamp(b.text)
		n := 1
		v := b.VisualColumn(c.ToPosition(b.text))
		if v > 0 && v%b.tabWidth == 0 && c == c.FirstNonBlank(b.text) {
			n = b.tabWidth
		}
		removals[i] = removal{c, n}
	}
	sort.Slice(removals, func(i, j int) bool { return removals[i].idx > removals[j].idx })

	if !extend {
		b.selection.CollapseAll()
		b.selection.SortAll()
	}

	for _, rm := range removals {
		start := rm.idx.Backward(rm.n)
		if rm.n > 1 {
			// A tab stop's worth never crosses the line start.
			start = max(start, rm.idx.BackwardToLineStart(b.text))
		}
		if start == rm.idx {
			continue
		}
		b.selection.FixOnDelete(start, int(rm.idx-start))
		b.text = b.text.Delete(int(start), int(rm.idx))
	}
}

// backspaceOne removes exactly one rune before every cursor.
func (b *Buffer) backspaceOne(extend bool) {
	spans := make([]span, 0, len(b.selection.Selections))
	for i := range b.selection.Selections {
		sel := &b.selection.Selections[i]
		c := sel.Cursor.Clamp(b.text)
		spans = append(spans, span{c.Backward(1), c})
		if !extend {
			*sel = sel.Collapsed()
		}
	}
	b.removeSpans(spans)
}

// IncreaseIndent prepends times indent units to every line any
// selection touches.
func (b *Buffer) IncreaseIndent(times int) {
	b.selection.ClearColumns()

	insertions := b.lineStartsDescending()
	unit := b.indentUnit(times)
	n := utf8.RuneCountInString(unit)

	for _, idx := range insertions {
		b.selection.FixOnInsert(idx, n)
		b.text = b.text.Insert(int(idx), unit)
	}
}

// DecreaseIndent strips times indent units from every line any
// selection touches. Lines whose prefix is not exactly the unit are
// left alone.
func (b *Buffer) DecreaseIndent(times int) {
	b.selection.ClearColumns()

	removals := b.lineStartsDescending()
	unit := b.indentUnit(times)
	n := utf8.RuneCountInString(unit)

	for _, idx := range removals {
		end := idx.Forward(n, b.text)
		if int(end-idx) < n {
			continue
		}
		if b.text.Slice(int(idx), int(end)) != unit {
			continue
		}
		b.selection.FixOnDelete(idx, n)
		b.text = b.text.Delete(int(idx), int(end))
	}
}

// lineStartsDescending returns the start offset of every selected
// line, highest first, ready for back-to-front edits.
func (b *Buffer) lineStartsDescending() []cursor.Idx {
	lines := b.selection.Lines(b.text)
	out := make([]cursor.Idx, len(lines))
	for i, line := range lines {
		out[len(lines)-1-i] = cursor.Idx(b.text.LineStartOffset(line))
	}
	return out
}

// removeSpans deletes the given ranges back to front, repairing the
// selections after each removal. Empty spans are skipped.
func (b *Buffer) removeSpans(spans []span) {
	sort.Slice(spans, func(i, j int) bool { return spans[i].from > spans[j].from })
	for _, s := range spans {
		n := int(s.to - s.from)
		if n <= 0 {
			continue
		}
		b.selection.FixOnDelete(s.from, n)
		b.text = b.text.Delete(int(s.from), int(s.to))
	}
}
