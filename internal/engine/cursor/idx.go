package cursor

import (
	"unicode"

	"github.com/dshills/gust/internal/engine/rope"
)

// Idx is a rune offset into a buffer's text. Valid offsets run from 0
// through the text length inclusive; the length itself addresses the
// end of the text where appending occurs.
type Idx int

// Clamp limits the offset to [0, text.Len()].
func (i Idx) Clamp(text rope.Rope) Idx {
	if i < 0 {
		return 0
	}
	if l := Idx(text.Len()); i > l {
		return l
	}
	return i
}

// Backward moves the offset n runes left, stopping at 0.
func (i Idx) Backward(n int) Idx {
	if n < 0 {
		n = 0
	}
	if Idx(n) >= i {
		return 0
	}
	return i - Idx(n)
}

// Forward moves the offset n runes right, stopping at the text end.
func (i Idx) Forward(n int, text rope.Rope) Idx {
	if n < 0 {
		n = 0
	}
	return (i + Idx(n)).Clamp(text)
}

// LeftRune returns the rune just before the offset, if any.
func (i Idx) LeftRune(text rope.Rope) (rune, bool) {
	if i <= 0 || int(i) > text.Len() {
		return 0, false
	}
	return text.RuneAt(int(i) - 1), true
}

// RightRune returns the rune at the offset, if any.
func (i Idx) RightRune(text rope.Rope) (rune, bool) {
	if i < 0 || int(i) >= text.Len() {
		return 0, false
	}
	return text.RuneAt(int(i)), true
}

// ForwardWord scans over the next word. Newlines under the cursor are
// skipped first, then the run of runes sharing the starting rune's
// category, then any trailing spaces up to but not past the next
// newline. The returned pair is the scan's start and end, in that
// order, for use as a selection's new anchor and cursor.
func (i Idx) ForwardWord(text rope.Rope) (Idx, Idx) {
	cur := i
	for {
		r, ok := cur.RightRune(text)
		if !ok || r != '\n' {
			break
		}
		cur++
	}

	start := cur
	if r, ok := start.RightRune(text); ok {
		startCat := CategoryOf(r)
		for {
			r, ok := cur.RightRune(text)
			if !ok || CategoryOf(r) != startCat {
				break
			}
			cur++
		}
	}

	for {
		r, ok := cur.RightRune(text)
		if !ok || !isLineSpace(r) {
			break
		}
		cur++
	}
	return start, cur
}

// BackwardWord scans over the previous word. Whitespace behind the
// cursor, newlines included, is skipped first, then the run of runes
// sharing the category of the rune just behind. The returned pair is
// the scan's start and end; the end lies before the start, giving a
// backward selection.
func (i Idx) BackwardWord(text rope.Rope) (Idx, Idx) {
	cur := i
	for {
		r, ok := cur.LeftRune(text)
		if !ok || !unicode.IsSpace(r) {
			break
		}
		cur--
	}

	start := cur
	if r, ok := start.LeftRune(text); ok {
		startCat := CategoryOf(r)
		for {
			r, ok := cur.LeftRune(text)
			if !ok || CategoryOf(r) != startCat {
				break
			}
			cur--
		}
	}
	return start, cur
}

// ForwardToLineEnd returns the offset of the line break on the
// cursor's line, or the text end on the last line.
func (i Idx) ForwardToLineEnd(text rope.Rope) Idx {
	ci := int(i.Clamp(text))
	return Idx(text.LineEndOffset(text.LineOfOffset(ci)))
}

// ForwardPastLineEnd returns the offset just after the cursor's line
// break, the start of the next line.
func (i Idx) ForwardPastLineEnd(text rope.Rope) Idx {
	return i.ForwardToLineEnd(text).Forward(1, text)
}

// BackwardToLineStart returns the offset of the first rune on the
// cursor's line.
func (i Idx) BackwardToLineStart(text rope.Rope) Idx {
	ci := int(i.Clamp(text))
	return Idx(text.LineStartOffset(text.LineOfOffset(ci)))
}

// FirstNonBlank returns the offset of the first rune on the cursor's
// line that is not a space or tab, stopping at the line break when the
// line is blank.
func (i Idx) FirstNonBlank(text rope.Rope) Idx {
	cur := i.BackwardToLineStart(text)
	for {
		r, ok := cur.RightRune(text)
		if !ok || !isLineSpace(r) {
			break
		}
		cur++
	}
	return cur
}

// Up moves the offset n lines up. A column of zero or more replaces
// the current column before trimming; pass a negative column to keep
// the cursor's own.
func (i Idx) Up(n int, column int, text rope.Rope) Idx {
	p := i.ToPosition(text)
	p.Line -= n
	if column >= 0 {
		p.Column = column
	}
	return p.TrimLine(text).ToIdx(text)
}

// Down moves the offset n lines down. A column of zero or more
// replaces the current column before trimming; pass a negative column
// to keep the cursor's own.
func (i Idx) Down(n int, column int, text rope.Rope) Idx {
	p := i.ToPosition(text)
	p.Line += n
	if column >= 0 {
		p.Column = column
	}
	return p.TrimLine(text).ToIdx(text)
}

// ToPosition converts the offset to a line/column pair.
func (i Idx) ToPosition(text rope.Rope) Position {
	return PositionFromIdx(i, text)
}
