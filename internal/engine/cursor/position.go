package cursor

import (
	"fmt"

	"github.com/dshills/gust/internal/engine/rope"
)

// Position is a line/column pair. Column counts runes from the line
// start and may exceed the line's length between motions; converting
// to an Idx trims it back onto the line. Keeping the untrimmed column
// is what lets consecutive vertical moves pass through short lines
// without losing their place.
type Position struct {
	Line   int
	Column int
}

// PositionFromIdx converts a rune offset to a line/column pair.
func PositionFromIdx(i Idx, text rope.Rope) Position {
	ci := int(i.Clamp(text))
	line := text.LineOfOffset(ci)
	return Position{Line: line, Column: ci - text.LineStartOffset(line)}
}

// ToIdx converts the position to a rune offset, trimming the column
// onto its line first.
func (p Position) ToIdx(text rope.Rope) Idx {
	t := p.TrimColumn(text)
	return Idx(text.LineStartOffset(t.Line) + t.Column)
}

// TrimLine clamps the line to the buffer.
func (p Position) TrimLine(text rope.Rope) Position {
	if last := text.LineCount() - 1; p.Line > last {
		p.Line = last
	}
	if p.Line < 0 {
		p.Line = 0
	}
	return p
}

// TrimColumn clamps the column so the position addresses a rune slot
// on its line. On every line but the last, the column may reach the
// line break but not pass it; on the last line it may sit one past the
// final rune.
func (p Position) TrimColumn(text rope.Rope) Position {
	p = p.TrimLine(text)
	if p.Column < 0 {
		p.Column = 0
	}
	width := lineWidth(p.Line, text)
	switch {
	case width == 0:
		p.Column = 0
	case p.Line+1 == text.LineCount():
		p.Column = min(p.Column, width)
	default:
		p.Column = min(p.Column, width-1)
	}
	return p
}

// SetLine moves the position to the given line, clamped to the buffer.
func (p Position) SetLine(line int, text rope.Rope) Position {
	p.Line = line
	return p.TrimLine(text)
}

// SetColumn moves the position to the given column, trimmed to the line.
func (p Position) SetColumn(column int, text rope.Rope) Position {
	p.Column = column
	return p.TrimColumn(text)
}

// AfterLeadingWhitespace returns the position just past the line's
// leading spaces and tabs, stopping at the line break on blank lines.
func (p Position) AfterLeadingWhitespace(text rope.Rope) Position {
	p = p.TrimLine(text)
	idx := Idx(text.LineStartOffset(p.Line)).FirstNonBlank(text)
	return PositionFromIdx(idx, text)
}

// String returns the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// lineWidth is the span of a line in runes, line break included. The
// last line has no break, so its width is the rune count alone.
func lineWidth(line int, text rope.Rope) int {
	start := text.LineStartOffset(line)
	if line >= text.LineCount()-1 {
		return text.Len() - start
	}
	return text.LineStartOffset(line+1) - start
}
