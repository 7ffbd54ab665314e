package cursor

import "github.com/dshills/gust/internal/engine/rope"

// BackwardToAfterOpening scans left from the offset for the nearest
// unmatched opening delimiter and returns the offset just inside it.
// Balanced pairs passed on the way are skipped by keeping a nesting
// stack. Quote delimiters carry no direction, so they alternate: one
// matching the top of the stack closes it, any other quote opens a
// level, and one found with an empty stack is the enclosing delimiter.
func (i Idx) BackwardToAfterOpening(text rope.Rope) (Idx, bool) {
	var stack []rune
	for pos := i.Clamp(text) - 1; pos >= 0; pos-- {
		r := text.RuneAt(int(pos))
		switch {
		case IsQuoteDelimiter(r):
			switch {
			case len(stack) > 0 && stack[len(stack)-1] == r:
				stack = stack[:len(stack)-1]
			case len(stack) == 0:
				return pos + 1, true
			default:
				stack = append(stack, r)
			}
		case IsClosingDelimiter(r):
			stack = append(stack, r)
		case IsOpeningDelimiter(r):
			comp, _ := Complement(r)
			switch {
			case len(stack) > 0 && stack[len(stack)-1] == comp:
				stack = stack[:len(stack)-1]
			case len(stack) == 0:
				return pos + 1, true
			}
		}
	}
	return 0, false
}

// ForwardToBeforeClosing scans right from the offset for the nearest
// unmatched closing delimiter and returns its offset, the exclusive
// end of the enclosed span. The stack discipline mirrors
// BackwardToAfterOpening.
func (i Idx) ForwardToBeforeClosing(text rope.Rope) (Idx, bool) {
	var stack []rune
	for pos := i.Clamp(text); int(pos) < text.Len(); pos++ {
		r := text.RuneAt(int(pos))
		switch {
		case IsQuoteDelimiter(r):
			switch {
			case len(stack) > 0 && stack[len(stack)-1] == r:
				stack = stack[:len(stack)-1]
			case len(stack) == 0:
				return pos, true
			default:
				stack = append(stack, r)
			}
		case IsOpeningDelimiter(r):
			stack = append(stack, r)
		case IsClosingDelimiter(r):
			comp, _ := Complement(r)
			switch {
			case len(stack) > 0 && stack[len(stack)-1] == comp:
				stack = stack[:len(stack)-1]
			case len(stack) == 0:
				return pos, true
			}
		}
	}
	return 0, false
}

// SurroundingArea returns the span enclosed by the nearest delimiter
// pair fully containing [start, end). When the enclosing span equals
// the incoming one, the search restarts one rune outward on both
// sides, so repeated calls expand to the next outer pair instead of
// standing still. When no pair encloses the span the whole buffer is
// returned.
func SurroundingArea(text rope.Rope, start, end Idx) (Idx, Idx) {
	from, okFrom := start.BackwardToAfterOpening(text)
	to, okTo := end.ForwardToBeforeClosing(text)
	if okFrom && okTo && (from != start || to != end) {
		return from, to
	}
	if okFrom && okTo {
		from, okFrom = start.Backward(1).BackwardToAfterOpening(text)
		to, okTo = end.Forward(1, text).ForwardToBeforeClosing(text)
		if okFrom && okTo {
			return from, to
		}
	}
	return 0, Idx(text.Len())
}

// LinePrefixIncreasesIndent reports whether the runes from the line
// start up to the insertion point leave a bracket open, meaning the
// following line belongs one indent level deeper. Quote delimiters do
// not participate.
func LinePrefixIncreasesIndent(text rope.Rope, lineStart, upTo Idx) bool {
	level := 0
	for pos := lineStart.Clamp(text); pos < upTo.Clamp(text); pos++ {
		r := text.RuneAt(int(pos))
		switch {
		case IsOpeningDelimiter(r):
			level++
		case IsClosingDelimiter(r):
			level--
		}
	}
	return level > 0
}
