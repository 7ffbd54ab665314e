package rope

import "unicode/utf8"

// Summary holds aggregated metrics for a text span.
// It is the summary type for the rope tree, combined with Add when
// subtrees are concatenated.
type Summary struct {
	// Bytes is the UTF-8 byte count.
	Bytes int

	// Runes is the Unicode scalar count. All public rope offsets are
	// rune offsets, so this is the metric offset queries descend by.
	Runes int

	// Lines is the number of newline characters.
	Lines int
}

// Add combines two summaries (monoid operation).
func (s Summary) Add(other Summary) Summary {
	return Summary{
		Bytes: s.Bytes + other.Bytes,
		Runes: s.Runes + other.Runes,
		Lines: s.Lines + other.Lines,
	}
}

// IsZero returns true if this is the identity summary.
func (s Summary) IsZero() bool {
	return s.Bytes == 0
}

// ComputeSummary calculates metrics for a string.
func ComputeSummary(s string) Summary {
	sum := Summary{Bytes: len(s)}
	for _, r := range s {
		sum.Runes++
		if r == '\n' {
			sum.Lines++
		}
	}
	return sum
}

// byteIndexOfRune returns the byte index of the i-th rune in s.
// i must be in [0, rune count]; the rune count maps to len(s).
func byteIndexOfRune(s string, i int) int {
	if i <= 0 {
		return 0
	}
	seen := 0
	for bi := range s {
		if seen == i {
			return bi
		}
		seen++
	}
	return len(s)
}

// runesBeforeNthNewline returns the rune offset just past the n-th
// newline (1-indexed) in s, and whether n newlines exist.
func runesBeforeNthNewline(s string, n int) (int, bool) {
	if n <= 0 {
		return 0, true
	}
	count := 0
	runes := 0
	for _, r := range s {
		runes++
		if r == '\n' {
			count++
			if count == n {
				return runes, true
			}
		}
	}
	return runes, false
}

// newlinesInPrefix counts newlines among the first n runes of s.
func newlinesInPrefix(s string, n int) int {
	lines := 0
	runes := 0
	for _, r := range s {
		if runes >= n {
			break
		}
		runes++
		if r == '\n' {
			lines++
		}
	}
	return lines
}

// runeCount is shorthand for utf8.RuneCountInString.
func runeCount(s string) int {
	return utf8.RuneCountInString(s)
}
