package cursor

import "unicode"

// Category classifies a rune for word-wise motion. Runs of runes in
// the same category form a single word step.
type Category int

const (
	// CategoryWord covers letters, digits, and underscore.
	CategoryWord Category = iota
	// CategoryWhitespace covers all Unicode whitespace, including newlines.
	CategoryWhitespace
	// CategoryPunctuation covers everything else.
	CategoryPunctuation
)

// IsWordRune reports whether r belongs to a word: a letter, a digit,
// or an underscore.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// CategoryOf returns the motion category of r.
func CategoryOf(r rune) Category {
	switch {
	case IsWordRune(r):
		return CategoryWord
	case unicode.IsSpace(r):
		return CategoryWhitespace
	default:
		return CategoryPunctuation
	}
}

func isLineSpace(r rune) bool {
	return unicode.IsSpace(r) && r != '\n'
}

// Complement returns the delimiter paired with r and whether r is a
// delimiter at all. Brackets map to their counterpart; quote runes map
// to themselves.
func Complement(r rune) (rune, bool) {
	switch r {
	case '(':
		return ')', true
	case ')':
		return '(', true
	case '{':
		return '}', true
	case '}':
		return '{', true
	case '[':
		return ']', true
	case ']':
		return '[', true
	case '<':
		return '>', true
	case '>':
		return '<', true
	case '"', '\'':
		return r, true
	}
	return 0, false
}

// IsOpeningDelimiter reports whether r opens a bracketed region.
// Quotes are excluded; they have no inherent direction.
func IsOpeningDelimiter(r rune) bool {
	switch r {
	case '(', '{', '[', '<':
		return true
	}
	return false
}

// IsClosingDelimiter reports whether r closes a bracketed region.
func IsClosingDelimiter(r rune) bool {
	switch r {
	case ')', '}', ']', '>':
		return true
	}
	return false
}

// IsQuoteDelimiter reports whether r is a self-matching delimiter.
func IsQuoteDelimiter(r rune) bool {
	return r == '"' || r == '\''
}
