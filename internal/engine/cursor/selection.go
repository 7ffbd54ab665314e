package cursor

import (
	"fmt"

	"github.com/dshills/gust/internal/engine/rope"
)

// Selection is a directed span of text between Anchor and Cursor, both
// rune offsets. When the two are equal the selection is a bare caret.
// WasForward remembers the direction of the last motion so that empty
// selections keep a facing: it decides which neighboring rune the
// caret visually occupies and which way the selection grows back out.
type Selection struct {
	Anchor     Idx
	Cursor     Idx
	WasForward bool
}

// NewSelection creates a selection spanning anchor to cursor with its
// direction derived from the endpoint order.
func NewSelection(anchor, cursor Idx) Selection {
	return Selection{Anchor: anchor, Cursor: cursor}.UpdateDirection()
}

// NewCaret creates an empty selection at the given offset. A fresh
// caret faces the rune at its offset, so its direction marker covers
// that rune rather than the one behind.
func NewCaret(offset Idx) Selection {
	return Selection{Anchor: offset, Cursor: offset}
}

// UpdateDirection rederives WasForward from the endpoint order. Empty
// selections keep their previous direction.
func (s Selection) UpdateDirection() Selection {
	if s.Anchor < s.Cursor {
		s.WasForward = true
	} else if s.Cursor < s.Anchor {
		s.WasForward = false
	}
	return s
}

// IsForward reports whether the selection runs left to right from
// anchor to cursor. Empty selections fall back to the remembered
// direction.
func (s Selection) IsForward() bool {
	if s.Anchor < s.Cursor {
		return true
	}
	if s.Cursor < s.Anchor {
		return false
	}
	return s.WasForward
}

// IsEmpty reports whether the selection is a bare caret.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Cursor
}

// Len returns the selection's span in runes.
func (s Selection) Len() int {
	from, to := s.SortedPair()
	return int(to - from)
}

// Collapsed returns the selection shrunk to its cursor.
func (s Selection) Collapsed() Selection {
	s.Anchor = s.Cursor
	return s
}

// Reversed swaps the endpoints and flips the remembered direction.
func (s Selection) Reversed() Selection {
	return Selection{Anchor: s.Cursor, Cursor: s.Anchor, WasForward: !s.WasForward}
}

// Sorted returns the selection oriented forward. Reversing an empty
// backward-facing selection flips it to face forward.
func (s Selection) Sorted() Selection {
	if s.IsForward() {
		return s
	}
	return s.Reversed()
}

// SortedPair returns the endpoints in ascending order.
func (s Selection) SortedPair() (Idx, Idx) {
	if s.IsForward() {
		return s.Anchor, s.Cursor
	}
	return s.Cursor, s.Anchor
}

// Clamp limits both endpoints to the text.
func (s Selection) Clamp(text rope.Rope) Selection {
	s.Anchor = s.Anchor.Clamp(text)
	s.Cursor = s.Cursor.Clamp(text)
	return s
}

// WithDirectionMarker substitutes an empty selection with the one-rune
// span its caret visually occupies: the rune behind the cursor for a
// forward caret, the rune at the cursor for a backward one. Non-empty
// selections are returned unchanged.
func (s Selection) WithDirectionMarker(text rope.Rope) Selection {
	if !s.IsEmpty() {
		return s
	}
	if s.WasForward {
		s.Cursor = s.Cursor.Backward(1)
	} else {
		s.Cursor = s.Cursor.Forward(1, text)
	}
	return s.Clamp(text)
}

// ContainsIdx reports whether the offset lies inside the selection
// span, the cursor's own slot excluded. Empty selections contain
// nothing.
func (s Selection) ContainsIdx(idx Idx) bool {
	from, to := s.SortedPair()
	return from <= idx && idx < to
}

// InDirectionMarker reports whether the offset is the rune slot the
// selection's caret visually occupies.
func (s Selection) InDirectionMarker(idx Idx, text rope.Rope) bool {
	if s.IsForward() {
		return s.Cursor == idx.Forward(1, text)
	}
	return s.Cursor == idx
}

// String renders the selection for debugging.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Caret(%d)", s.Cursor)
	}
	dir := "→"
	if !s.IsForward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%d%s%d)", s.Anchor, dir, s.Cursor)
}
