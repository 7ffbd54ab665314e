package cursor

import (
	"sort"

	"github.com/dshills/gust/internal/engine/rope"
)

// Set is a group of selections with one designated primary. A set
// always holds at least one selection, and every selection is kept
// valid against the text by running the fixup methods after each edit.
type Set struct {
	// Primary indexes the selection kept when the set collapses to one.
	Primary int
	// Selections in the set.
	Selections []Selection

	// columns records one desired column per selection before vertical
	// movement, so repeated up/down strokes crossing shorter lines keep
	// aiming at the column the run started from. Empty when unset.
	columns []int
}

// NewSet creates a set holding a single caret at the text start.
func NewSet() Set {
	return Set{Selections: []Selection{NewCaret(0)}}
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() Set {
	out := Set{Primary: s.Primary}
	out.Selections = make([]Selection, len(s.Selections))
	copy(out.Selections, s.Selections)
	if len(s.columns) > 0 {
		out.columns = make([]int, len(s.columns))
		copy(out.columns, s.columns)
	}
	return out
}

// Equal reports whether two sets hold the same selections, primary,
// and saved columns.
func (s *Set) Equal(other *Set) bool {
	if s.Primary != other.Primary ||
		len(s.Selections) != len(other.Selections) ||
		len(s.columns) != len(other.columns) {
		return false
	}
	for i := range s.Selections {
		if s.Selections[i] != other.Selections[i] {
			return false
		}
	}
	for i := range s.columns {
		if s.columns[i] != other.columns[i] {
			return false
		}
	}
	return true
}

// PrimarySelection returns the designated primary selection.
func (s *Set) PrimarySelection() Selection {
	return s.Selections[s.Primary]
}

// KeepPrimary drops every selection except the primary.
func (s *Set) KeepPrimary() {
	sel := s.Selections[s.Primary]
	s.Selections = s.Selections[:1]
	s.Selections[0] = sel
	s.Primary = 0
}

// Replace installs a single selection, discarding the rest.
func (s *Set) Replace(sel Selection) {
	s.Selections = s.Selections[:1]
	s.Selections[0] = sel
	s.Primary = 0
}

// Add appends a selection and returns its index.
func (s *Set) Add(sel Selection) int {
	s.Selections = append(s.Selections, sel)
	return len(s.Selections) - 1
}

// CollapseAll shrinks every selection to its cursor. Directions are
// left as they were.
func (s *Set) CollapseAll() {
	for i := range s.Selections {
		s.Selections[i] = s.Selections[i].Collapsed()
	}
}

// SortAll orients every selection forward and rederives directions.
// Combined with CollapseAll this leaves all carets facing forward,
// which is what text insertion wants.
func (s *Set) SortAll() {
	for i := range s.Selections {
		s.Selections[i] = s.Selections[i].Sorted().UpdateDirection()
	}
}

// FixOnInsert repairs all selections after n runes were inserted at
// idx. Offsets past the insertion shift right. Ties shift only a
// selection's trailing end, so typing at a forward cursor grows the
// selection over the new text instead of escaping it.
func (s *Set) FixOnInsert(idx Idx, n int) {
	if n <= 0 {
		return
	}
	for i := range s.Selections {
		sel := &s.Selections[i]
		if sel.IsForward() {
			if idx <= sel.Cursor {
				sel.Cursor += Idx(n)
			}
			if idx < sel.Anchor {
				sel.Anchor += Idx(n)
			}
		} else {
			if idx < sel.Cursor {
				sel.Cursor += Idx(n)
			}
			if idx <= sel.Anchor {
				sel.Anchor += Idx(n)
			}
		}
	}
}

// FixOnDelete repairs all selections after n runes were removed at
// idx. Offsets past the removed span shift left; offsets inside it
// land on its start.
func (s *Set) FixOnDelete(idx Idx, n int) {
	if n <= 0 {
		return
	}
	for i := range s.Selections {
		sel := &s.Selections[i]
		sel.Cursor = fixDeleted(sel.Cursor, idx, n)
		sel.Anchor = fixDeleted(sel.Anchor, idx, n)
	}
}

func fixDeleted(e, idx Idx, n int) Idx {
	if e <= idx {
		return e
	}
	return max(e-Idx(n), idx)
}

// SaveColumns records each cursor's column unless columns are already
// saved. Vertical movement calls this before its first step.
func (s *Set) SaveColumns(text rope.Rope) {
	if len(s.columns) > 0 {
		return
	}
	s.columns = make([]int, len(s.Selections))
	for i, sel := range s.Selections {
		s.columns[i] = sel.Cursor.ToPosition(text).Column
	}
}

// ClearColumns drops the saved columns. Horizontal movement and edits
// call this so the next vertical run starts from a fresh column.
func (s *Set) ClearColumns() {
	s.columns = s.columns[:0]
}

// SavedColumn returns the column recorded for selection i, or -1 when
// none is saved.
func (s *Set) SavedColumn(i int) int {
	if i < 0 || i >= len(s.columns) {
		return -1
	}
	return s.columns[i]
}

// Lines returns the sorted distinct line numbers the selections touch.
// A selection's end is pulled back one rune first, so a span ending
// exactly on a line start does not claim that line.
func (s *Set) Lines(text rope.Rope) []int {
	seen := make(map[int]struct{})
	var lines []int
	for _, sel := range s.Selections {
		from, to := sel.SortedPair()
		to = max(from, to.Backward(1))
		first := from.ToPosition(text).Line
		last := to.ToPosition(text).Line
		for l := first; l <= last; l++ {
			if _, ok := seen[l]; !ok {
				seen[l] = struct{}{}
				lines = append(lines, l)
			}
		}
	}
	sort.Ints(lines)
	return lines
}
