package buffer

import (
	"testing"

	"github.com/dshills/gust/internal/engine/cursor"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()

	if b.Len() != 0 {
		t.Errorf("expected length 0, got %d", b.Len())
	}
	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}
	if b.TabWidth() != DefaultTabWidth {
		t.Errorf("expected tab width %d, got %d", DefaultTabWidth, b.TabWidth())
	}
	if !b.ExpandTabs() {
		t.Error("expected expand tabs on by default")
	}
	wantSelections(t, b, 0, 0)
}

func TestNewBufferOptions(t *testing.T) {
	b := NewBuffer(WithTabWidth(8), WithExpandTabs(false), WithPath("notes.txt"))

	if b.TabWidth() != 8 {
		t.Errorf("expected tab width 8, got %d", b.TabWidth())
	}
	if b.ExpandTabs() {
		t.Error("expected expand tabs off")
	}
	if b.Path() != "notes.txt" {
		t.Errorf("expected path notes.txt, got %q", b.Path())
	}
}

func TestWithTabWidthRejectsZero(t *testing.T) {
	b := NewBuffer(WithTabWidth(0))

	if b.TabWidth() != DefaultTabWidth {
		t.Errorf("expected tab width %d, got %d", DefaultTabWidth, b.TabWidth())
	}
}

func TestNewBufferFromStringNormalizesLineEndings(t *testing.T) {
	b := NewBufferFromString("a\r\nb\rc")

	if got := b.String(); got != "a\nb\nc" {
		t.Errorf("expected normalized text, got %q", got)
	}
	if b.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", b.LineCount())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := bufWith(t, "ab", cursor.NewCaret(0))
	c := b.Clone()

	b.Insert("X", false)

	wantText(t, c, "ab")
	wantSelections(t, c, 0, 0)
	wantText(t, b, "Xab")

	c.MoveForward(2)
	wantSelections(t, c, 0, 2)
	wantSelections(t, b, 0, 1)
}

func TestSetSelectionSetStoresCopy(t *testing.T) {
	b := NewBufferFromString("abcd")
	set := cursor.Set{Selections: []cursor.Selection{cursor.NewCaret(1)}}

	b.SetSelectionSet(set)
	set.Selections[0] = cursor.NewCaret(3)

	wantSelections(t, b, 1, 1)
}

func TestCursorPosition(t *testing.T) {
	b := bufWith(t, "ab\ncd", cursor.NewCaret(4))

	if pos := b.CursorPosition(); pos.Line != 1 || pos.Column != 1 {
		t.Errorf("expected 1:1, got %v", pos)
	}
}

func TestVisualSelectionAt(t *testing.T) {
	t.Run("span", func(t *testing.T) {
		b := bufWith(t, "abcd", cursor.NewSelection(1, 3))

		want := []VisualSelection{VisualNone, VisualSelected, VisualSelected, VisualNone}
		for idx, expected := range want {
			if got := b.VisualSelectionAt(cursor.Idx(idx)); got != expected {
				t.Errorf("idx %d: expected %v, got %v", idx, expected, got)
			}
		}
	})

	t.Run("forward caret marks rune before it", func(t *testing.T) {
		b := bufWith(t, "abcd", cursor.Selection{Anchor: 2, Cursor: 2, WasForward: true})

		if got := b.VisualSelectionAt(1); got != VisualMarker {
			t.Errorf("expected marker at 1, got %v", got)
		}
		if got := b.VisualSelectionAt(2); got != VisualNone {
			t.Errorf("expected none at 2, got %v", got)
		}
	})

	t.Run("backward caret marks rune at it", func(t *testing.T) {
		b := bufWith(t, "abcd", cursor.NewCaret(2))

		if got := b.VisualSelectionAt(2); got != VisualMarker {
			t.Errorf("expected marker at 2, got %v", got)
		}
		if got := b.VisualSelectionAt(1); got != VisualNone {
			t.Errorf("expected none at 1, got %v", got)
		}
	})
}

func TestVisualColumn(t *testing.T) {
	b := NewBufferFromString("a\tb\tc")

	want := []int{0, 1, 4, 5, 8, 9}
	for col, expected := range want {
		p := cursor.Position{Line: 0, Column: col}
		if got := b.VisualColumn(p); got != expected {
			t.Errorf("column %d: expected visual %d, got %d", col, expected, got)
		}
	}
}

func TestDistanceToNextTabstop(t *testing.T) {
	cases := []struct {
		v, want int
	}{
		{0, 4}, {1, 3}, {2, 2}, {3, 1}, {4, 4}, {5, 3}, {8, 4},
	}
	for _, tc := range cases {
		if got := DistanceToNextTabstop(tc.v, 4); got != tc.want {
			t.Errorf("next from %d: expected %d, got %d", tc.v, tc.want, got)
		}
	}
}

func TestDistanceToPrevTabstop(t *testing.T) {
	cases := []struct {
		v, want int
	}{
		{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 1}, {8, 4},
	}
	for _, tc := range cases {
		if got := DistanceToPrevTabstop(tc.v, 4); got != tc.want {
			t.Errorf("prev from %d: expected %d, got %d", tc.v, tc.want, got)
		}
	}
}
