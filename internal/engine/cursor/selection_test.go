package cursor

import (
	"testing"

	"github.com/dshills/gust/internal/engine/rope"
)

func TestUpdateDirection(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want bool
	}{
		{"forward span", Selection{Anchor: 2, Cursor: 5}, true},
		{"backward span", Selection{Anchor: 5, Cursor: 2, WasForward: true}, false},
		{"empty keeps forward", Selection{Anchor: 3, Cursor: 3, WasForward: true}, true},
		{"empty keeps backward", Selection{Anchor: 3, Cursor: 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.UpdateDirection().WasForward; got != tt.want {
				t.Errorf("WasForward = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortedNormalizesEmptyBackward(t *testing.T) {
	sel := Selection{Anchor: 3, Cursor: 3, WasForward: false}
	got := sel.Sorted()
	if !got.WasForward || got.Anchor != 3 || got.Cursor != 3 {
		t.Errorf("Sorted() = %+v, want forward caret at 3", got)
	}
}

func TestSortedPair(t *testing.T) {
	fwd := Selection{Anchor: 2, Cursor: 5, WasForward: true}
	if from, to := fwd.SortedPair(); from != 2 || to != 5 {
		t.Errorf("forward SortedPair = (%d, %d), want (2, 5)", from, to)
	}
	bwd := Selection{Anchor: 5, Cursor: 2}
	if from, to := bwd.SortedPair(); from != 2 || to != 5 {
		t.Errorf("backward SortedPair = (%d, %d), want (2, 5)", from, to)
	}
}

func TestWithDirectionMarker(t *testing.T) {
	text := rope.FromString("hello")

	tests := []struct {
		name string
		sel  Selection
		want Selection
	}{
		{
			"forward caret marks rune behind",
			Selection{Anchor: 3, Cursor: 3, WasForward: true},
			Selection{Anchor: 3, Cursor: 2, WasForward: true},
		},
		{
			"backward caret marks rune ahead",
			Selection{Anchor: 3, Cursor: 3, WasForward: false},
			Selection{Anchor: 3, Cursor: 4, WasForward: false},
		},
		{
			"forward caret at text start stays empty",
			Selection{Anchor: 0, Cursor: 0, WasForward: true},
			Selection{Anchor: 0, Cursor: 0, WasForward: true},
		},
		{
			"backward caret at text end stays empty",
			Selection{Anchor: 5, Cursor: 5, WasForward: false},
			Selection{Anchor: 5, Cursor: 5, WasForward: false},
		},
		{
			"non-empty passes through",
			Selection{Anchor: 1, Cursor: 4, WasForward: true},
			Selection{Anchor: 1, Cursor: 4, WasForward: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.WithDirectionMarker(text); got != tt.want {
				t.Errorf("WithDirectionMarker = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestContainsIdx(t *testing.T) {
	sel := Selection{Anchor: 2, Cursor: 5, WasForward: true}
	for idx, want := range map[Idx]bool{1: false, 2: true, 4: true, 5: false} {
		if got := sel.ContainsIdx(idx); got != want {
			t.Errorf("ContainsIdx(%d) = %v, want %v", idx, got, want)
		}
	}

	empty := Selection{Anchor: 3, Cursor: 3}
	if empty.ContainsIdx(3) {
		t.Error("empty selection should contain nothing")
	}
}

func TestInDirectionMarker(t *testing.T) {
	text := rope.FromString("hello!")

	fwd := Selection{Anchor: 2, Cursor: 5, WasForward: true}
	if !fwd.InDirectionMarker(4, text) {
		t.Error("forward marker should cover the rune behind the cursor")
	}
	if fwd.InDirectionMarker(5, text) {
		t.Error("forward marker should not cover the cursor slot")
	}

	bwd := Selection{Anchor: 5, Cursor: 2}
	if !bwd.InDirectionMarker(2, text) {
		t.Error("backward marker should cover the rune at the cursor")
	}
	if bwd.InDirectionMarker(1, text) {
		t.Error("backward marker should not cover the rune behind")
	}
}

func TestFixOnInsert(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		at   Idx
		n    int
		want Selection
	}{
		{
			"before the span shifts both",
			Selection{Anchor: 2, Cursor: 5, WasForward: true}, 0, 3,
			Selection{Anchor: 5, Cursor: 8, WasForward: true},
		},
		{
			"at forward cursor grows the span",
			Selection{Anchor: 2, Cursor: 5, WasForward: true}, 5, 3,
			Selection{Anchor: 2, Cursor: 8, WasForward: true},
		},
		{
			"at forward anchor leaves it anchored",
			Selection{Anchor: 2, Cursor: 5, WasForward: true}, 2, 3,
			Selection{Anchor: 2, Cursor: 8, WasForward: true},
		},
		{
			"at backward anchor grows the span",
			Selection{Anchor: 5, Cursor: 2}, 5, 3,
			Selection{Anchor: 8, Cursor: 2},
		},
		{
			"at backward cursor leaves it anchored",
			Selection{Anchor: 5, Cursor: 2}, 2, 3,
			Selection{Anchor: 8, Cursor: 2},
		},
		{
			"after the span leaves it alone",
			Selection{Anchor: 2, Cursor: 5, WasForward: true}, 6, 3,
			Selection{Anchor: 2, Cursor: 5, WasForward: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Set{Selections: []Selection{tt.sel}}
			set.FixOnInsert(tt.at, tt.n)
			if got := set.Selections[0]; got != tt.want {
				t.Errorf("after insert at %d len %d: %+v, want %+v", tt.at, tt.n, got, tt.want)
			}
		})
	}
}

func TestFixOnDelete(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		at   Idx
		n    int
		want Selection
	}{
		{
			"after the span leaves it alone",
			Selection{Anchor: 1, Cursor: 2, WasForward: true}, 4, 2,
			Selection{Anchor: 1, Cursor: 2, WasForward: true},
		},
		{
			"before the span shifts both",
			Selection{Anchor: 6, Cursor: 8, WasForward: true}, 2, 2,
			Selection{Anchor: 4, Cursor: 6, WasForward: true},
		},
		{
			"endpoint inside collapses to the start",
			Selection{Anchor: 3, Cursor: 8, WasForward: true}, 2, 2,
			Selection{Anchor: 2, Cursor: 6, WasForward: true},
		},
		{
			"endpoint exactly past the span lands on its start",
			Selection{Anchor: 4, Cursor: 7, WasForward: true}, 2, 2,
			Selection{Anchor: 2, Cursor: 5, WasForward: true},
		},
		{
			"whole selection inside collapses",
			Selection{Anchor: 3, Cursor: 4, WasForward: true}, 2, 5,
			Selection{Anchor: 2, Cursor: 2, WasForward: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Set{Selections: []Selection{tt.sel}}
			set.FixOnDelete(tt.at, tt.n)
			if got := set.Selections[0]; got != tt.want {
				t.Errorf("after delete at %d len %d: %+v, want %+v", tt.at, tt.n, got, tt.want)
			}
		})
	}
}

func TestSetKeepPrimary(t *testing.T) {
	set := Set{
		Primary: 1,
		Selections: []Selection{
			{Anchor: 0, Cursor: 1, WasForward: true},
			{Anchor: 4, Cursor: 6, WasForward: true},
			{Anchor: 9, Cursor: 9},
		},
	}
	set.KeepPrimary()
	if len(set.Selections) != 1 || set.Primary != 0 {
		t.Fatalf("KeepPrimary left %d selections, primary %d", len(set.Selections), set.Primary)
	}
	if got := set.Selections[0]; got != (Selection{Anchor: 4, Cursor: 6, WasForward: true}) {
		t.Errorf("kept %+v, want the old primary", got)
	}
}

func TestSetColumns(t *testing.T) {
	text := rope.FromString("abcdef\nab")
	set := Set{Selections: []Selection{
		{Anchor: 4, Cursor: 4, WasForward: true},
		{Anchor: 8, Cursor: 8, WasForward: true},
	}}

	if got := set.SavedColumn(0); got != -1 {
		t.Fatalf("SavedColumn before save = %d, want -1", got)
	}

	set.SaveColumns(text)
	if got := set.SavedColumn(0); got != 4 {
		t.Errorf("SavedColumn(0) = %d, want 4", got)
	}
	if got := set.SavedColumn(1); got != 1 {
		t.Errorf("SavedColumn(1) = %d, want 1", got)
	}

	// A second save keeps the first run's columns.
	set.Selections[0].Cursor = 1
	set.SaveColumns(text)
	if got := set.SavedColumn(0); got != 4 {
		t.Errorf("SavedColumn(0) after re-save = %d, want 4", got)
	}

	set.ClearColumns()
	if got := set.SavedColumn(0); got != -1 {
		t.Errorf("SavedColumn after clear = %d, want -1", got)
	}
}

func TestSetLines(t *testing.T) {
	text := rope.FromString("aa\nbb\ncc\ndd")

	tests := []struct {
		name string
		sels []Selection
		want []int
	}{
		{
			"span over two lines",
			[]Selection{{Anchor: 0, Cursor: 4, WasForward: true}},
			[]int{0, 1},
		},
		{
			"ending at line start claims only the first",
			[]Selection{{Anchor: 0, Cursor: 3, WasForward: true}},
			[]int{0},
		},
		{
			"caret claims its own line",
			[]Selection{{Anchor: 7, Cursor: 7}},
			[]int{2},
		},
		{
			"overlapping selections dedupe",
			[]Selection{
				{Anchor: 0, Cursor: 4, WasForward: true},
				{Anchor: 3, Cursor: 10, WasForward: true},
			},
			[]int{0, 1, 2, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Set{Selections: tt.sels}
			got := set.Lines(text)
			if len(got) != len(tt.want) {
				t.Fatalf("Lines = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Lines = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestSetCloneAndEqual(t *testing.T) {
	text := rope.FromString("abc\ndef")
	set := NewSet()
	set.Add(Selection{Anchor: 4, Cursor: 6, WasForward: true})
	set.SaveColumns(text)

	clone := set.Clone()
	if !set.Equal(&clone) {
		t.Fatal("clone should equal its source")
	}

	clone.Selections[1].Cursor = 5
	if set.Equal(&clone) {
		t.Error("selection change should break equality")
	}

	clone = set.Clone()
	clone.ClearColumns()
	if set.Equal(&clone) {
		t.Error("column change should break equality")
	}
}
