package cursor

import (
	"testing"

	"github.com/dshills/gust/internal/engine/rope"
)

func TestSurroundingArea(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		start    Idx
		end      Idx
		wantFrom Idx
		wantTo   Idx
	}{
		{"caret inside parens", "f(a, (b), c)", 6, 6, 6, 7},
		{"repeat expands to outer pair", "f(a, (b), c)", 6, 7, 2, 11},
		{"caret in nested pair", "f((x))", 3, 3, 3, 4},
		{"repeat over nested pair", "f((x))", 3, 4, 2, 5},
		{"sibling pair is skipped", "(a(b)c d)", 7, 7, 1, 8},
		{"mixed bracket kinds", "a[b{c}d]e", 6, 6, 2, 7},
		{"quotes enclose", `say "hi" now`, 5, 5, 5, 7},
		{"no pair falls back to whole buffer", "abc def", 4, 4, 0, 7},
		{"repeat past outermost falls back", "(x)", 1, 2, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := rope.FromString(tt.text)
			from, to := SurroundingArea(text, tt.start, tt.end)
			if from != tt.wantFrom || to != tt.wantTo {
				t.Errorf("SurroundingArea(%q, %d, %d) = (%d, %d), want (%d, %d)",
					tt.text, tt.start, tt.end, from, to, tt.wantFrom, tt.wantTo)
			}
		})
	}
}

func TestSurroundingAreaProgression(t *testing.T) {
	text := rope.FromString("f(a, (b), c)")

	from, to := SurroundingArea(text, 6, 6)
	if got := text.Slice(int(from), int(to)); got != "b" {
		t.Fatalf("first invocation selected %q, want %q", got, "b")
	}
	from, to = SurroundingArea(text, from, to)
	if got := text.Slice(int(from), int(to)); got != "a, (b), c" {
		t.Fatalf("second invocation selected %q, want %q", got, "a, (b), c")
	}
	from, to = SurroundingArea(text, from, to)
	if from != 0 || int(to) != text.Len() {
		t.Fatalf("third invocation = (%d, %d), want the whole buffer", from, to)
	}
}

func TestBackwardToAfterOpening(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		from   Idx
		want   Idx
		wantOK bool
	}{
		{"simple paren", "f(abc)", 4, 2, true},
		{"skips balanced pair", "f(a(b)c)", 7, 2, true},
		{"no opening", "abc", 2, 0, false},
		{"quote opens", `x "y" z`, 4, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := rope.FromString(tt.text)
			got, ok := tt.from.BackwardToAfterOpening(text)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("BackwardToAfterOpening(%d) = (%d, %v), want (%d, %v)",
					tt.from, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestForwardToBeforeClosing(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		from   Idx
		want   Idx
		wantOK bool
	}{
		{"simple paren", "f(abc)", 3, 5, true},
		{"skips balanced pair", "f(a(b)c)", 2, 7, true},
		{"no closing", "abc", 1, 0, false},
		{"quote closes", `x "y" z`, 4, 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := rope.FromString(tt.text)
			got, ok := tt.from.ForwardToBeforeClosing(text)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("ForwardToBeforeClosing(%d) = (%d, %v), want (%d, %v)",
					tt.from, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLinePrefixIncreasesIndent(t *testing.T) {
	tests := []struct {
		name string
		text string
		upTo Idx
		want bool
	}{
		{"open brace", "if x {", 6, true},
		{"balanced call", "f(x)", 4, false},
		{"nested still open", "f(g(x)", 6, true},
		{"close without open", "x)", 2, false},
		{"quote runes are not delimiters", `s := "x"`, 8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := rope.FromString(tt.text)
			if got := LinePrefixIncreasesIndent(text, 0, tt.upTo); got != tt.want {
				t.Errorf("LinePrefixIncreasesIndent(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
