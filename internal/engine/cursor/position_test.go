package cursor

import (
	"testing"

	"github.com/dshills/gust/internal/engine/rope"
)

func TestPositionFromIdx(t *testing.T) {
	text := rope.FromString("ab\ncd")

	tests := []struct {
		idx  Idx
		want Position
	}{
		{0, Position{0, 0}},
		{1, Position{0, 1}},
		{2, Position{0, 2}},
		{3, Position{1, 0}},
		{5, Position{1, 2}},
	}
	for _, tt := range tests {
		if got := PositionFromIdx(tt.idx, text); got != tt.want {
			t.Errorf("PositionFromIdx(%d) = %v, want %v", tt.idx, got, tt.want)
		}
	}
}

func TestPositionRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"a",
		"ab\ncd",
		"héllo\nwörld\n",
		"\n\n",
		"alpha\nbeta\n\ngamma",
	}
	for _, s := range texts {
		text := rope.FromString(s)
		for i := 0; i <= text.Len(); i++ {
			got := Idx(i).ToPosition(text).ToIdx(text)
			if got != Idx(i) {
				t.Errorf("text %q: offset %d round-tripped to %d", s, i, got)
			}
		}
	}
}

func TestTrimColumn(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  Position
		want Position
	}{
		{"column past line stops at break", "abc\ndef", Position{0, 99}, Position{0, 3}},
		{"last line allows one past end", "abc\ndef", Position{1, 99}, Position{1, 3}},
		{"empty last line", "a\n", Position{1, 5}, Position{1, 0}},
		{"empty text", "", Position{0, 7}, Position{0, 0}},
		{"line out of range clamps", "abc\ndef", Position{9, 1}, Position{1, 1}},
		{"negative column clamps", "abc", Position{0, -2}, Position{0, 0}},
		{"within bounds unchanged", "abc\ndef", Position{0, 2}, Position{0, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := rope.FromString(tt.text)
			if got := tt.pos.TrimColumn(text); got != tt.want {
				t.Errorf("TrimColumn(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestSetLineAndColumn(t *testing.T) {
	text := rope.FromString("abc\ndefgh\ni")

	p := Position{0, 4}.SetLine(1, text)
	if p != (Position{1, 4}) {
		t.Errorf("SetLine(1) = %v, want {1 4}", p)
	}
	p = p.SetLine(99, text)
	if p.Line != 2 {
		t.Errorf("SetLine(99) line = %d, want 2", p.Line)
	}

	c := Position{1, 0}.SetColumn(99, text)
	if c != (Position{1, 5}) {
		t.Errorf("SetColumn(99) = %v, want {1 5}", c)
	}
}

func TestAfterLeadingWhitespace(t *testing.T) {
	text := rope.FromString("  ab\n\tc\n   \nx")

	tests := []struct {
		name string
		pos  Position
		want Position
	}{
		{"spaces", Position{0, 3}, Position{0, 2}},
		{"tab", Position{1, 0}, Position{1, 1}},
		{"blank line stops at break", Position{2, 1}, Position{2, 3}},
		{"no indent", Position{3, 0}, Position{3, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.AfterLeadingWhitespace(text); got != tt.want {
				t.Errorf("AfterLeadingWhitespace(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}
