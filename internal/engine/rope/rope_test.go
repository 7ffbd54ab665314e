package rope

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNew(t *testing.T) {
	r := New()
	if r.Len() != 0 {
		t.Errorf("New rope should have length 0, got %d", r.Len())
	}
	if !r.IsEmpty() {
		t.Error("New rope should be empty")
	}
	if r.String() != "" {
		t.Errorf("New rope String() should be empty, got %q", r.String())
	}
	if r.LineCount() != 1 {
		t.Errorf("New rope should have 1 line, got %d", r.LineCount())
	}
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"single char", "a"},
		{"short string", "hello"},
		{"with newline", "hello\nworld"},
		{"multiple newlines", "a\nb\nc\nd"},
		{"trailing newline", "last\n"},
		{"unicode", "héllo wörld ☂ 世界"},
		{"long string", strings.Repeat("abcdefghij", 100)},
		{"long with newlines", strings.Repeat("line of text\n", 500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.input)
			if got := r.String(); got != tt.input {
				t.Errorf("String() = %q, want %q", got, tt.input)
			}
			if got, want := r.Len(), utf8.RuneCountInString(tt.input); got != want {
				t.Errorf("Len() = %d, want %d runes", got, want)
			}
			if got, want := r.Bytes(), len(tt.input); got != want {
				t.Errorf("Bytes() = %d, want %d", got, want)
			}
			if got, want := r.LineCount(), strings.Count(tt.input, "\n")+1; got != want {
				t.Errorf("LineCount() = %d, want %d", got, want)
			}
		})
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		offset int
		text   string
		want   string
	}{
		{"into empty", "", 0, "hi", "hi"},
		{"at start", "world", 0, "hello ", "hello world"},
		{"in middle", "hd", 1, "ea", "head"},
		{"at end", "ab", 2, "c", "abc"},
		{"past end clamps", "ab", 99, "c", "abc"},
		{"negative clamps", "bc", -5, "a", "abc"},
		{"empty text", "ab", 1, "", "ab"},
		{"unicode offset", "日本", 1, "の", "日の本"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := FromString(tt.base)
			got := base.Insert(tt.offset, tt.text)
			if got.String() != tt.want {
				t.Errorf("Insert(%d, %q) = %q, want %q", tt.offset, tt.text, got.String(), tt.want)
			}
			if base.String() != tt.base {
				t.Errorf("original mutated: %q", base.String())
			}
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name       string
		base       string
		start, end int
		want       string
	}{
		{"nothing", "abc", 1, 1, "abc"},
		{"inverted range", "abc", 2, 1, "abc"},
		{"prefix", "abcdef", 0, 2, "cdef"},
		{"suffix", "abcdef", 4, 6, "abcd"},
		{"middle", "abcdef", 2, 4, "abef"},
		{"everything", "abcdef", 0, 6, ""},
		{"end past length", "abc", 1, 99, "a"},
		{"unicode range", "a日本b", 1, 3, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := FromString(tt.base)
			got := base.Delete(tt.start, tt.end)
			if got.String() != tt.want {
				t.Errorf("Delete(%d, %d) = %q, want %q", tt.start, tt.end, got.String(), tt.want)
			}
			if base.String() != tt.base {
				t.Errorf("original mutated: %q", base.String())
			}
		})
	}
}

func TestReplace(t *testing.T) {
	r := FromString("one two three")
	r = r.Replace(4, 7, "2")
	if got := r.String(); got != "one 2 three" {
		t.Errorf("Replace = %q, want %q", got, "one 2 three")
	}
	r = r.Replace(0, 0, ">> ")
	if got := r.String(); got != ">> one 2 three" {
		t.Errorf("Replace insert = %q, want %q", got, ">> one 2 three")
	}
	r = r.Replace(0, 3, "")
	if got := r.String(); got != "one 2 three" {
		t.Errorf("Replace delete = %q, want %q", got, "one 2 three")
	}
}

func TestSliceAndRuneAt(t *testing.T) {
	text := "héllo\nwörld"
	r := FromString(text)
	runes := []rune(text)

	for i := 0; i <= len(runes); i++ {
		for j := i; j <= len(runes); j++ {
			want := string(runes[i:j])
			if got := r.Slice(i, j); got != want {
				t.Fatalf("Slice(%d, %d) = %q, want %q", i, j, got, want)
			}
		}
	}

	for i, want := range runes {
		if got := r.RuneAt(i); got != want {
			t.Errorf("RuneAt(%d) = %q, want %q", i, got, want)
		}
	}
	if got := r.RuneAt(len(runes)); got != 0 {
		t.Errorf("RuneAt past end = %q, want 0", got)
	}
	if got := r.RuneAt(-1); got != 0 {
		t.Errorf("RuneAt(-1) = %q, want 0", got)
	}
}

func TestLineQueries(t *testing.T) {
	text := "alpha\nbeta\n\ngamma"
	r := FromString(text)

	if got := r.LineCount(); got != 4 {
		t.Fatalf("LineCount = %d, want 4", got)
	}

	wantLines := []struct {
		start, end int
		text       string
	}{
		{0, 5, "alpha"},
		{6, 10, "beta"},
		{11, 11, ""},
		{12, 17, "gamma"},
	}

	for line, want := range wantLines {
		if got := r.LineStartOffset(line); got != want.start {
			t.Errorf("LineStartOffset(%d) = %d, want %d", line, got, want.start)
		}
		if got := r.LineEndOffset(line); got != want.end {
			t.Errorf("LineEndOffset(%d) = %d, want %d", line, got, want.end)
		}
		if got := r.LineText(line); got != want.text {
			t.Errorf("LineText(%d) = %q, want %q", line, got, want.text)
		}
		if got := r.LineLen(line); got != want.end-want.start {
			t.Errorf("LineLen(%d) = %d, want %d", line, got, want.end-want.start)
		}
	}

	wantLineOf := map[int]int{0: 0, 4: 0, 5: 0, 6: 1, 10: 1, 11: 2, 12: 3, 16: 3, 17: 3}
	for offset, want := range wantLineOf {
		if got := r.LineOfOffset(offset); got != want {
			t.Errorf("LineOfOffset(%d) = %d, want %d", offset, got, want)
		}
	}
}

func TestLineQueriesTrailingNewline(t *testing.T) {
	r := FromString("a\n")
	if got := r.LineCount(); got != 2 {
		t.Fatalf("LineCount = %d, want 2", got)
	}
	if got := r.LineStartOffset(1); got != 2 {
		t.Errorf("LineStartOffset(1) = %d, want 2", got)
	}
	if got := r.LineLen(1); got != 0 {
		t.Errorf("LineLen(1) = %d, want 0", got)
	}
	if got := r.LineOfOffset(2); got != 1 {
		t.Errorf("LineOfOffset(Len) = %d, want 1", got)
	}
}

func TestLineQueriesEmpty(t *testing.T) {
	r := New()
	if got := r.LineStartOffset(0); got != 0 {
		t.Errorf("LineStartOffset(0) = %d, want 0", got)
	}
	if got := r.LineEndOffset(0); got != 0 {
		t.Errorf("LineEndOffset(0) = %d, want 0", got)
	}
	if got := r.LineText(0); got != "" {
		t.Errorf("LineText(0) = %q, want empty", got)
	}
	if got := r.LineOfOffset(0); got != 0 {
		t.Errorf("LineOfOffset(0) = %d, want 0", got)
	}
}

func TestSplitConcatRoundTrip(t *testing.T) {
	text := strings.Repeat("pack my box with five dozen liquor jugs\n", 40)
	r := FromString(text)

	for _, offset := range []int{0, 1, 7, 100, 555, r.Len() - 1, r.Len()} {
		left, right := r.Split(offset)
		if got := left.Len() + right.Len(); got != r.Len() {
			t.Fatalf("Split(%d): length %d + %d != %d", offset, left.Len(), right.Len(), r.Len())
		}
		joined := left.Concat(right)
		if !joined.Equal(r) {
			t.Fatalf("Split(%d) then Concat lost text", offset)
		}
	}
}

func TestLineQueriesAcrossChunks(t *testing.T) {
	var lines []string
	for i := 0; i < 300; i++ {
		lines = append(lines, strings.Repeat("x", i%37))
	}
	text := strings.Join(lines, "\n")
	r := FromString(text)

	if got := r.LineCount(); got != len(lines) {
		t.Fatalf("LineCount = %d, want %d", got, len(lines))
	}

	offset := 0
	for i, line := range lines {
		if got := r.LineStartOffset(i); got != offset {
			t.Fatalf("LineStartOffset(%d) = %d, want %d", i, got, offset)
		}
		if got := r.LineText(i); got != line {
			t.Fatalf("LineText(%d) = %q, want %q", i, got, line)
		}
		if got := r.LineOfOffset(offset); got != i {
			t.Fatalf("LineOfOffset(%d) = %d, want %d", offset, got, i)
		}
		offset += utf8.RuneCountInString(line) + 1
	}
}

func TestEqualAcrossChunkings(t *testing.T) {
	text := strings.Repeat("some moderately long line\n", 64)

	whole := FromString(text)
	var builder Builder
	for _, c := range text {
		builder.WriteRune(c)
	}
	pieced := builder.Build()

	if !whole.Equal(pieced) {
		t.Error("ropes with identical text should be Equal regardless of chunking")
	}

	different := FromString(text[:len(text)-1] + "!")
	if whole.Equal(different) {
		t.Error("ropes with different text should not be Equal")
	}
}

func TestFromReader(t *testing.T) {
	text := strings.Repeat("reader data\n", 2000)
	r, err := FromReader(strings.NewReader(text))
	if err != nil {
		t.Fatalf("FromReader: %v", err)
	}
	if r.String() != text {
		t.Error("FromReader round-trip mismatch")
	}
}

func TestBuilderHoldsSplitRuneAcrossFlush(t *testing.T) {
	// A write ending mid-rune trips the flush threshold; the continuation
	// byte arrives in the next write and the rune must come out whole.
	acute := "é"
	prefix := strings.Repeat("a", MaxChunkSize*2-1)

	var builder Builder
	builder.WriteString(prefix + acute[:1])
	builder.WriteString(acute[1:])
	r := builder.Build()

	if want := MaxChunkSize * 2; r.Len() != want {
		t.Fatalf("Len() = %d, want %d", r.Len(), want)
	}
	if got := r.RuneAt(MaxChunkSize*2 - 1); got != 'é' {
		t.Errorf("RuneAt(%d) = %q, want %q", MaxChunkSize*2-1, got, 'é')
	}
	if r.String() != prefix+acute {
		t.Error("round-trip mismatch after split-rune flush")
	}
}

func TestChunkBoundsAndBalance(t *testing.T) {
	text := strings.Repeat("0123456789", 5000)
	r := FromString(text)

	it := r.Chunks()
	for it.Next() {
		chunk := it.Chunk()
		if len(chunk.String()) > MaxChunkSize {
			t.Fatalf("chunk of %d bytes exceeds MaxChunkSize", len(chunk.String()))
		}
		if !utf8.ValidString(chunk.String()) {
			t.Fatal("chunk split off a rune boundary")
		}
	}

	// 50k bytes in <=256 byte chunks under branching factor 8 stays shallow.
	if h := r.Height(); h > 6 {
		t.Errorf("tree height %d, want <= 6", h)
	}
}

func TestRunesFrom(t *testing.T) {
	text := "aé日\nbcd"
	r := FromString(text)
	runes := []rune(text)

	for start := 0; start <= len(runes)+1; start++ {
		it := r.RunesFrom(start)
		var got []rune
		for it.Next() {
			if it.Offset() != start+len(got) {
				t.Fatalf("RunesFrom(%d): offset %d, want %d", start, it.Offset(), start+len(got))
			}
			got = append(got, it.Rune())
		}
		want := ""
		if start <= len(runes) {
			want = string(runes[start:])
		}
		if string(got) != want {
			t.Fatalf("RunesFrom(%d) = %q, want %q", start, string(got), want)
		}
	}
}

func TestInsertDeleteStress(t *testing.T) {
	// Mirror every rope edit against a plain string.
	mirror := "seed text with\nseveral lines\nof content"
	r := FromString(mirror)

	ops := []struct {
		insert bool
		at     int
		text   string
		end    int
	}{
		{insert: true, at: 5, text: "AAA"},
		{insert: true, at: 0, text: "B"},
		{insert: false, at: 3, end: 9},
		{insert: true, at: 20, text: "多字節\n"},
		{insert: false, at: 0, end: 1},
		{insert: true, at: 1000, text: "tail"},
		{insert: false, at: 10, end: 10},
	}

	for i, op := range ops {
		if op.insert {
			r = r.Insert(op.at, op.text)
			runes := []rune(mirror)
			at := op.at
			if at > len(runes) {
				at = len(runes)
			}
			mirror = string(runes[:at]) + op.text + string(runes[at:])
		} else {
			r = r.Delete(op.at, op.end)
			runes := []rune(mirror)
			start, end := op.at, op.end
			if end > len(runes) {
				end = len(runes)
			}
			if start < end {
				mirror = string(runes[:start]) + string(runes[end:])
			}
		}
		if r.String() != mirror {
			t.Fatalf("op %d: rope %q, want %q", i, r.String(), mirror)
		}
		if r.Len() != utf8.RuneCountInString(mirror) {
			t.Fatalf("op %d: Len %d, want %d", i, r.Len(), utf8.RuneCountInString(mirror))
		}
		if r.LineCount() != strings.Count(mirror, "\n")+1 {
			t.Fatalf("op %d: LineCount %d, want %d", i, r.LineCount(), strings.Count(mirror, "\n")+1)
		}
	}
}
