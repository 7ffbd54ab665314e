package rope

import (
	"io"
	"strings"
)

// Rope is an immutable rope for efficient text storage. All public offsets
// are rune offsets. Operations return new Rope values; the original is never
// modified, which makes snapshots of a buffer cheap and safe to retain.
type Rope struct {
	root *node
}

// New creates an empty rope.
func New() Rope {
	return Rope{root: newLeafNode()}
}

// FromString creates a rope from a string.
func FromString(s string) Rope {
	if len(s) == 0 {
		return New()
	}
	return buildFromChunks(splitIntoChunks(s))
}

// FromReader creates a rope from an io.Reader.
func FromReader(r io.Reader) (Rope, error) {
	var builder Builder
	if _, err := builder.ReadFrom(r); err != nil {
		return Rope{}, err
	}
	return builder.Build(), nil
}

// buildFromChunks builds a balanced rope from a slice of chunks.
func buildFromChunks(chunks []Chunk) Rope {
	if len(chunks) == 0 {
		return New()
	}

	var leaves []*node
	for i := 0; i < len(chunks); i += MaxChunksPerLeaf {
		end := i + MaxChunksPerLeaf
		if end > len(chunks) {
			end = len(chunks)
		}
		leafChunks := make([]Chunk, end-i)
		copy(leafChunks, chunks[i:end])
		leaves = append(leaves, newLeafNodeWithChunks(leafChunks))
	}

	nodes := leaves
	for len(nodes) > 1 {
		var parents []*node
		for i := 0; i < len(nodes); i += MaxChildren {
			end := i + MaxChildren
			if end > len(nodes) {
				end = len(nodes)
			}
			children := make([]*node, end-i)
			copy(children, nodes[i:end])
			parents = append(parents, newInternalNode(children))
		}
		nodes = parents
	}

	return Rope{root: nodes[0]}
}

// Len returns the total length in runes.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.runes()
}

// Bytes returns the total length in UTF-8 bytes.
func (r Rope) Bytes() int {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Bytes
}

// LineCount returns the number of lines (newlines + 1).
// The empty rope has one line.
func (r Rope) LineCount() int {
	if r.root == nil {
		return 1
	}
	return r.root.summary.Lines + 1
}

// IsEmpty returns true if the rope contains no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// String returns the full text as a string. Use sparingly for large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(r.Bytes())
	r.root.appendTo(&sb)
	return sb.String()
}

// Slice returns the text in the rune range [start, end).
// The range is clamped to the rope.
func (r Rope) Slice(start, end int) string {
	if r.root == nil {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end > r.Len() {
		end = r.Len()
	}
	if start >= end {
		return ""
	}
	return r.root.textInRange(start, end)
}

// RuneAt returns the rune at the given offset, or 0 when out of range.
func (r Rope) RuneAt(offset int) rune {
	if r.root == nil || offset < 0 || offset >= r.Len() {
		return 0
	}
	return r.root.runeAt(offset)
}

// Insert inserts text at the given rune offset, clamped to [0, Len()].
// Returns a new rope; the original is unchanged.
func (r Rope) Insert(offset int, text string) Rope {
	if len(text) == 0 {
		return r
	}
	if r.root == nil || r.Len() == 0 {
		return FromString(text)
	}
	if offset <= 0 {
		return FromString(text).Concat(r)
	}
	if offset >= r.Len() {
		return r.Concat(FromString(text))
	}

	left, right := r.Split(offset)
	return left.Concat(FromString(text)).Concat(right)
}

// Delete removes text in the rune range [start, end), clamped to the rope.
// Returns a new rope; the original is unchanged.
func (r Rope) Delete(start, end int) Rope {
	if r.root == nil {
		return r
	}
	length := r.Len()
	if start < 0 {
		start = 0
	}
	if end > length {
		end = length
	}
	if start >= end {
		return r
	}
	if start == 0 && end >= length {
		return New()
	}
	if start == 0 {
		_, right := r.Split(end)
		return right
	}
	if end >= length {
		left, _ := r.Split(start)
		return left
	}

	left, temp := r.Split(start)
	_, right := temp.Split(end - start)
	return left.Concat(right)
}

// Replace replaces the rune range [start, end) with new text.
func (r Rope) Replace(start, end int, text string) Rope {
	if start >= end {
		return r.Insert(start, text)
	}
	if len(text) == 0 {
		return r.Delete(start, end)
	}
	return r.Delete(start, end).Insert(start, text)
}

// Split splits the rope at offset: left holds [0, offset), right the rest.
func (r Rope) Split(offset int) (Rope, Rope) {
	if r.root == nil || offset <= 0 {
		return New(), r
	}
	if offset >= r.Len() {
		return r, New()
	}
	leftRoot, rightRoot := r.root.split(offset)
	return Rope{root: leftRoot}, Rope{root: rightRoot}
}

// Concat concatenates two ropes. Returns a new rope; originals unchanged.
func (r Rope) Concat(other Rope) Rope {
	if r.root == nil || r.Len() == 0 {
		return other
	}
	if other.root == nil || other.Len() == 0 {
		return r
	}
	return Rope{root: concatNodes(r.root, other.root)}
}

// LineStartOffset returns the rune offset where the given line begins.
// Lines are 0-indexed; out-of-range lines clamp to the rope ends.
func (r Rope) LineStartOffset(line int) int {
	if r.root == nil || line <= 0 {
		return 0
	}
	if line >= r.LineCount() {
		return r.Len()
	}
	return r.root.offsetOfLine(line)
}

// LineEndOffset returns the rune offset of the end of the given line,
// not including its newline character.
func (r Rope) LineEndOffset(line int) int {
	if r.root == nil {
		return 0
	}
	lineCount := r.LineCount()
	if line < 0 {
		line = 0
	}
	if line >= lineCount-1 {
		return r.Len()
	}
	return r.LineStartOffset(line+1) - 1
}

// LineText returns the text of the given line, without its newline.
func (r Rope) LineText(line int) string {
	return r.Slice(r.LineStartOffset(line), r.LineEndOffset(line))
}

// LineLen returns the rune length of the given line, without its newline.
func (r Rope) LineLen(line int) int {
	return r.LineEndOffset(line) - r.LineStartOffset(line)
}

// LineOfOffset returns the line containing the given rune offset.
// Offset Len() maps to the last line.
func (r Rope) LineOfOffset(offset int) int {
	if r.root == nil || offset <= 0 {
		return 0
	}
	if offset > r.Len() {
		offset = r.Len()
	}
	return r.root.lineOfOffset(offset)
}

// Height returns the height of the rope tree, for balance checks.
func (r Rope) Height() int {
	if r.root == nil {
		return 0
	}
	return int(r.root.height) + 1
}

// Equal returns true if two ropes contain the same text, regardless of
// how each is chunked internally.
func (r Rope) Equal(other Rope) bool {
	if r.Len() != other.Len() || r.Bytes() != other.Bytes() {
		return false
	}

	it1 := r.Chunks()
	it2 := other.Chunks()
	var s1, s2 string

	for {
		if len(s1) == 0 {
			if !it1.Next() {
				return len(s2) == 0 && !it2.Next()
			}
			s1 = it1.Chunk().String()
		}
		if len(s2) == 0 {
			if !it2.Next() {
				return false
			}
			s2 = it2.Chunk().String()
		}

		n := len(s1)
		if len(s2) < n {
			n = len(s2)
		}
		if s1[:n] != s2[:n] {
			return false
		}
		s1 = s1[n:]
		s2 = s2[n:]
	}
}
