package rope

import "unicode/utf8"

// chunkIterFrame is a position in the tree traversal for chunk iteration.
type chunkIterFrame struct {
	node     *node
	childIdx int
	chunkIdx int
	offset   int // rune offset at the start of this node
}

// ChunkIterator iterates over the chunks of a rope in text order.
type ChunkIterator struct {
	rope       Rope
	stack      []chunkIterFrame
	started    bool
	chunk      Chunk
	chunkStart int
}

// Chunks returns an iterator over all chunks in the rope.
func (r Rope) Chunks() *ChunkIterator {
	return &ChunkIterator{
		rope:  r,
		stack: make([]chunkIterFrame, 0, 8),
	}
}

// Next advances to the next chunk. Returns false when iteration is done.
func (it *ChunkIterator) Next() bool {
	if !it.started {
		it.started = true
		if it.rope.root == nil {
			return false
		}
		it.stack = append(it.stack, chunkIterFrame{node: it.rope.root})
		return it.findNextChunk()
	}

	if len(it.stack) > 0 {
		frame := &it.stack[len(it.stack)-1]
		if frame.node.isLeaf() {
			frame.chunkIdx++
		}
	}
	return it.findNextChunk()
}

func (it *ChunkIterator) findNextChunk() bool {
	for len(it.stack) > 0 {
		frame := &it.stack[len(it.stack)-1]
		n := frame.node

		if n.isLeaf() {
			if frame.chunkIdx < len(n.chunks) {
				chunkOffset := frame.offset
				for i := 0; i < frame.chunkIdx; i++ {
					chunkOffset += n.chunks[i].Runes()
				}
				it.chunk = n.chunks[frame.chunkIdx]
				it.chunkStart = chunkOffset
				return true
			}
			it.pop()
			continue
		}

		if frame.childIdx < len(n.children) {
			childOffset := frame.offset
			for i := 0; i < frame.childIdx; i++ {
				childOffset += n.childSummaries[i].Runes
			}
			it.stack = append(it.stack, chunkIterFrame{
				node:   n.children[frame.childIdx],
				offset: childOffset,
			})
			continue
		}

		it.pop()
	}
	return false
}

func (it *ChunkIterator) pop() {
	it.stack = it.stack[:len(it.stack)-1]
	if len(it.stack) > 0 {
		it.stack[len(it.stack)-1].childIdx++
	}
}

// Chunk returns the current chunk.
func (it *ChunkIterator) Chunk() Chunk {
	return it.chunk
}

// Offset returns the rune offset of the start of the current chunk.
func (it *ChunkIterator) Offset() int {
	return it.chunkStart
}

// RuneIterator iterates over runes in a rope from a start offset.
type RuneIterator struct {
	chunks  *ChunkIterator
	pending string
	offset  int
	current rune
	skip    int // runes to drop from the first chunk
}

// Runes returns an iterator over all runes in the rope.
func (r Rope) Runes() *RuneIterator {
	return r.RunesFrom(0)
}

// RunesFrom returns an iterator over runes starting at the given offset.
func (r Rope) RunesFrom(start int) *RuneIterator {
	if start < 0 {
		start = 0
	}
	return &RuneIterator{
		chunks: r.Chunks(),
		offset: start - 1,
		skip:   start,
	}
}

// Next advances to the next rune. Returns false when iteration is done.
func (it *RuneIterator) Next() bool {
	for len(it.pending) == 0 {
		if !it.chunks.Next() {
			return false
		}
		chunk := it.chunks.Chunk()
		if it.skip >= chunk.Runes() {
			it.skip -= chunk.Runes()
			continue
		}
		s := chunk.String()
		if it.skip > 0 {
			s = s[byteIndexOfRune(s, it.skip):]
			it.skip = 0
		}
		it.pending = s
	}

	r, size := utf8.DecodeRuneInString(it.pending)
	it.current = r
	it.pending = it.pending[size:]
	it.offset++
	return true
}

// Rune returns the current rune.
func (it *RuneIterator) Rune() rune {
	return it.current
}

// Offset returns the rune offset of the current rune.
func (it *RuneIterator) Offset() int {
	return it.offset
}
