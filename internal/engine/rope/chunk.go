package rope

// Chunk size constants control the granularity of text storage.
const (
	// MinChunkSize is the minimum bytes per chunk (except for the last chunk).
	MinChunkSize = 128

	// MaxChunkSize is the maximum bytes per chunk before splitting.
	MaxChunkSize = 256

	// TargetChunkSize is the preferred chunk size when building.
	TargetChunkSize = (MinChunkSize + MaxChunkSize) / 2
)

// Chunk represents a bounded string stored in leaf nodes.
// Chunks are immutable once created.
type Chunk struct {
	data    string
	summary Summary
}

// NewChunk creates a chunk from a string, computing metrics eagerly.
func NewChunk(s string) Chunk {
	return Chunk{
		data:    s,
		summary: ComputeSummary(s),
	}
}

// String returns the chunk's text.
func (c Chunk) String() string {
	return c.data
}

// Summary returns the chunk's precomputed metrics.
func (c Chunk) Summary() Summary {
	return c.summary
}

// Runes returns the rune length of the chunk.
func (c Chunk) Runes() int {
	return c.summary.Runes
}

// IsEmpty returns true if the chunk contains no text.
func (c Chunk) IsEmpty() bool {
	return len(c.data) == 0
}

// Split splits a chunk at the given rune offset, returning two chunks.
func (c Chunk) Split(offset int) (Chunk, Chunk) {
	if offset <= 0 {
		return Chunk{}, c
	}
	if offset >= c.summary.Runes {
		return c, Chunk{}
	}

	bi := byteIndexOfRune(c.data, offset)
	return NewChunk(c.data[:bi]), NewChunk(c.data[bi:])
}

// slice returns the text of the rune range [start, end) within the chunk.
func (c Chunk) slice(start, end int) string {
	if start <= 0 && end >= c.summary.Runes {
		return c.data
	}
	bs := byteIndexOfRune(c.data, start)
	be := byteIndexOfRune(c.data, end)
	return c.data[bs:be]
}

// splitIntoChunks splits a string into chunks of appropriate byte size.
// Split points always fall on rune boundaries.
func splitIntoChunks(s string) []Chunk {
	if len(s) == 0 {
		return nil
	}
	if len(s) <= MaxChunkSize {
		return []Chunk{NewChunk(s)}
	}

	var chunks []Chunk
	remaining := s

	for len(remaining) > 0 {
		if len(remaining) <= MaxChunkSize {
			chunks = append(chunks, NewChunk(remaining))
			break
		}

		splitPoint := findSplitPoint(remaining, TargetChunkSize)
		chunks = append(chunks, NewChunk(remaining[:splitPoint]))
		remaining = remaining[splitPoint:]
	}

	return chunks
}

// findSplitPoint finds a rune boundary near the target byte position,
// preferring to split just after a newline when one is nearby.
func findSplitPoint(s string, target int) int {
	if target >= len(s) {
		return len(s)
	}
	if target <= 0 {
		return 0
	}

	searchStart := target - MinChunkSize/4
	if searchStart < 0 {
		searchStart = 0
	}
	searchEnd := target + MinChunkSize/4
	if searchEnd > len(s) {
		searchEnd = len(s)
	}

	for i := target; i < searchEnd; i++ {
		if s[i] == '\n' {
			return i + 1
		}
	}
	for i := target - 1; i >= searchStart; i-- {
		if s[i] == '\n' {
			return i + 1
		}
	}

	// No newline nearby; settle for the nearest rune boundary.
	pos := target
	for pos < len(s) && !isRuneStart(s[pos]) {
		pos++
	}
	if pos >= len(s) {
		pos = target
		for pos > 0 && !isRuneStart(s[pos]) {
			pos--
		}
	}
	return pos
}

// isRuneStart returns true if the byte begins a UTF-8 sequence.
func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
