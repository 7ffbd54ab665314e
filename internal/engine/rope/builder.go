package rope

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Builder provides efficient incremental construction of a rope.
// It buffers writes and builds the tree when Build is called.
// The zero value is ready to use.
type Builder struct {
	chunks []Chunk
	buffer strings.Builder
}

// WriteString appends a string to the builder.
func (b *Builder) WriteString(s string) {
	if len(s) == 0 {
		return
	}
	b.buffer.WriteString(s)
	if b.buffer.Len() >= MaxChunkSize*2 {
		b.flushBuffer()
	}
}

// Write implements io.Writer.
func (b *Builder) Write(p []byte) (int, error) {
	b.WriteString(string(p))
	return len(p), nil
}

// WriteRune appends a single rune.
func (b *Builder) WriteRune(r rune) {
	b.buffer.WriteRune(r)
	if b.buffer.Len() >= MaxChunkSize*2 {
		b.flushBuffer()
	}
}

// flushBuffer moves buffered bytes into chunks. A trailing incomplete
// UTF-8 sequence is held back for the next write, so a rune split
// across writes is never summarized as replacement characters.
func (b *Builder) flushBuffer() {
	if b.buffer.Len() == 0 {
		return
	}
	s := b.buffer.String()
	b.buffer.Reset()

	cut := len(s)
	for back := 1; back <= utf8.UTFMax && back <= len(s); back++ {
		if utf8.RuneStart(s[len(s)-back]) {
			if !utf8.FullRuneInString(s[len(s)-back:]) {
				cut = len(s) - back
			}
			break
		}
	}
	if cut > 0 {
		b.chunks = append(b.chunks, splitIntoChunks(s[:cut])...)
	}
	if cut < len(s) {
		b.buffer.WriteString(s[cut:])
	}
}

// Reset clears the builder for reuse.
func (b *Builder) Reset() {
	b.chunks = b.chunks[:0]
	b.buffer.Reset()
}

// Build creates the rope from accumulated data and resets the builder.
func (b *Builder) Build() Rope {
	b.flushBuffer()
	// Anything still buffered never completed a rune; take it as-is.
	if b.buffer.Len() > 0 {
		b.chunks = append(b.chunks, splitIntoChunks(b.buffer.String())...)
		b.buffer.Reset()
	}
	if len(b.chunks) == 0 {
		b.Reset()
		return New()
	}
	chunks := b.chunks
	b.chunks = nil
	b.Reset()
	return buildFromChunks(chunks)
}

// ReadFrom implements io.ReaderFrom.
func (b *Builder) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, 64*1024)
	var total int64

	for {
		n, err := r.Read(buf)
		if n > 0 {
			b.WriteString(string(buf[:n]))
			total += int64(n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}
