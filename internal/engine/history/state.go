package history

import (
	"github.com/dshills/gust/internal/engine/buffer"
)

// BufferState owns a live buffer and the timeline of snapshots committed
// against it. The zero value is not usable; construct with NewBufferState.
type BufferState struct {
	buffer  *buffer.Buffer
	history []*buffer.Buffer

	// undoIndex is the timeline entry the live buffer was restored from,
	// or -1 while the buffer is live (not undone).
	undoIndex int
}

// NewBufferState creates a BufferState owning buf. Nothing is committed
// yet; the first Commit records the first restorable point.
func NewBufferState(buf *buffer.Buffer) *BufferState {
	return &BufferState{
		buffer:    buf,
		undoIndex: -1,
	}
}

// Buffer returns the live buffer. Undo and Redo replace it, so the result
// must not be held across them.
func (s *BufferState) Buffer() *buffer.Buffer {
	return s.buffer
}

// MidHistory reports whether the live buffer currently sits at a restored
// timeline entry rather than at the newest state.
func (s *BufferState) MidHistory() bool {
	return s.undoIndex >= 0
}

// Commit records the live buffer as the newest restorable point.
//
// While live, a text change appends a snapshot and a selection-only change
// overwrites the newest entry's selection. While mid-history, a text change
// forks: the restored entry is re-committed as a fresh endpoint followed by
// the new state, and the buffer goes live again. A selection-only change
// mid-history updates the restored entry in place.
func (s *BufferState) Commit() {
	if s.undoIndex >= 0 {
		restored := s.history[s.undoIndex]
		if !restored.Text().Equal(s.buffer.Text()) {
			s.undoIndex = -1
			edited := s.buffer
			s.buffer = restored.Clone()
			s.Commit()
			s.buffer = edited
			s.Commit()
			return
		}
		if !selectionsEqual(restored, s.buffer) {
			restored.SetSelectionSet(s.buffer.SelectionSet())
		}
		return
	}

	if len(s.history) == 0 {
		s.history = append(s.history, s.buffer.Clone())
		return
	}

	newest := s.history[len(s.history)-1]
	if !newest.Text().Equal(s.buffer.Text()) {
		s.history = append(s.history, s.buffer.Clone())
		return
	}
	if !selectionsEqual(newest, s.buffer) {
		newest.SetSelectionSet(s.buffer.SelectionSet())
	}
}

// Undo steps back times committed points and replaces the live buffer with
// the snapshot found there. From the live state it first commits, so a
// pending edit is never lost. Saturates at the oldest entry.
func (s *BufferState) Undo(times int) {
	var i int
	if s.undoIndex >= 0 {
		i = max(s.undoIndex-times, 0)
	} else {
		s.Commit()
		i = max(len(s.history)-1-times, 0)
	}
	s.undoIndex = i
	s.restore(s.history[i])
}

// Redo steps forward times committed points. It only has meaning while
// mid-history; while live it does nothing. Saturates at the newest entry.
func (s *BufferState) Redo(times int) {
	if s.undoIndex < 0 {
		return
	}
	i := min(s.undoIndex+times, len(s.history)-1)
	s.undoIndex = i
	s.restore(s.history[i])
}

// restore swaps the live buffer for a clone of snap. The file path is an
// identity of the open document, not of the edit, so the live path carries
// over.
func (s *BufferState) restore(snap *buffer.Buffer) {
	path := s.buffer.Path()
	s.buffer = snap.Clone()
	s.buffer.SetPath(path)
}

func selectionsEqual(a, b *buffer.Buffer) bool {
	as, bs := a.SelectionSet(), b.SelectionSet()
	return as.Equal(&bs)
}
