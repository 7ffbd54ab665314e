// Package buffer implements the editing buffer: a rope of text paired with
// a selection set, a tab width, and an expand-tabs flag. It is the primary
// interface for text manipulation in the editor engine.
//
// The buffer package provides:
//
//   - Multi-selection edits: insert, open line, delete, yank, paste
//   - Indentation handling with visual tab stop arithmetic
//   - Movement and extension parameterized by cursor motion functions
//   - Per-cell selection classification for rendering
//
// Basic usage:
//
//	// Create a buffer with some text
//	buf := buffer.NewBufferFromString("Hello, World!")
//
//	// Type at every cursor
//	buf.Insert("Beautiful ", false)
//
//	// Cut the selected spans, one string per selection
//	yanked := buf.Delete()
//
//	// Put them back
//	buf.Paste(yanked)
//
// Every operation applies across all selections in one logical step.
// Edits run in descending offset order and repair the remaining
// selections after each step, so adjacent cursors never drop or
// duplicate text. Index arithmetic saturates at the buffer edges;
// operations at the boundaries are safe no-ops.
//
// The extend parameter carried by the typing operations skips the
// collapse that normally precedes an edit, leaving selections to grow
// over the inserted text.
//
// Thread Safety:
//
// Buffer is a plain mutable value with no internal locking. A buffer
// belongs to one goroutine at a time; history keeps full clones, which
// share rope structure but never observe each other's mutations.
package buffer
