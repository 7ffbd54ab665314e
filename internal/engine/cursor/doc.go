// Package cursor provides positions, selections, and motion primitives
// for rope-backed text editing.
//
// The cursor package handles:
//
//   - Rune-offset addressing with the Idx type
//   - Line/column addressing with the Position type
//   - Anchor/cursor selections that remember their last direction
//   - Multi-selection sets with edit fixups and saved columns
//   - Word, line, and enclosing-delimiter motions
//
// Selection Model:
//
// A Selection is an ordered pair of rune offsets where:
//   - Anchor: the offset where the selection started
//   - Cursor: the offset where typing would occur
//
// When Anchor == Cursor the selection is empty and stands for a bare
// caret. Empty selections still carry a direction in WasForward, which
// decides which neighboring rune acts as the caret's direction marker:
// a forward caret marks the rune it just moved past (one before the
// cursor), a backward caret marks the rune it is about to move onto
// (at the cursor).
//
// Offsets count runes, not bytes. All motion saturates at the text
// boundaries instead of wrapping or failing.
//
// Multi-Selection Support:
//
// Set manages one or more selections with a designated primary. After
// every text edit the set is repaired in place: FixOnInsert shifts
// offsets at or after an insertion, FixOnDelete shifts offsets past a
// removal and collapses offsets inside it onto its start. Sets also
// remember per-selection desired columns so vertical movement through
// short lines can restore the original column.
//
// Basic usage:
//
//	set := cursor.NewSet()
//	sel := set.Selections[0]
//
//	// Extend over the next word.
//	_, end := sel.Cursor.ForwardWord(text)
//	sel.Cursor = end
//	set.Selections[0] = sel.UpdateDirection()
//
//	// Repair after inserting 5 runes at offset 10.
//	set.FixOnInsert(10, 5)
//
// Thread Safety:
//
// Idx, Position, and Selection are immutable value types and safe for
// concurrent use. Set is not thread-safe and should be confined to a
// single goroutine or protected by external synchronization.
package cursor
