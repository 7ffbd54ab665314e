// Package history provides undo/redo functionality for the text editor engine.
//
// The history system stores full snapshots rather than inverse operations.
// Each committed point is a complete buffer clone, so restoring one is a
// single assignment with no replay. Snapshots share rope structure with the
// live buffer, which keeps clones cheap even for large documents. Key
// concepts:
//
// # Buffer State
//
// A BufferState pairs a live buffer with its snapshot timeline:
//
//	st := NewBufferState(buf)
//
//	// Commit points around completed actions
//	st.Commit()
//
//	// Walk the timeline
//	st.Undo(1)
//	st.Redo(1)
//
// Undo and redo replace the live buffer, so callers must re-fetch it with
// Buffer() afterwards rather than holding an old pointer across them.
//
// # Commit Points
//
// Commit is cheap to call and safe to call often. It appends a snapshot only
// when the text actually changed since the newest entry; a selection-only
// change overwrites the newest entry's selection in place, so cursor motion
// never inflates the timeline. Restoring a committed point therefore
// reconstructs both the text and the exact selection set that was live when
// it was taken.
//
// # Forking
//
// Editing while undone does not truncate the abandoned future. The timeline
// stays append-only: the restored point is re-committed as a fresh endpoint,
// followed by the new edit. Redo past the fork is gone, but every state that
// was ever committed remains reachable by undoing far enough.
package history
