// Package editor ties the editing engine to modal key dispatch: an
// ordered registry of open documents, the shared yank register, the
// Mode state machine, and the binding tables that turn key events into
// buffer operations.
//
// The editor is single-threaded by contract. One key event is handled
// to completion, including its undo commits, before the next is read.
// File access and path finding are injected by the host, so the package
// never touches the filesystem itself.
package editor
