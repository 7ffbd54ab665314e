// Package key abstracts keyboard input away from any terminal backend.
//
// An Event is one key press: either a named key (Enter, Esc, arrows,
// F1-F12, ...) or a character key (KeyRune with the character in Rune),
// plus a Modifier bit set. Events are comparable values, so binding
// tables are ordinary maps keyed by Event.
//
// Two conventions keep lookups unambiguous:
//
//   - Shift never accompanies a character key; the character's case
//     already carries it ('H' is 'H', not S-h).
//   - Control chords carry the lowercase character (C-p, never C-P),
//     matching what terminals report.
//
// Parse turns human-readable chord strings ("C-p", "A-Enter", "x") into
// Events for configuration keymaps; Event.String is its inverse.
package key
