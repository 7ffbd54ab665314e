package key

import "unicode"

// Event is a single key press: a named key or a character, plus held
// modifiers. Events are plain comparable values, so they key maps and
// compare with ==.
type Event struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// RuneEvent creates an event for a character key.
func RuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// KeyEvent creates an event for a named key.
func KeyEvent(k Key) Event {
	return Event{Key: k}
}

// Ctrl creates a control-modified character event. The character is
// folded to lowercase, matching how terminals report control chords.
func Ctrl(r rune) Event {
	return Event{Key: KeyRune, Rune: unicode.ToLower(r), Mod: ModCtrl}
}

// Alt creates an alt-modified character event.
func Alt(r rune) Event {
	return Event{Key: KeyRune, Rune: r, Mod: ModAlt}
}

// IsRune returns true if this is a plain character key with no Ctrl or
// Alt held.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Mod&(ModCtrl|ModAlt) == 0
}

// String returns the chord form Parse accepts: "p", "C-p", "A-Enter",
// "Space".
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		if e.Rune == ' ' {
			name = "Space"
		} else {
			name = string(e.Rune)
		}
	}
	return e.Mod.String() + name
}
