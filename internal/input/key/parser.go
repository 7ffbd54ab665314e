package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key chord string into an Event.
//
// Supported forms:
//   - Single character: "a", "A", "1", "@", "-"
//   - Named keys: "Enter", "Esc", "Tab", "Space", "F5" (case-insensitive)
//   - With modifiers, dash-joined: "C-p", "A-Enter", "C-A-x", "S-Up"
//
// The output of Event.String parses back to an equal Event.
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	var modSpec, keyPart string
	switch {
	case spec == "-":
		keyPart = "-"
	case strings.HasSuffix(spec, "--"):
		// A double trailing dash is the "-" key itself, as in "C--".
		modSpec, keyPart = strings.TrimSuffix(spec, "--"), "-"
	case strings.HasSuffix(spec, "-"):
		return Event{}, fmt.Errorf("%w: %q has no key after the modifiers", ErrInvalidSpec, spec)
	default:
		keyPart = spec
		if i := strings.LastIndex(spec, "-"); i >= 0 {
			modSpec, keyPart = spec[:i], spec[i+1:]
		}
	}

	var mods Modifier
	if modSpec != "" {
		for _, p := range strings.Split(modSpec, "-") {
			mod := ModifierFromName(p)
			if mod == ModNone {
				return Event{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidSpec, p, spec)
			}
			mods = mods.With(mod)
		}
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		return Event{Key: k, Mod: mods}, nil
	}
	if strings.EqualFold(keyPart, "space") {
		return Event{Key: KeyRune, Rune: ' ', Mod: mods}, nil
	}

	runes := []rune(keyPart)
	if len(runes) != 1 {
		return Event{}, fmt.Errorf("%w: unknown key %q in %q", ErrInvalidSpec, keyPart, spec)
	}
	r := runes[0]
	if mods.Has(ModCtrl) {
		// Terminals report control chords with the lowercase character.
		r = unicode.ToLower(r)
	}
	return Event{Key: KeyRune, Rune: r, Mod: mods}, nil
}

// MustParse parses a key chord and panics on error. Use only for
// known-valid chords in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}
