package renderer

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gust/internal/input/key"
)

// EventKind classifies an event from the terminal.
type EventKind uint8

const (
	// EventNone is an event the editor has no use for.
	EventNone EventKind = iota
	// EventKey carries a translated key press.
	EventKey
	// EventResize reports a new terminal size.
	EventResize
	// EventInterrupt is posted by Interrupt to unblock PollEvent.
	EventInterrupt
)

// Event is one terminal event, already translated for the editor.
type Event struct {
	Kind EventKind
	Key  key.Event
}

// Terminal wraps a tcell screen with the small surface the run loop
// needs: lifecycle, size, event polling, and cell output.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a terminal over the process's tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen. Tests pass a
// tcell.SimulationScreen here.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init takes over the terminal. Fini must run on every exit path.
func (t *Terminal) Init() error {
	return t.screen.Init()
}

// Fini restores the terminal.
func (t *Terminal) Fini() {
	t.screen.Fini()
}

// Size returns the screen dimensions in cells.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// Interrupt posts an interrupt event, unblocking a pending PollEvent
// from another goroutine. It is the only cross-goroutine entry point.
func (t *Terminal) Interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// PollEvent blocks for the next event and translates it.
func (t *Terminal) PollEvent() Event {
	switch ev := t.screen.PollEvent().(type) {
	case *tcell.EventKey:
		if k, ok := translateKey(ev); ok {
			return Event{Kind: EventKey, Key: k}
		}
		return Event{Kind: EventNone}
	case *tcell.EventResize:
		t.screen.Sync()
		return Event{Kind: EventResize}
	case *tcell.EventInterrupt:
		return Event{Kind: EventInterrupt}
	default:
		return Event{Kind: EventNone}
	}
}

// namedKeys maps the tcell keys the editor understands to its own
// key space. Control chords and runes are handled separately.
var namedKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBacktab:    key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
}

// translateKey converts a tcell key event into the editor's key event.
// Named keys win over the control-chord aliases tcell shares with them
// (Tab is Ctrl-I, Enter is Ctrl-M). Control chords fold to lowercase
// runes; shift on a rune is carried by its case, never as a modifier.
func translateKey(ev *tcell.EventKey) (key.Event, bool) {
	if named, ok := namedKeys[ev.Key()]; ok {
		out := key.KeyEvent(named)
		if ev.Modifiers()&tcell.ModShift != 0 {
			out.Mod = out.Mod.With(key.ModShift)
		}
		if ev.Modifiers()&tcell.ModAlt != 0 {
			out.Mod = out.Mod.With(key.ModAlt)
		}
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			out.Mod = out.Mod.With(key.ModCtrl)
		}
		return out, true
	}

	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		r := rune('a' + ev.Key() - tcell.KeyCtrlA)
		out := key.Ctrl(r)
		if ev.Modifiers()&tcell.ModShift != 0 {
			out.Mod = out.Mod.With(key.ModShift)
		}
		return out, true
	}

	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		out := key.RuneEvent(r)
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			out.Mod = out.Mod.With(key.ModCtrl)
			out.Rune = unicode.ToLower(r)
		}
		if ev.Modifiers()&tcell.ModAlt != 0 {
			out.Mod = out.Mod.With(key.ModAlt)
		}
		return out, true
	}

	return key.Event{}, false
}
