package editor

import (
	"strings"

	"github.com/dshills/gust/internal/input/key"
)

// HandleKey processes one key event to completion. The transient status
// message from the previous event is cleared first, so messages live
// for exactly one screen update.
func (e *Editor) HandleKey(ev key.Event) {
	e.status = ""

	switch e.mode.Kind {
	case ModeNormal:
		e.handleNormal(ev)
	case ModeInsert:
		e.handleInsert(ev)
	case ModeCommand:
		e.handleCommand(ev)
	case ModeFind:
		e.handleFind(ev)
	case ModeGoto:
		e.handleGoto(ev)
	}
}

// handleNormal accumulates digit counts and dispatches through the
// binding table. Every completed action is bracketed by commits, so one
// undo step is one user-visible action no matter how many selections or
// characters it touched.
func (e *Editor) handleNormal(ev key.Event) {
	if ev.Key == key.KeyEscape {
		e.mode.Count = 0
		return
	}
	if ev.IsRune() && ev.Rune >= '0' && ev.Rune <= '9' {
		e.mode.Count = e.mode.Count*10 + int(ev.Rune-'0')
		return
	}

	b, ok := e.normal[ev]
	if !ok {
		return
	}
	count := e.mode.Count
	e.mode.Count = 0

	e.Current().Commit()
	b.run(e, count)
	e.Current().Commit()
}

// handleInsert feeds keystrokes straight into the buffer. Nothing here
// commits; the burst becomes one undo point when Esc switches back to
// Normal.
func (e *Editor) handleInsert(ev key.Event) {
	buf := e.Buffer()
	extend := e.mode.Extend

	switch {
	case ev.Key == key.KeyEscape:
		e.setMode(Mode{Kind: ModeNormal})
	case ev.Key == key.KeyEnter:
		buf.InsertNewline(extend)
	case ev.Key == key.KeyTab:
		buf.InsertTab(extend)
	case ev.Key == key.KeyBackspace:
		buf.Backspace(extend)
	case ev.Key == key.KeyLeft:
		buf.MoveBackward(1)
	case ev.Key == key.KeyRight:
		buf.MoveForward(1)
	case ev.Key == key.KeyUp:
		buf.MoveUp(1)
	case ev.Key == key.KeyDown:
		buf.MoveDown(1)
	case ev.IsRune():
		buf.InsertRune(ev.Rune, extend)
	}
}

// handleCommand accumulates the command line and executes it on Enter.
func (e *Editor) handleCommand(ev key.Event) {
	switch {
	case ev.Key == key.KeyEscape:
		e.setMode(Mode{Kind: ModeNormal})
	case ev.Key == key.KeyEnter:
		input := e.mode.Input
		e.setMode(Mode{Kind: ModeNormal})
		e.execute(input)
	case ev.Key == key.KeyBackspace:
		if e.mode.Input != "" {
			r := []rune(e.mode.Input)
			e.mode.Input = string(r[:len(r)-1])
		}
	case ev.IsRune():
		e.mode.Input += string(ev.Rune)
	}
}

// execute runs one command line. Unrecognized input is a status
// message, never an error.
func (e *Editor) execute(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	name, args := fields[0], fields[1:]

	switch name {
	case "q":
		e.Quit()
	case "e":
		if len(args) != 1 {
			e.SetStatus("usage: e <path>")
			return
		}
		e.Open(args[0])
	case "w":
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		e.Write(path)
	case "db":
		e.Close()
	case "bn":
		e.NextDocument()
	case "bp":
		e.PrevDocument()
	default:
		e.SetStatus("unrecognized command: %s", line)
	}
}

// enterFind switches to Find mode with an empty query and a fresh
// candidate ranking.
func (e *Editor) enterFind() {
	e.setMode(Mode{Kind: ModeFind})
	e.matcher.Invalidate()
	e.refreshFind()
}

// refreshFind reruns the path collaborator and fuzzy-ranks its
// candidates against the current query.
func (e *Editor) refreshFind() {
	candidates, err := e.host.FindPaths(e.mode.Query)
	if err != nil {
		e.SetStatus("find: %v", err)
		e.mode.Matches = nil
		e.mode.Selected = 0
		return
	}

	results := e.matcher.Match(e.mode.Query, candidates, e.cfg.Find.MaxResults)
	matches := make([]string, len(results))
	for i, res := range results {
		matches[i] = res.Item
	}
	e.mode.Matches = matches
	if e.mode.Selected >= len(matches) {
		e.mode.Selected = 0
	}
}

// handleFind drives the incremental query. Every keystroke that edits
// the query re-runs the collaborator; Up/Down move the selected row;
// Enter opens it.
func (e *Editor) handleFind(ev key.Event) {
	switch {
	case ev.Key == key.KeyEscape:
		e.setMode(Mode{Kind: ModeNormal})
	case ev.Key == key.KeyEnter:
		matches, selected := e.mode.Matches, e.mode.Selected
		e.setMode(Mode{Kind: ModeNormal})
		if selected < len(matches) {
			e.Open(matches[selected])
		}
	case ev.Key == key.KeyUp:
		if e.mode.Selected > 0 {
			e.mode.Selected--
		}
	case ev.Key == key.KeyDown:
		if e.mode.Selected+1 < len(e.mode.Matches) {
			e.mode.Selected++
		}
	case ev.Key == key.KeyBackspace:
		if e.mode.Query != "" {
			r := []rune(e.mode.Query)
			e.mode.Query = string(r[:len(r)-1])
			e.refreshFind()
		}
	case ev.IsRune():
		e.mode.Query += string(ev.Rune)
		e.refreshFind()
	}
}

// handleGoto consumes exactly one key. The mode returns to Normal
// first, so an unrecognized key still leaves Goto.
func (e *Editor) handleGoto(ev key.Event) {
	e.setMode(Mode{Kind: ModeNormal})
	if run, ok := e.gotos[ev]; ok {
		e.Current().Commit()
		run(e)
		e.Current().Commit()
	}
}
