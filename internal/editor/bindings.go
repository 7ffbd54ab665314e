package editor

import (
	"fmt"

	"github.com/dshills/gust/internal/input/key"
)

// pageLines is how far Ctrl-d and Ctrl-u jump.
const pageLines = 25

// actionFunc runs one Normal-mode action. count is the raw pending
// numeric prefix, 0 when none was typed.
type actionFunc func(e *Editor, count int)

// binding pairs an action name with its handler.
type binding struct {
	action string
	run    actionFunc
}

// bindingRow declares one action with its default chords. The action
// name is what [keymap.normal] overrides refer to.
type bindingRow struct {
	action string
	chords []string
	run    actionFunc
}

func normalRows() []bindingRow {
	return []bindingRow{
		// Movement
		{"move-left", []string{"h", "Left"}, func(e *Editor, count int) {
			e.Buffer().MoveBackward(times(count))
		}},
		{"move-right", []string{"l", "Right"}, func(e *Editor, count int) {
			e.Buffer().MoveForward(times(count))
		}},
		{"move-up", []string{"k", "Up"}, func(e *Editor, count int) {
			e.Buffer().MoveUp(times(count))
		}},
		{"move-down", []string{"j", "Down"}, func(e *Editor, count int) {
			e.Buffer().MoveDown(times(count))
		}},
		{"extend-left", []string{"H", "S-Left"}, func(e *Editor, count int) {
			e.Buffer().ExtendBackward(times(count))
		}},
		{"extend-right", []string{"L", "S-Right"}, func(e *Editor, count int) {
			e.Buffer().ExtendForward(times(count))
		}},
		{"extend-up", []string{"K", "S-Up"}, func(e *Editor, count int) {
			e.Buffer().ExtendUp(times(count))
		}},
		{"extend-down", []string{"J", "S-Down"}, func(e *Editor, count int) {
			e.Buffer().ExtendDown(times(count))
		}},
		{"word-forward", []string{"w"}, func(e *Editor, _ int) {
			e.Buffer().MoveForwardWord()
		}},
		{"word-backward", []string{"b"}, func(e *Editor, _ int) {
			e.Buffer().MoveBackwardWord()
		}},
		{"extend-word-forward", []string{"W"}, func(e *Editor, _ int) {
			e.Buffer().ExtendForwardWord()
		}},
		{"extend-word-backward", []string{"B"}, func(e *Editor, _ int) {
			e.Buffer().ExtendBackwardWord()
		}},
		{"page-down", []string{"C-d"}, func(e *Editor, _ int) {
			e.Buffer().MoveDown(pageLines)
		}},
		{"page-up", []string{"C-u"}, func(e *Editor, _ int) {
			e.Buffer().MoveUp(pageLines)
		}},
		{"extend-page-down", []string{"C-S-d"}, func(e *Editor, _ int) {
			e.Buffer().ExtendDown(pageLines)
		}},
		{"extend-page-up", []string{"C-S-u"}, func(e *Editor, _ int) {
			e.Buffer().ExtendUp(pageLines)
		}},

		// Selections
		{"select-line", []string{"x"}, func(e *Editor, _ int) {
			e.Buffer().MoveLine()
		}},
		{"extend-line", []string{"X"}, func(e *Editor, _ int) {
			e.Buffer().ExtendLine()
		}},
		{"select-all", []string{"%"}, func(e *Editor, _ int) {
			e.Buffer().SelectAll()
		}},
		{"collapse", []string{";"}, func(e *Editor, _ int) {
			e.Buffer().Collapse()
		}},
		{"reverse", []string{"'", "A-;"}, func(e *Editor, _ int) {
			e.Buffer().ReverseSelections()
		}},
		{"surround", []string{"s"}, func(e *Editor, _ int) {
			e.Buffer().SelectInnerSurrounding()
		}},
		{"expand-surround", []string{"S"}, func(e *Editor, _ int) {
			e.Buffer().ExpandInnerSurrounding()
		}},

		// Edits
		{"delete", []string{"d"}, func(e *Editor, _ int) {
			e.yanked = e.Buffer().Delete()
		}},
		{"change", []string{"c"}, func(e *Editor, _ int) {
			e.yanked = e.Buffer().Delete()
			e.setMode(Mode{Kind: ModeInsert})
		}},
		{"yank", []string{"y"}, func(e *Editor, _ int) {
			e.yanked = e.Buffer().Yank()
		}},
		{"paste", []string{"p"}, func(e *Editor, _ int) {
			e.Buffer().Paste(e.yanked)
		}},
		{"paste-extend", []string{"P"}, func(e *Editor, _ int) {
			e.Buffer().PasteExtend(e.yanked)
		}},
		{"indent", []string{">"}, func(e *Editor, count int) {
			e.Buffer().IncreaseIndent(times(count))
		}},
		{"dedent", []string{"<"}, func(e *Editor, count int) {
			e.Buffer().DecreaseIndent(times(count))
		}},

		// History
		{"undo", []string{"u"}, func(e *Editor, count int) {
			e.Current().Undo(times(count))
		}},
		{"redo", []string{"U"}, func(e *Editor, count int) {
			e.Current().Redo(times(count))
		}},

		// Mode switches
		{"insert", []string{"i"}, func(e *Editor, _ int) {
			e.setMode(Mode{Kind: ModeInsert})
		}},
		{"insert-extend", []string{"I"}, func(e *Editor, _ int) {
			e.setMode(Mode{Kind: ModeInsert, Extend: true})
		}},
		{"append-line-end", []string{"A"}, func(e *Editor, _ int) {
			e.Buffer().ExtendLineEnd()
			e.setMode(Mode{Kind: ModeInsert})
		}},
		{"open-line", []string{"o"}, func(e *Editor, _ int) {
			e.Buffer().Open()
			e.setMode(Mode{Kind: ModeInsert})
		}},
		{"goto", []string{"g"}, func(e *Editor, count int) {
			if count > 0 {
				e.Buffer().MoveToLine(count - 1)
				return
			}
			e.setMode(Mode{Kind: ModeGoto})
		}},
		{"command", []string{":"}, func(e *Editor, _ int) {
			e.setMode(Mode{Kind: ModeCommand})
		}},
		{"find", []string{"C-p"}, func(e *Editor, _ int) {
			e.enterFind()
		}},
	}
}

// normalBindings builds the Normal-mode dispatch table. Each override
// replaces the named action's default chords with the one given.
func normalBindings(overrides map[string]string) (map[key.Event]binding, error) {
	rows := normalRows()

	byAction := make(map[string]int, len(rows))
	for i, row := range rows {
		byAction[row.action] = i
	}
	for action, chord := range overrides {
		i, ok := byAction[action]
		if !ok {
			return nil, fmt.Errorf("keymap.normal: unknown action %q", action)
		}
		rows[i].chords = []string{chord}
	}

	table := make(map[key.Event]binding)
	for _, row := range rows {
		for _, chord := range row.chords {
			ev, err := key.Parse(chord)
			if err != nil {
				return nil, fmt.Errorf("keymap.normal: action %s: %w", row.action, err)
			}
			if prev, dup := table[ev]; dup {
				return nil, fmt.Errorf("keymap.normal: %q bound to both %s and %s", chord, prev.action, row.action)
			}
			table[ev] = binding{action: row.action, run: row.run}
		}
	}
	return table, nil
}

// gotoBindings builds the one-shot Goto dispatch table.
func gotoBindings() map[key.Event]func(*Editor) {
	return map[key.Event]func(*Editor){
		key.RuneEvent('l'): func(e *Editor) { e.Buffer().MoveLineEnd() },
		key.RuneEvent('h'): func(e *Editor) { e.Buffer().MoveLineStart() },
		key.RuneEvent('k'): func(e *Editor) { e.Buffer().MoveToLine(0) },
		key.RuneEvent('j'): func(e *Editor) {
			buf := e.Buffer()
			buf.MoveToLine(buf.LineCount() - 1)
		},
		key.RuneEvent('i'): func(e *Editor) { e.Buffer().MoveFirstNonBlank() },
	}
}

// times turns a raw pending count into a repeat factor.
func times(count int) int {
	if count < 1 {
		return 1
	}
	return count
}
