package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/gust/internal/editor"
	"github.com/dshills/gust/internal/engine/buffer"
	"github.com/dshills/gust/internal/engine/cursor"
	"github.com/dshills/gust/internal/engine/history"
)

// maxFindRows caps the candidate list so it never swallows the screen.
const maxFindRows = 10

// Renderer paints the editor onto a terminal. It owns the per-document
// scroll offsets; the editing core holds no view state.
type Renderer struct {
	term   *Terminal
	theme  Theme
	margin int
	scroll map[*history.BufferState]int
}

// New creates a renderer. scrollMargin is the minimum number of lines
// kept between the primary cursor and the viewport edges.
func New(term *Terminal, theme Theme, scrollMargin int) *Renderer {
	if scrollMargin < 0 {
		scrollMargin = 0
	}
	return &Renderer{
		term:   term,
		theme:  theme,
		margin: scrollMargin,
		scroll: make(map[*history.BufferState]int),
	}
}

// forgetClosed drops scroll offsets for documents no longer open, so a
// closed document does not pin view state for the life of the process.
func (r *Renderer) forgetClosed(e *editor.Editor) {
	if len(r.scroll) <= e.DocumentCount() {
		return
	}
	open := make(map[*history.BufferState]bool, e.DocumentCount())
	for i := 0; i < e.DocumentCount(); i++ {
		open[e.Document(i)] = true
	}
	for doc := range r.scroll {
		if !open[doc] {
			delete(r.scroll, doc)
		}
	}
}

// ScrollLine returns the first visible line of the given document.
func (r *Renderer) ScrollLine(doc *history.BufferState) int {
	return r.scroll[doc]
}

// Draw paints one full frame: gutter, buffer text with selections and
// direction markers, the find candidate list when in Find mode, and
// the status line. It ends with a screen show.
func (r *Renderer) Draw(e *editor.Editor) {
	r.forgetClosed(e)
	screen := r.term.screen
	w, h := screen.Size()
	if w == 0 || h == 0 {
		return
	}
	screen.Fill(' ', r.theme.Text)

	buf := e.Buffer()
	pos := buf.CursorPosition()
	textHeight := h - 1
	top := r.scrollTo(e.Current(), pos.Line, buf.LineCount(), textHeight)
	gutter := gutterWidth(buf.LineCount())

	for row := 0; row < textHeight; row++ {
		line := top + row
		if line >= buf.LineCount() {
			break
		}
		r.drawLine(screen, buf, line, row, gutter, w)
	}

	if e.Mode().Kind == editor.ModeFind {
		r.drawFindList(screen, e.Mode(), w, h)
	}
	r.drawStatus(screen, e, w, h-1)

	cx := gutter + buf.VisualColumn(pos)
	cy := pos.Line - top
	if cy >= 0 && cy < textHeight && cx < w {
		screen.ShowCursor(cx, cy)
	} else {
		screen.HideCursor()
	}
	screen.Show()
}

// scrollTo updates and returns the document's scroll line so the
// cursor stays at least margin lines from the viewport edges.
func (r *Renderer) scrollTo(doc *history.BufferState, cursorLine, lineCount, height int) int {
	if height <= 0 {
		return r.scroll[doc]
	}
	margin := r.margin
	if margin > (height-1)/2 {
		margin = (height - 1) / 2
	}

	top := r.scroll[doc]
	if cursorLine < top+margin {
		top = cursorLine - margin
	}
	if cursorLine > top+height-1-margin {
		top = cursorLine - height + 1 + margin
	}
	if max := lineCount - 1; top > max {
		top = max
	}
	if top < 0 {
		top = 0
	}
	r.scroll[doc] = top
	return top
}

// drawLine paints one buffer line: right-aligned line number, then the
// cells, expanding tabs and keeping grapheme clusters in one cell.
func (r *Renderer) drawLine(screen tcell.Screen, buf *buffer.Buffer, line, row, gutter, width int) {
	number := fmt.Sprintf("%*d ", gutter-1, line+1)
	drawText(screen, 0, row, r.theme.LineNumber, number)

	text := buf.Text()
	start := text.LineStartOffset(line)
	lineText := text.LineText(line)

	x := gutter
	offset := 0
	graphemes := uniseg.NewGraphemes(lineText)
	for graphemes.Next() && x < width {
		cluster := graphemes.Runes()
		style := r.cellStyle(buf, cursor.Idx(start+offset))

		if len(cluster) == 1 && cluster[0] == '\t' {
			for n := buffer.DistanceToNextTabstop(x-gutter, buf.TabWidth()); n > 0 && x < width; n-- {
				screen.SetContent(x, row, ' ', nil, style)
				x++
			}
		} else {
			screen.SetContent(x, row, cluster[0], cluster[1:], style)
			x += runewidth.StringWidth(graphemes.Str())
		}
		offset += len(cluster)
	}

	// A selection endpoint may sit on the line break (or the end of the
	// buffer); give it a cell of its own.
	if x < width {
		if style := r.cellStyle(buf, cursor.Idx(start+offset)); style != r.theme.Text {
			screen.SetContent(x, row, ' ', nil, style)
		}
	}
}

// cellStyle styles one cell from its selection classification.
func (r *Renderer) cellStyle(buf *buffer.Buffer, idx cursor.Idx) tcell.Style {
	switch buf.VisualSelectionAt(idx) {
	case buffer.VisualSelected:
		return r.theme.Selection
	case buffer.VisualMarker:
		return r.theme.Marker
	default:
		return r.theme.Text
	}
}

// drawFindList paints the ranked candidates above the status line, the
// selected row highlighted.
func (r *Renderer) drawFindList(screen tcell.Screen, mode editor.Mode, width, height int) {
	rows := len(mode.Matches)
	if rows > maxFindRows {
		rows = maxFindRows
	}
	if rows > height-1 {
		rows = height - 1
	}

	// Keep the selected row visible when the list is longer than the box.
	first := 0
	if mode.Selected >= rows {
		first = mode.Selected - rows + 1
	}
	for i := 0; i < rows; i++ {
		style := r.theme.Text
		if first+i == mode.Selected {
			style = r.theme.Selection
		}
		y := height - 1 - rows + i
		fillRow(screen, y, width, style)
		drawText(screen, 0, y, style, truncate(mode.Matches[first+i], width))
	}
}

// drawStatus paints the bottom row: mode (with pending count or modal
// input), path, dirty marker, transient message, and the primary
// cursor position on the right.
func (r *Renderer) drawStatus(screen tcell.Screen, e *editor.Editor, width, row int) {
	buf := e.Buffer()
	mode := e.Mode()

	indicator := mode.Kind.String()
	switch mode.Kind {
	case editor.ModeNormal:
		if mode.Count > 0 {
			indicator = fmt.Sprintf("%s %d", indicator, mode.Count)
		}
	case editor.ModeCommand:
		indicator = ":" + mode.Input
	case editor.ModeFind:
		indicator = "find: " + mode.Query
	}

	path := buf.Path()
	if path == "" {
		path = "[scratch]"
	}
	if e.Dirty() {
		path += " [+]"
	}

	left := fmt.Sprintf(" %s  %s", indicator, path)
	if msg := e.Status(); msg != "" {
		left += "  " + msg
	}

	pos := buf.CursorPosition()
	right := fmt.Sprintf("%d:%d ", pos.Line+1, pos.Column+1)

	fillRow(screen, row, width, r.theme.Status)
	drawText(screen, 0, row, r.theme.Status, truncate(left, width))
	if x := width - runewidth.StringWidth(right); x > 0 {
		drawText(screen, x, row, r.theme.Status, right)
	}
}

// gutterWidth returns the gutter size for a line count: the digits
// plus one space.
func gutterWidth(lineCount int) int {
	digits := 1
	for lineCount >= 10 {
		lineCount /= 10
		digits++
	}
	return digits + 1
}

// drawText paints a string left to right, honoring rune widths.
func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	width, _ := screen.Size()
	graphemes := uniseg.NewGraphemes(s)
	for graphemes.Next() && x < width {
		cluster := graphemes.Runes()
		screen.SetContent(x, y, cluster[0], cluster[1:], style)
		x += runewidth.StringWidth(graphemes.Str())
	}
}

// fillRow paints a full row of blanks in the given style.
func fillRow(screen tcell.Screen, y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}

// truncate cuts a string to at most width cells.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "")
}
