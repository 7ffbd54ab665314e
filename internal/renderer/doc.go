// Package renderer is the tcell presentation layer: terminal lifecycle,
// event translation into key events, the theme, and the draw loop that
// paints the active buffer, the find candidate list, and the status
// line.
//
// All view-only state lives here. The per-document scroll offset in
// particular belongs to the renderer, not to the buffer, which stays
// free of presentation concerns.
package renderer
