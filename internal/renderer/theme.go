package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/gust/internal/config"
)

// Theme holds the resolved tcell styles for every drawn element.
type Theme struct {
	// Text is the default buffer cell style.
	Text tcell.Style

	// Selection styles cells inside a non-empty selection.
	Selection tcell.Style

	// Marker styles the single cell an empty selection points at.
	Marker tcell.Style

	// LineNumber styles the gutter.
	LineNumber tcell.Style

	// Status styles the status line.
	Status tcell.Style
}

// NewTheme resolves the configured hex palette into styles. Config
// validation already vets the colors; a bad one still errors here so a
// hand-built config.Theme cannot slip through.
func NewTheme(cfg config.Theme) (Theme, error) {
	fg, err := parseColor(cfg.Foreground)
	if err != nil {
		return Theme{}, err
	}
	bg, err := parseColor(cfg.Background)
	if err != nil {
		return Theme{}, err
	}
	sel, err := parseColor(cfg.Selection)
	if err != nil {
		return Theme{}, err
	}
	marker, err := parseColor(cfg.Marker)
	if err != nil {
		return Theme{}, err
	}
	lineNum, err := parseColor(cfg.LineNumber)
	if err != nil {
		return Theme{}, err
	}
	statusFG, err := parseColor(cfg.StatusFG)
	if err != nil {
		return Theme{}, err
	}
	statusBG, err := parseColor(cfg.StatusBG)
	if err != nil {
		return Theme{}, err
	}

	base := tcell.StyleDefault.Foreground(fg).Background(bg)
	return Theme{
		Text:       base,
		Selection:  base.Background(sel),
		Marker:     base.Background(marker),
		LineNumber: base.Foreground(lineNum),
		Status:     tcell.StyleDefault.Foreground(statusFG).Background(statusBG),
	}, nil
}

// parseColor turns "#rrggbb" into a tcell color.
func parseColor(hex string) (tcell.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, fmt.Errorf("theme color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
