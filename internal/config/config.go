package config

import (
	"fmt"
	"os"
	"path/filepath"

	colorful "github.com/lucasb-eyer/go-colorful"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/dshills/gust/internal/input/key"
)

// Editor holds text editing behavior.
type Editor struct {
	// TabWidth is the number of columns between tab stops.
	TabWidth int `toml:"tab_width"`

	// ExpandTabs inserts spaces up to the next tab stop instead of a tab.
	ExpandTabs bool `toml:"expand_tabs"`

	// ScrollMargin is the minimum number of lines kept between the primary
	// cursor and the viewport edges.
	ScrollMargin int `toml:"scroll_margin"`
}

// Find holds file finder behavior.
type Find struct {
	// MaxResults caps the number of ranked matches shown.
	MaxResults int `toml:"max_results"`

	// Ignore lists directory names skipped while walking for candidates.
	Ignore []string `toml:"ignore"`
}

// Log holds logging behavior.
type Log struct {
	// Level is the minimum severity written ("debug", "info", "warn", "error").
	Level string `toml:"level"`

	// File is the log destination. Empty disables logging.
	File string `toml:"file"`
}

// Theme holds the display palette as "#rrggbb" hex strings.
type Theme struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Selection  string `toml:"selection"`
	Marker     string `toml:"marker"`
	LineNumber string `toml:"line_number"`
	StatusFG   string `toml:"status_fg"`
	StatusBG   string `toml:"status_bg"`
}

// Keymap holds chord overrides keyed by action name, one table per mode.
type Keymap struct {
	Normal map[string]string `toml:"normal"`
}

// Config is the complete gust configuration.
type Config struct {
	Editor Editor `toml:"editor"`
	Find   Find   `toml:"find"`
	Log    Log    `toml:"log"`
	Theme  Theme  `toml:"theme"`
	Keymap Keymap `toml:"keymap"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: Editor{
			TabWidth:     4,
			ExpandTabs:   true,
			ScrollMargin: 2,
		},
		Find: Find{
			MaxResults: 64,
			Ignore:     []string{".git", "node_modules"},
		},
		Log: Log{
			Level: "info",
		},
		Theme: Theme{
			Foreground: "#c8c8c8",
			Background: "#1d1f21",
			Selection:  "#3a3d41",
			Marker:     "#707880",
			LineNumber: "#5c6370",
			StatusFG:   "#1d1f21",
			StatusBG:   "#81a2be",
		},
	}
}

// DefaultPath returns the standard config file location,
// $XDG_CONFIG_HOME/gust/config.toml or ~/.config/gust/config.toml.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gust", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "gust", "config.toml")
}

// Load reads the TOML file at path layered over the defaults. A missing
// file yields the defaults unchanged. A file that fails to parse, or one
// carrying an invalid value, is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

func (c Config) validate() error {
	if c.Editor.TabWidth < 1 {
		return fmt.Errorf("editor.tab_width must be at least 1, got %d", c.Editor.TabWidth)
	}
	if c.Editor.ScrollMargin < 0 {
		return fmt.Errorf("editor.scroll_margin must not be negative, got %d", c.Editor.ScrollMargin)
	}
	if c.Find.MaxResults < 1 {
		return fmt.Errorf("find.max_results must be at least 1, got %d", c.Find.MaxResults)
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}

	colors := []struct {
		name string
		hex  string
	}{
		{"foreground", c.Theme.Foreground},
		{"background", c.Theme.Background},
		{"selection", c.Theme.Selection},
		{"marker", c.Theme.Marker},
		{"line_number", c.Theme.LineNumber},
		{"status_fg", c.Theme.StatusFG},
		{"status_bg", c.Theme.StatusBG},
	}
	for _, col := range colors {
		if _, err := colorful.Hex(col.hex); err != nil {
			return fmt.Errorf("theme.%s: invalid color %q", col.name, col.hex)
		}
	}

	for action, chord := range c.Keymap.Normal {
		if _, err := key.Parse(chord); err != nil {
			return fmt.Errorf("keymap.normal.%s: %w", action, err)
		}
	}
	return nil
}
