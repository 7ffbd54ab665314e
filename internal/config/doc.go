// Package config loads the gust configuration from a TOML file.
//
// Configuration lives at $XDG_CONFIG_HOME/gust/config.toml (falling back
// to ~/.config/gust/config.toml). Every field is optional: absent fields
// keep their built-in defaults, and an absent file yields the defaults
// unchanged.
//
//	[editor]
//	tab_width = 4
//	expand_tabs = true
//	scroll_margin = 2
//
//	[find]
//	max_results = 64
//	ignore = [".git", "node_modules"]
//
//	[log]
//	level = "info"
//	file = "/tmp/gust.log"
//
//	[theme]
//	foreground = "#c8c8c8"
//
//	[keymap.normal]
//	find = "C-f"
//
// Load validates what it decodes: a tab width below one, an unknown log
// level, a color that does not parse as hex, or a key chord that does
// not parse is reported at load time.
package config
