// Package config loads editor settings.
//
// Settings come from four layers, later layers overriding earlier ones:
//
//	┌────────────────────────────────────┐
//	│  4. Command line flags             │  ← highest priority
//	├────────────────────────────────────┤
//	│  3. Environment (LINEWISE_*)       │
//	├────────────────────────────────────┤
//	│  2. Config file (.toml/.yaml/.yml) │
//	├────────────────────────────────────┤
//	│  1. Built-in defaults              │
//	└────────────────────────────────────┘
//
// The merged map is decoded into Settings:
//
//	[theme]
//	"text.background" = "#202020"
//
//	[keymap.normal]
//	"<C-s>" = "buffer.save"
//
//	[logging]
//	level = "debug"
//	file = "/tmp/linewise.log"
//
//	[editor]
//	initScript = "~/.config/linewise/init.lua"
//
// Theme and keymap entries are passed through as strings; the renderer
// and keymap resolver validate them.
//
// # Sub-packages
//
//   - loader: TOML, YAML and environment loaders
//   - layer: merging and diffing of layered maps
//   - watcher: fsnotify-based change detection for live reload
package config
