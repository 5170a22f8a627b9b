// Package key provides key event types and parsing for the input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: identifies a special key, or KeyRune for characters
//   - Modifier: modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: a single key press with modifiers and timestamp
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "A", "1", "$", "Enter", "Esc"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Shift+Tab"
//   - Vim-style: "<C-s>", "<A-f>", "<S-Tab>", "<CR>", "<Space>"
//
// Every event has one canonical spec, returned by Event.Spec. Keymaps are
// keyed by that spec, so "Ctrl+S" and "<C-s>" bind the same key.
package key
