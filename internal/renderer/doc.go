// Package renderer draws the editor onto a terminal backend.
//
// A frame is laid out top to bottom:
//
//	┌─────────────────────────────────────────┐
//	│ tabline                                 │
//	├────┬──┬─────────────────────────────────┤
//	│ 12 │  │ text window                     │
//	│  1 │  │                                 │
//	│ 13 │  │  (leader menu panel, if open)   │
//	├────┴──┴─────────────────────────────────┤
//	│ MODE  status message             13:4   │
//	└─────────────────────────────────────────┘
//
// The gutter holds relative line numbers, followed by a two column hint
// strip. Prompts float in the middle of the screen. The text window
// reports the size it was drawn at back to the viewport, so the next
// motion scrolls against the current geometry.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultTheme())
//	r.Render(ed)
package renderer
