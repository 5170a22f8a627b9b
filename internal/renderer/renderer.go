package renderer

import (
	"github.com/dshills/linewise/internal/editor"
	"github.com/dshills/linewise/internal/input/mode"
	"github.com/dshills/linewise/internal/renderer/backend"
	"github.com/dshills/linewise/internal/renderer/core"
)

// hintWidth is the blank strip between the line numbers and the text.
const hintWidth = 2

// promptFraction is the share of the screen a floating prompt covers.
const promptFraction = 0.8

// Layout is the placement of each part of a frame.
type Layout struct {
	Tabline core.Rect
	Text    core.Rect
	Menu    core.Rect
	Status  core.Rect
	Prompt  core.Rect
}

// ComputeLayout splits a screen of the given size. Menu and Prompt are
// empty unless requested.
func ComputeLayout(width, height int, menu, prompt bool) Layout {
	var l Layout
	if width <= 0 || height <= 0 {
		return l
	}
	l.Tabline = core.Rect{X: 0, Y: 0, Width: width, Height: 1}
	if height >= 2 {
		l.Status = core.Rect{X: 0, Y: height - 1, Width: width, Height: 1}
	}
	l.Text = core.Rect{X: 0, Y: 1, Width: width, Height: max(height-2, 0)}

	if menu && l.Text.Height > 1 {
		mh := max(l.Text.Height/3, 1)
		l.Menu = core.Rect{X: 0, Y: l.Text.Bottom() - mh, Width: width, Height: mh}
	}
	if prompt {
		l.Prompt = core.Rect{X: 0, Y: 0, Width: width, Height: height}.Centered(promptFraction)
	}
	return l
}

// Renderer draws frames.
type Renderer struct {
	backend backend.Backend
	theme   *Theme
}

// New creates a renderer. A nil theme means the default theme.
func New(b backend.Backend, theme *Theme) *Renderer {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Renderer{backend: b, theme: theme}
}

// Theme returns the theme in use.
func (r *Renderer) Theme() *Theme { return r.theme }

// SetTheme replaces the theme for subsequent frames.
func (r *Renderer) SetTheme(t *Theme) {
	if t != nil {
		r.theme = t
	}
}

// Render draws one complete frame of e and flushes it.
func (r *Renderer) Render(e *editor.Editor) {
	width, height := r.backend.Size()

	var ov *editor.OverlayView
	if o := e.Overlay(); o != nil {
		v := o.View()
		ov = &v
	}
	menu := ov != nil && ov.Kind == editor.OverlayMenu
	prompt := ov != nil && ov.Kind == editor.OverlayPrompt
	l := ComputeLayout(width, height, menu, prompt)

	r.backend.Clear()
	r.drawTabline(e, l.Tabline)
	cx, cy, cursorOK := r.drawText(e, l.Text)
	if menu {
		r.drawMenu(*ov, l.Menu)
	}
	r.drawStatus(e, l.Status, menu)
	if prompt {
		cx, cy, cursorOK = r.drawPrompt(*ov, l.Prompt)
	}

	switch {
	case menu || !cursorOK:
		r.backend.HideCursor()
	default:
		r.backend.SetCursorStyle(cursorStyle(e.Mode(), prompt))
		r.backend.ShowCursor(cx, cy)
	}
	r.backend.Show()
}

func cursorStyle(m mode.Mode, prompt bool) backend.CursorStyle {
	if prompt {
		return backend.CursorBar
	}
	switch m.CursorStyle() {
	case mode.CursorBar:
		return backend.CursorBar
	case mode.CursorUnderline:
		return backend.CursorUnderline
	default:
		return backend.CursorBlock
	}
}

// drawString draws s from (x, y) without passing limit and returns the
// column after the last cell drawn.
func (r *Renderer) drawString(x, y, limit int, s string, style core.Style) int {
	for _, ch := range s {
		w := max(core.RuneWidth(ch), 1)
		if x+w > limit {
			break
		}
		r.backend.SetCell(x, y, core.Cell{Rune: ch, Width: w, Style: style})
		x += w
	}
	return x
}

func (r *Renderer) fill(area core.Rect, style core.Style) {
	if area.IsEmpty() {
		return
	}
	r.backend.Fill(area, core.Cell{Rune: ' ', Width: 1, Style: style})
}
