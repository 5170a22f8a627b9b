package renderer

import (
	"fmt"
	"strings"

	"github.com/dshills/linewise/internal/editor"
	"github.com/dshills/linewise/internal/engine/buffer"
	"github.com/dshills/linewise/internal/renderer/core"
	"github.com/dshills/linewise/internal/renderer/viewport"
)

func (r *Renderer) drawTabline(e *editor.Editor, area core.Rect) {
	if area.IsEmpty() {
		return
	}
	r.fill(area, r.theme.Tabline)

	x := area.X
	for i, t := range e.Tabs() {
		if i > 0 {
			x = r.drawString(x, area.Y, area.Right(), "|", r.theme.TabSeparator)
		}
		style := r.theme.Tabline
		if i == e.CurrentTabIndex() {
			style = r.theme.TabActive
		}
		x = r.drawString(x, area.Y, area.Right(), " "+e.TabTitle(t)+" ", style)
	}
}

// drawText draws the current tab's text window and returns the screen
// position of the cursor.
func (r *Renderer) drawText(e *editor.Editor, area core.Rect) (x, y int, ok bool) {
	r.fill(area, r.theme.Text)
	v := e.View()
	if v == nil || area.IsEmpty() {
		return 0, 0, false
	}

	gutter := v.GutterWidth()
	textX := area.X + gutter + hintWidth
	v.Resize(area.Height, area.Width-gutter-hintWidth)

	cur := v.Cursor()
	sel, selecting := e.Selection()
	start, end := v.VisibleLineRange()
	if end == start && v.LinesCount() == 0 {
		// An empty buffer still shows the cursor line.
		end = start + 1
	}

	for line := start; line < end; line++ {
		row := area.Y + line - start
		r.drawLineNumber(area.X, row, gutter, line, cur.Line)

		base := r.theme.Text
		if line == cur.Line {
			base = r.theme.CursorLine
			r.fill(core.Rect{X: textX, Y: row, Width: area.Right() - textX, Height: 1}, base)
		}

		text, _ := v.Line(line)
		col := v.LeftmostCol()
		cx := textX
		for i, ch := range []rune(text) {
			if i < col {
				continue
			}
			w := max(core.RuneWidth(ch), 1)
			if cx+w > area.Right() {
				break
			}
			style := base
			if selecting && sel.Contains(buffer.Position{Line: line, Column: i}) {
				style = r.theme.Selection
			}
			r.backend.SetCell(cx, row, core.Cell{Rune: ch, Width: w, Style: style})
			cx += w
		}
	}

	if _, sy, visible := v.ScreenCursor(gutter); visible {
		sx := textX + cursorOffset(v, cur)
		if sx < area.Right() {
			return sx, area.Y + sy, true
		}
	}
	return 0, 0, false
}

// cursorOffset is the display width between the left edge of the text
// window and the cursor. Columns past the end of the line count as one
// cell each.
func cursorOffset(v *viewport.Viewport, cur buffer.Position) int {
	text, _ := v.Line(cur.Line)
	runes := []rune(text)
	left := v.LeftmostCol()

	width := 0
	for i := left; i < cur.Column; i++ {
		if i < len(runes) {
			width += max(core.RuneWidth(runes[i]), 1)
		} else {
			width++
		}
	}
	return width
}

// drawLineNumber draws the relative number for line: the distance to the
// cursor line, or the absolute number on the cursor line itself.
func (r *Renderer) drawLineNumber(x, y, width, line, cursorLine int) {
	n := line - cursorLine
	style := r.theme.LineNumber
	switch {
	case n == 0:
		n = line + 1
		style = r.theme.LineNumberCurrent
	case n < 0:
		n = -n
	}
	r.drawString(x, y, x+width, fmt.Sprintf("%*d", width, n), style)
}

func (r *Renderer) drawMenu(ov editor.OverlayView, area core.Rect) {
	if area.IsEmpty() {
		return
	}
	r.fill(area, r.theme.Menu)
	r.drawString(area.X, area.Y, area.Right(), " "+ov.Title+" ", r.theme.ModeLabel("menu"))

	colWidth := 1
	for _, entry := range ov.Entries {
		colWidth = max(colWidth, core.StringWidth(entry.Keys)+core.StringWidth(entry.Description)+4)
	}
	rows := area.Height - 1
	if rows <= 0 {
		return
	}
	for i, entry := range ov.Entries {
		x := area.X + 1 + (i/rows)*colWidth
		y := area.Y + 1 + i%rows
		if x >= area.Right() {
			break
		}
		x = r.drawString(x, y, area.Right(), entry.Keys, r.theme.MenuKey)
		r.drawString(x+2, y, area.Right(), entry.Description, r.theme.Menu)
	}
}

func (r *Renderer) drawStatus(e *editor.Editor, area core.Rect, menu bool) {
	if area.IsEmpty() {
		return
	}
	r.fill(area, r.theme.StatusBar)

	m := e.Mode()
	label, labelStyle := " "+m.DisplayName()+" ", r.theme.ModeLabel(m.Name())
	if menu {
		label, labelStyle = " MENU ", r.theme.ModeLabel("menu")
	}
	x := r.drawString(area.X, area.Y, area.Right(), label, labelStyle)

	pos := ""
	if v := e.View(); v != nil {
		c := v.Cursor()
		pos = fmt.Sprintf("%d:%d", c.Line+1, c.Column+1)
	}
	posX := area.Right() - 1 - core.StringWidth(pos)
	if posX > x {
		r.drawString(posX, area.Y, area.Right(), pos, r.theme.StatusBar)
	} else {
		posX = area.Right()
	}

	if msg := e.Status(); msg != "" {
		room := posX - x - 2
		r.drawString(x+1, area.Y, posX-1, core.Truncate(msg, room, "…"), r.theme.StatusBar)
	}
}

// drawPrompt draws a bordered floating prompt and returns the position of
// its input cursor.
func (r *Renderer) drawPrompt(ov editor.OverlayView, area core.Rect) (x, y int, ok bool) {
	if area.Width < 4 || area.Height < 3 {
		return 0, 0, false
	}
	r.fill(area, r.theme.Prompt)

	inner := area.Width - 2
	top := "╭" + strings.Repeat("─", inner) + "╮"
	bottom := "╰" + strings.Repeat("─", inner) + "╯"
	r.drawString(area.X, area.Y, area.Right(), top, r.theme.PromptBorder)
	r.drawString(area.X, area.Bottom()-1, area.Right(), bottom, r.theme.PromptBorder)
	for row := area.Y + 1; row < area.Bottom()-1; row++ {
		r.backend.SetCell(area.X, row, core.NewStyledCell('│', r.theme.PromptBorder))
		r.backend.SetCell(area.Right()-1, row, core.NewStyledCell('│', r.theme.PromptBorder))
	}
	r.drawString(area.X+2, area.Y, area.Right()-2, " "+ov.Title+" ", r.theme.Prompt.Bold())

	row := area.Y + area.Height/2
	limit := area.Right() - 2
	input := ov.Input
	// Keep the end of long input visible.
	if room := limit - (area.X + 2) - 1; core.StringWidth(input) > room {
		runes := []rune(input)
		for len(runes) > 0 && core.StringWidth(string(runes)) > room {
			runes = runes[1:]
		}
		input = string(runes)
	}
	end := r.drawString(area.X+2, row, limit, input, r.theme.Prompt)
	return end, row, true
}
