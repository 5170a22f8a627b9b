// Package viewport tracks the cursor of one tab and the part of its
// buffer that is visible on screen.
//
// The vertical scroll position is anchored by the fraction of the window
// height at which the cursor sits, so the cursor keeps its visual row
// when the window is resized. Columns are rune indexes into the line.
package viewport

import (
	"math"
	"strconv"

	"github.com/dshills/linewise/internal/engine/buffer"
	"github.com/dshills/linewise/internal/input"
	"github.com/dshills/linewise/internal/input/mode"
)

// LineSource is the read access the viewport needs into a buffer.
// buffer.Lines satisfies it.
type LineSource interface {
	LinesCount() int
	LineLength(index int) (int, bool)
	Line(index int) (string, bool)
}

// Viewport is the cursor and scroll state of one text window.
type Viewport struct {
	lines LineSource

	// First visible line and column.
	topLine     int
	leftmostCol int

	// Size of the text area the last time it was drawn.
	lastHeight int
	lastWidth  int

	// Relative vertical cursor position, 0 at the top row and 1 at the
	// bottom row.
	percent float64

	cursor        buffer.Position
	lastManualCol int
	stickToEOL    bool
}

// New creates a viewport over lines with the cursor at the origin.
func New(lines LineSource) *Viewport {
	return &Viewport{
		lines:      lines,
		lastHeight: 2,
		lastWidth:  2,
	}
}

// Cursor returns the cursor position.
func (v *Viewport) Cursor() buffer.Position { return v.cursor }

// TopLine returns the first visible line.
func (v *Viewport) TopLine() int { return v.topLine }

// LeftmostCol returns the first visible column.
func (v *Viewport) LeftmostCol() int { return v.leftmostCol }

// Height returns the text area height from the last draw.
func (v *Viewport) Height() int { return v.lastHeight }

// Width returns the text area width from the last draw.
func (v *Viewport) Width() int { return v.lastWidth }

// StickToEOL reports whether vertical motion keeps the cursor on line ends.
func (v *Viewport) StickToEOL() bool { return v.stickToEOL }

// LastManualCol returns the column vertical motion tries to return to.
func (v *Viewport) LastManualCol() int { return v.lastManualCol }

// ClearStickToEOL stops the cursor from following line ends.
func (v *Viewport) ClearStickToEOL() { v.stickToEOL = false }

// RememberColumn records the cursor column as the sticky column.
func (v *Viewport) RememberColumn() { v.lastManualCol = v.cursor.Column }

// LinesCount returns the number of lines in the underlying buffer.
func (v *Viewport) LinesCount() int { return v.lines.LinesCount() }

// Line returns line i of the underlying buffer.
func (v *Viewport) Line(i int) (string, bool) { return v.lines.Line(i) }

func (v *Viewport) lineLength(i int) int {
	n, _ := v.lines.LineLength(i)
	return n
}

// fraction converts a row relative to the top of the window into percent.
func (v *Viewport) fraction(rel int) float64 {
	if v.lastHeight <= 1 {
		return 0
	}
	return float64(rel) / float64(v.lastHeight-1)
}

// MoveCursor moves the cursor one step in dir using the rules of mode m.
// Select mode moves like Normal mode. Command mode ignores motion.
func (v *Viewport) MoveCursor(m mode.Mode, dir input.Direction) {
	if m == nil {
		return
	}
	name := m.Name()
	if name == mode.ModeCommand {
		return
	}
	insert := name == mode.ModeInsert

	switch dir {
	case input.DirUp:
		v.moveUp(insert)
	case input.DirDown:
		v.moveDown(insert)
	case input.DirRight:
		if insert {
			v.moveRightInsert()
		} else {
			v.moveRight()
		}
	case input.DirLeft:
		if insert {
			v.moveLeftInsert()
		} else {
			v.moveLeft()
		}
	}
}

func (v *Viewport) moveUp(insert bool) {
	if v.cursor.Line == 0 {
		return
	}
	rel := v.cursor.Line - v.topLine
	v.cursor.Line--
	if v.cursor.Line < v.topLine {
		v.percent = 0
		v.topLine = v.cursor.Line
	} else {
		rel--
		v.percent = v.fraction(rel)
	}
	v.settleColumn(insert)
}

func (v *Viewport) moveDown(insert bool) {
	if v.cursor.Line+1 >= v.lines.LinesCount() {
		return
	}
	rel := v.cursor.Line - v.topLine
	v.cursor.Line++
	if v.percent == 1.0 {
		v.topLine++
	} else {
		rel++
		v.percent = v.fraction(rel)
	}
	v.settleColumn(insert)
}

// settleColumn places the cursor on the new line after vertical motion.
func (v *Viewport) settleColumn(insert bool) {
	newLen := v.lineLength(v.cursor.Line)

	switch {
	case v.cursor.Column >= newLen || v.stickToEOL:
		v.JumpToEOL()
		if insert {
			lmc := v.lastManualCol
			v.JumpPastEOL()
			v.lastManualCol = lmc
		}
	case insert && v.lastManualCol >= newLen:
		if v.lastManualCol > newLen {
			lmc := v.lastManualCol
			v.JumpPastEOL()
			v.lastManualCol = lmc
		} else {
			v.JumpPastEOL()
		}
	default:
		v.Jump(buffer.Position{
			Line:   v.cursor.Line,
			Column: min(v.lastManualCol, max(newLen, 1)-1),
		})
	}
}

func (v *Viewport) moveRight() {
	if v.lines.LinesCount() == 0 {
		return
	}
	if v.cursor.Column+1 >= v.lineLength(v.cursor.Line) {
		return
	}
	v.stepRight()
}

func (v *Viewport) moveRightInsert() {
	count := v.lines.LinesCount()
	if count == 0 {
		return
	}
	if v.CursorPastEOL() {
		if v.cursor.Line == count-1 {
			return
		}
		v.stickToEOL = false
		v.Jump(buffer.Position{Line: v.cursor.Line + 1})
		return
	}
	v.stepRight()
}

func (v *Viewport) stepRight() {
	v.stickToEOL = false
	v.cursor.Column++
	v.lastManualCol = v.cursor.Column
	if v.cursor.Column >= v.leftmostCol+v.lastWidth {
		v.leftmostCol++
	}
}

func (v *Viewport) moveLeft() {
	if v.cursor.Column == 0 {
		return
	}
	v.stepLeft()
}

func (v *Viewport) moveLeftInsert() {
	if v.lines.LinesCount() == 0 {
		return
	}
	if v.cursor.Column == 0 {
		if v.cursor.Line == 0 {
			return
		}
		v.stickToEOL = false
		prev := v.cursor.Line - 1
		v.Jump(buffer.Position{Line: prev, Column: v.lineLength(prev)})
		v.JumpPastEOL()
		v.lastManualCol = v.cursor.Column
		return
	}
	v.stepLeft()
}

func (v *Viewport) stepLeft() {
	v.stickToEOL = false
	v.cursor.Column--
	v.lastManualCol = v.cursor.Column
	if v.cursor.Column < v.leftmostCol {
		v.leftmostCol = v.cursor.Column
	}
}

// AdvanceInsertionCursor moves the cursor one column right without any
// bounds check. It follows a typed character in Insert mode.
func (v *Viewport) AdvanceInsertionCursor() {
	if v.lines.LinesCount() == 0 {
		return
	}
	v.cursor.Column++
	v.lastManualCol = v.cursor.Column
	if v.cursor.Column >= v.leftmostCol+v.lastWidth {
		v.leftmostCol++
	}
}

// CursorPastEOL reports whether the cursor is beyond the last character
// of its line. An empty buffer counts as past EOL.
func (v *Viewport) CursorPastEOL() bool {
	if v.lines.LinesCount() == 0 {
		return true
	}
	return v.cursor.Column >= v.lineLength(v.cursor.Line)
}

// SnapToEOL pulls a past-EOL cursor back onto the last character.
func (v *Viewport) SnapToEOL() {
	if v.lines.LinesCount() == 0 {
		v.cursor.Column = 0
		v.leftmostCol = 0
		return
	}
	if v.cursor.Column >= v.lineLength(v.cursor.Line) {
		v.JumpToEOL()
	}
}

func (v *Viewport) isOnScreen(pos buffer.Position) bool {
	bottom := v.topLine + v.lastHeight - 1
	rightmost := v.leftmostCol + v.lastWidth - 1
	return pos.Line >= v.topLine && pos.Line <= bottom &&
		pos.Column >= v.leftmostCol && pos.Column <= rightmost
}

// Jump moves the cursor to pos, scrolling so that it is visible. A jump
// off screen centres the target line and records the column as sticky.
func (v *Viewport) Jump(pos buffer.Position) {
	if v.isOnScreen(pos) {
		v.cursor = pos
		v.percent = v.fraction(pos.Line - v.topLine)
		return
	}

	bottom := v.topLine + v.lastHeight - 1
	count := v.lines.LinesCount()
	if count > 0 && (pos.Line < v.topLine || pos.Line > bottom) {
		line := min(pos.Line, count-1)
		rel := min(v.lastHeight/2, line)
		v.percent = v.fraction(rel)
		v.topLine = line - rel
	}

	rightmost := v.leftmostCol + v.lastWidth - 1
	if pos.Column < v.leftmostCol || pos.Column > rightmost {
		rel := min(v.lastWidth*3/4, pos.Column)
		v.leftmostCol = pos.Column - rel
	}

	v.cursor = pos
	v.lastManualCol = pos.Column
}

// StickyJumpToEOL jumps to the end of the line and keeps later vertical
// motion on line ends.
func (v *Viewport) StickyJumpToEOL() {
	v.stickToEOL = true
	v.JumpToEOL()
}

// JumpToEOL puts the cursor on the last character of its line.
func (v *Viewport) JumpToEOL() {
	if v.lines.LinesCount() == 0 {
		v.JumpToHome()
		return
	}
	n := v.lineLength(v.cursor.Line)
	if n == 0 {
		v.cursor.Column = 0
		v.leftmostCol = 0
		return
	}
	v.cursor.Column = n - 1
	toTheRight := v.cursor.Column >= v.leftmostCol+v.lastWidth
	if !toTheRight && v.cursor.Column >= v.leftmostCol {
		return
	}
	if toTheRight || v.cursor.Column >= v.lastWidth {
		v.leftmostCol = v.cursor.Column + 1 - v.lastWidth
	} else {
		v.leftmostCol = 0
	}
}

// JumpPastEOL puts the cursor just after the last character of its line,
// where Insert mode appends.
func (v *Viewport) JumpPastEOL() {
	v.JumpToEOL()
	if !v.CursorPastEOL() {
		v.AdvanceInsertionCursor()
	}
}

// JumpToHome moves the cursor to column 0.
func (v *Viewport) JumpToHome() {
	v.cursor.Column = 0
	v.leftmostCol = 0
	v.lastManualCol = 0
	v.stickToEOL = false
}

// JumpToLastLine moves the cursor to the last line of the buffer, with
// that line at the bottom of the window.
func (v *Viewport) JumpToLastLine() {
	line := max(v.lines.LinesCount()-1, 0)
	if line >= v.lastHeight {
		v.topLine = line - v.lastHeight + 1
	} else {
		v.topLine = 0
	}
	v.cursor.Line = line
	v.percent = v.fraction(line - v.topLine)
	v.SnapToEOL()
	v.lastManualCol = v.cursor.Column
}

// Resize records the drawn size of the text area and re-derives the top
// line from the cursor's relative row.
func (v *Viewport) Resize(height, width int) {
	v.lastHeight = max(height, 1)
	v.lastWidth = max(width, 1)
	rel := int(math.Round(v.percent * float64(v.lastHeight-1)))
	v.topLine = max(0, v.cursor.Line-rel)
}

// VisibleLineRange returns the half-open range of buffer lines in view.
func (v *Viewport) VisibleLineRange() (start, end int) {
	start = v.topLine
	end = min(v.topLine+v.lastHeight, v.lines.LinesCount())
	if end < start {
		end = start
	}
	return start, end
}

// GutterWidth returns the width of the line-number column: enough for the
// largest line number plus one space.
func (v *Viewport) GutterWidth() int {
	return len(strconv.Itoa(v.lines.LinesCount())) + 1
}

// ScreenCursor returns the terminal cell of the cursor relative to the
// text window origin, given the gutter width. The two hint columns after
// the gutter are included. ok is false when the cursor is off screen.
func (v *Viewport) ScreenCursor(gutter int) (x, y int, ok bool) {
	if !v.isOnScreen(v.cursor) {
		return 0, 0, false
	}
	return v.cursor.Column - v.leftmostCol + gutter + 2, v.cursor.Line - v.topLine, true
}

var _ mode.ViewState = (*Viewport)(nil)
