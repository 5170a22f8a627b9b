package editor

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/linewise/internal/dispatcher"
	"github.com/dshills/linewise/internal/engine/buffer"
	"github.com/dshills/linewise/internal/input"
	"github.com/dshills/linewise/internal/input/mode"
	"github.com/dshills/linewise/internal/renderer/viewport"
)

// bufferHandler is an action handler that needs the current buffer and
// viewport.
type bufferHandler func(b *buffer.Buffer, v *viewport.Viewport, action input.Action) dispatcher.Result

func (e *Editor) registerHandlers() {
	d := e.dispatcher

	d.RegisterHandlerFunc(ActionModeInsert, e.withView(func(v *viewport.Viewport) dispatcher.Result {
		return e.switchMode(mode.ModeInsert)
	}))
	d.RegisterHandlerFunc(ActionModeNormal, e.withView(func(v *viewport.Viewport) dispatcher.Result {
		return e.switchMode(mode.ModeNormal)
	}))
	d.RegisterHandlerFunc(ActionModeSelect, e.withView(func(v *viewport.Viewport) dispatcher.Result {
		return e.switchMode(mode.ModeSelect)
	}))
	d.RegisterHandlerFunc(ActionModeCommand, e.withView(func(v *viewport.Viewport) dispatcher.Result {
		return e.switchMode(mode.ModeCommand)
	}))
	d.RegisterHandlerFunc(ActionModeAppend, e.withView(e.append))
	d.RegisterHandlerFunc(ActionModeAppendEOL, e.withView(func(v *viewport.Viewport) dispatcher.Result {
		e.stickyJumpToEOL(v)
		return e.append(v)
	}))
	d.RegisterHandlerFunc(ActionModeInsertHome, e.withView(func(v *viewport.Viewport) dispatcher.Result {
		v.JumpToHome()
		return e.switchMode(mode.ModeInsert)
	}))

	d.RegisterHandlerFunc(ActionCursorUp, e.motion(input.DirUp))
	d.RegisterHandlerFunc(ActionCursorDown, e.motion(input.DirDown))
	d.RegisterHandlerFunc(ActionCursorLeft, e.motion(input.DirLeft))
	d.RegisterHandlerFunc(ActionCursorRight, e.motion(input.DirRight))
	d.RegisterHandlerFunc(ActionCursorHome, e.withView(func(v *viewport.Viewport) dispatcher.Result {
		v.JumpToHome()
		return dispatcher.Success()
	}))
	d.RegisterHandlerFunc(ActionCursorEOL, e.withView(func(v *viewport.Viewport) dispatcher.Result {
		e.stickyJumpToEOL(v)
		return dispatcher.Success()
	}))
	d.RegisterHandlerFunc(ActionCursorLastLine, e.withView(func(v *viewport.Viewport) dispatcher.Result {
		v.JumpToLastLine()
		return dispatcher.Success()
	}))
	d.RegisterHandlerFunc(ActionCursorNextLine, e.withView(e.nextLine))
	d.RegisterHandlerFunc(ActionCursorBack, e.withView(e.back))

	d.RegisterHandlerFunc(ActionInsertChar, e.withBuffer(e.insertChar))
	d.RegisterHandlerFunc(ActionDeleteForward, e.withBuffer(func(b *buffer.Buffer, v *viewport.Viewport, _ input.Action) dispatcher.Result {
		return e.removeChar(b, v, input.DirForward)
	}))
	d.RegisterHandlerFunc(ActionDeleteBackward, e.withBuffer(func(b *buffer.Buffer, v *viewport.Viewport, _ input.Action) dispatcher.Result {
		return e.removeChar(b, v, input.DirBackward)
	}))
	d.RegisterHandlerFunc(ActionLineBreak, e.withBuffer(e.lineBreak))
	d.RegisterHandlerFunc(ActionOpenBelow, e.withBuffer(func(b *buffer.Buffer, v *viewport.Viewport, _ input.Action) dispatcher.Result {
		return e.openLine(b, v, input.DirDown)
	}))
	d.RegisterHandlerFunc(ActionOpenAbove, e.withBuffer(func(b *buffer.Buffer, v *viewport.Viewport, _ input.Action) dispatcher.Result {
		return e.openLine(b, v, input.DirUp)
	}))
	d.RegisterHandlerFunc(ActionReplaceLine, e.withBuffer(e.replaceLine))

	d.RegisterHandlerFunc(ActionSave, e.withBuffer(e.save))
	d.RegisterHandlerFunc(ActionTabNext, func(input.Action) dispatcher.Result { return e.cycleTab(1) })
	d.RegisterHandlerFunc(ActionTabPrev, func(input.Action) dispatcher.Result { return e.cycleTab(-1) })

	d.RegisterHandlerFunc(ActionMenuOpen, func(input.Action) dispatcher.Result {
		e.PushOverlay(NewLeaderMenu(e.resolver))
		return dispatcher.Success()
	})
	d.RegisterHandlerFunc(ActionMenuClose, func(input.Action) dispatcher.Result {
		if _, ok := e.Overlay().(*LeaderMenu); ok {
			e.PopOverlay()
			return dispatcher.Success()
		}
		return dispatcher.NoOp()
	})
	d.RegisterHandlerFunc(ActionQuit, func(input.Action) dispatcher.Result {
		e.Quit()
		return dispatcher.Success()
	})

	d.RegisterHandlerFunc(ActionYank, e.withBuffer(e.yank))
}

func (e *Editor) withView(fn func(v *viewport.Viewport) dispatcher.Result) func(input.Action) dispatcher.Result {
	return func(input.Action) dispatcher.Result {
		v := e.View()
		if v == nil {
			return dispatcher.Failed(ErrNoTab)
		}
		return fn(v)
	}
}

func (e *Editor) withBuffer(fn bufferHandler) func(input.Action) dispatcher.Result {
	return func(action input.Action) dispatcher.Result {
		t := e.CurrentTab()
		b, err := e.Buffer(t)
		if err != nil {
			return dispatcher.Failed(err)
		}
		return fn(b, t.View, action)
	}
}

func (e *Editor) motion(dir input.Direction) func(input.Action) dispatcher.Result {
	return e.withView(func(v *viewport.Viewport) dispatcher.Result {
		v.MoveCursor(e.modes.Current(), dir)
		return dispatcher.Success()
	})
}

func (e *Editor) switchMode(name string) dispatcher.Result {
	if err := e.modes.Switch(name, e.View()); err != nil {
		return dispatcher.Failed(err)
	}
	return dispatcher.Success()
}

func (e *Editor) append(v *viewport.Viewport) dispatcher.Result {
	if r := e.switchMode(mode.ModeInsert); r.IsError() {
		return r
	}
	if !v.CursorPastEOL() {
		v.AdvanceInsertionCursor()
	}
	return dispatcher.Success()
}

// stickyJumpToEOL goes to the line end; Insert mode lands after the last
// character.
func (e *Editor) stickyJumpToEOL(v *viewport.Viewport) {
	v.StickyJumpToEOL()
	if e.modes.Is(mode.ModeInsert) {
		v.JumpPastEOL()
	}
}

func (e *Editor) nextLine(v *viewport.Viewport) dispatcher.Result {
	pos := v.Cursor()
	if pos.Line+1 >= v.LinesCount() {
		return dispatcher.NoOp()
	}
	v.Jump(buffer.Position{Line: pos.Line + 1})
	v.ClearStickToEOL()
	return dispatcher.Success()
}

// back steps left, wrapping to the end of the previous line.
func (e *Editor) back(v *viewport.Viewport) dispatcher.Result {
	pos := v.Cursor()
	m := e.modes.Current()
	switch {
	case pos.Column > 0:
		v.MoveCursor(m, input.DirLeft)
	case pos.Line > 0:
		v.MoveCursor(m, input.DirUp)
		v.JumpToEOL()
	default:
		return dispatcher.NoOp()
	}
	return dispatcher.Success()
}

func (e *Editor) insertChar(b *buffer.Buffer, v *viewport.Viewport, action input.Action) dispatcher.Result {
	if action.Args.Text == "" {
		return dispatcher.NoOp()
	}
	for _, r := range action.Args.Text {
		b.InsertChar(r, v.Cursor())
		v.AdvanceInsertionCursor()
	}
	return dispatcher.Success()
}

// removeChar deletes one character next to the cursor. In Insert mode it
// also deletes line breaks, joining lines. The sticky column follows the
// cursor whether or not anything was deleted.
func (e *Editor) removeChar(b *buffer.Buffer, v *viewport.Viewport, dir input.Direction) dispatcher.Result {
	defer v.RememberColumn()

	pos := v.Cursor()
	length, _ := b.LineLength(pos.Line)
	m := e.modes.Current()
	insert := m.Name() == mode.ModeInsert

	switch {
	case !insert && dir == input.DirForward && pos.Column < length:
		b.RemoveChar(pos)
		v.SnapToEOL()

	case !insert && dir == input.DirBackward && pos.Column > 0 && pos.Column < length:
		b.RemoveChar(buffer.Position{Line: pos.Line, Column: pos.Column - 1})
		v.MoveCursor(m, input.DirLeft)

	case insert && dir == input.DirForward && pos.Column < length:
		b.RemoveChar(pos)

	case insert && dir == input.DirForward && pos.Column == length && pos.Line+1 < b.LinesCount():
		b.JoinWithNextLine(pos.Line)

	case insert && dir == input.DirBackward && pos.Column > 0 && pos.Column <= length:
		b.RemoveChar(buffer.Position{Line: pos.Line, Column: pos.Column - 1})
		v.MoveCursor(m, input.DirLeft)

	case insert && dir == input.DirBackward && pos.Column == 0 && pos.Line > 0:
		// Land on the end of the previous line before the join renumbers it.
		v.MoveCursor(m, input.DirUp)
		v.JumpPastEOL()
		b.JoinWithNextLine(pos.Line - 1)

	default:
		return dispatcher.NoOp()
	}
	return dispatcher.Success()
}

func (e *Editor) lineBreak(b *buffer.Buffer, v *viewport.Viewport, _ input.Action) dispatcher.Result {
	pos := v.Cursor()
	b.SplitLine(pos)
	v.Jump(buffer.Position{Line: pos.Line + 1})
	return dispatcher.Success()
}

// openLine inserts an empty line below or above the cursor and starts
// Insert mode on it.
func (e *Editor) openLine(b *buffer.Buffer, v *viewport.Viewport, dir input.Direction) dispatcher.Result {
	line := v.Cursor().Line
	if dir == input.DirDown {
		line++
	}

	if b.LinesCount() == 0 {
		b.AddLine(0, "")
		b.AddLine(1, "")
	} else {
		b.AddLine(line, "")
	}

	if dir == input.DirDown {
		v.Jump(buffer.Position{Line: line})
	} else {
		v.JumpToHome()
	}
	return e.switchMode(mode.ModeInsert)
}

func (e *Editor) replaceLine(b *buffer.Buffer, v *viewport.Viewport, _ input.Action) dispatcher.Result {
	b.ClearLine(v.Cursor())
	v.SnapToEOL()
	return e.switchMode(mode.ModeInsert)
}

// save writes the buffer, or asks for a name first when it has none.
func (e *Editor) save(b *buffer.Buffer, _ *viewport.Viewport, _ input.Action) dispatcher.Result {
	name, named := b.Name()
	if !named {
		e.PushOverlay(NewNamePrompt(e.CurrentTab().Handle))
		return dispatcher.NoOp()
	}
	if err := b.Save(); err != nil {
		return dispatcher.Failed(err)
	}
	return dispatcher.SuccessWithMessage(savedMessage(name, b.LinesCount()))
}

func savedMessage(name string, lines int) string {
	return fmt.Sprintf("%q written, %d lines", name, lines)
}

func (e *Editor) cycleTab(step int) dispatcher.Result {
	n := len(e.tabs)
	if n == 0 {
		return dispatcher.Failed(ErrNoTab)
	}
	e.current = ((e.current+step)%n + n) % n
	return dispatcher.Success()
}

// yank copies the selection to the clipboard and returns to Normal mode.
func (e *Editor) yank(b *buffer.Buffer, _ *viewport.Viewport, _ input.Action) dispatcher.Result {
	sel, ok := e.modes.Selection()
	if !ok {
		return dispatcher.Failed(ErrNoSelection)
	}
	text := sel.Text(b.Lines())
	if err := e.clipboard.WriteAll(text); err != nil {
		return dispatcher.Failed(fmt.Errorf("yank: %w", err))
	}
	if r := e.switchMode(mode.ModeNormal); r.IsError() {
		return r
	}
	return dispatcher.SuccessWithMessage(fmt.Sprintf("%d characters yanked", utf8.RuneCountInString(text)))
}
