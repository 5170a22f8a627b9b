package mode

import (
	"fmt"

	"github.com/dshills/linewise/internal/engine/cursor"
	"github.com/dshills/linewise/internal/input/key"
)

// Normal is the default mode. Keys are commands rather than text.
type Normal struct{}

// NewNormal creates a new normal mode instance.
func NewNormal() *Normal { return &Normal{} }

// Name returns the mode identifier.
func (m *Normal) Name() string { return ModeNormal }

// DisplayName returns the human-readable mode name.
func (m *Normal) DisplayName() string { return "NORMAL" }

// CursorStyle returns the cursor style for normal mode.
func (m *Normal) CursorStyle() CursorStyle { return CursorBlock }

// Enter is called when entering normal mode.
func (m *Normal) Enter(ctx *Context) error { return nil }

// Exit is called when leaving normal mode.
func (m *Normal) Exit(ctx *Context) error { return nil }

// Insert types printable keys into the buffer. The cursor may sit one
// column past the end of the line.
type Insert struct{}

// NewInsert creates a new insert mode instance.
func NewInsert() *Insert { return &Insert{} }

// Name returns the mode identifier.
func (m *Insert) Name() string { return ModeInsert }

// DisplayName returns the human-readable mode name.
func (m *Insert) DisplayName() string { return "INSERT" }

// CursorStyle returns the cursor style for insert mode.
func (m *Insert) CursorStyle() CursorStyle { return CursorBar }

// Enter clears stick-to-EOL so typed text does not drag the cursor.
func (m *Insert) Enter(ctx *Context) error {
	if ctx.View != nil {
		ctx.View.ClearStickToEOL()
	}
	return nil
}

// Exit pulls a past-EOL cursor back onto the line.
func (m *Insert) Exit(ctx *Context) error {
	if ctx.View != nil {
		ctx.View.SnapToEOL()
		ctx.View.RememberColumn()
	}
	return nil
}

// Select tracks a selection from the position where the mode was entered
// to the cursor.
type Select struct {
	selection cursor.Selection
	active    bool
}

// NewSelect creates a new select mode instance.
func NewSelect() *Select { return &Select{} }

// Name returns the mode identifier.
func (m *Select) Name() string { return ModeSelect }

// DisplayName returns the human-readable mode name.
func (m *Select) DisplayName() string { return "SELECT" }

// CursorStyle returns the cursor style for select mode.
func (m *Select) CursorStyle() CursorStyle { return CursorBlock }

// Enter anchors a new selection at the cursor.
func (m *Select) Enter(ctx *Context) error {
	if ctx.View != nil {
		m.selection = cursor.NewSelection(ctx.View.Cursor())
	} else {
		m.selection = cursor.Selection{}
	}
	m.active = true
	return nil
}

// Exit discards the selection.
func (m *Select) Exit(ctx *Context) error {
	m.selection = cursor.Selection{}
	m.active = false
	return nil
}

// Selection returns the current selection, if the mode is active.
func (m *Select) Selection() (cursor.Selection, bool) {
	return m.selection, m.active
}

// Command is reserved for a command line that is not implemented.
type Command struct{}

// NewCommand creates a new command mode instance.
func NewCommand() *Command { return &Command{} }

// Name returns the mode identifier.
func (m *Command) Name() string { return ModeCommand }

// DisplayName returns the human-readable mode name.
func (m *Command) DisplayName() string { return "COMMAND" }

// CursorStyle returns the cursor style for command mode.
func (m *Command) CursorStyle() CursorStyle { return CursorBlock }

// Enter is called when entering command mode.
func (m *Command) Enter(ctx *Context) error { return nil }

// Exit is called when leaving command mode.
func (m *Command) Exit(ctx *Context) error { return nil }

// HandleKey rejects every key.
func (m *Command) HandleKey(ev key.Event) error {
	return fmt.Errorf("%w: %s", ErrNotImplemented, ev)
}
