package mode

import (
	"errors"

	"github.com/dshills/linewise/internal/engine/buffer"
)

// Mode errors.
var (
	// ErrUnknownMode indicates a switch to a mode that was never registered.
	ErrUnknownMode = errors.New("mode: unknown mode")

	// ErrNotImplemented is returned for any input in Command mode.
	ErrNotImplemented = errors.New("mode: command input not implemented")
)

// Standard mode names.
const (
	ModeNormal  = "normal"
	ModeInsert  = "insert"
	ModeSelect  = "select"
	ModeCommand = "command"
)

// Mode defines the interface for editor modes.
type Mode interface {
	// Name returns the unique mode identifier (e.g., "normal", "insert").
	Name() string

	// DisplayName returns a human-readable name for the status line.
	DisplayName() string

	// CursorStyle returns the cursor style for this mode.
	CursorStyle() CursorStyle

	// Enter is called when entering this mode.
	Enter(ctx *Context) error

	// Exit is called when leaving this mode.
	Exit(ctx *Context) error
}

// ViewState is the slice of the viewport that mode transitions touch.
type ViewState interface {
	// Cursor returns the current cursor position.
	Cursor() buffer.Position

	// ClearStickToEOL stops the cursor from following line ends.
	ClearStickToEOL()

	// SnapToEOL moves a cursor past the end of its line onto the last
	// character.
	SnapToEOL()

	// RememberColumn records the cursor column as the column vertical
	// motion tries to return to.
	RememberColumn()
}

// Context provides information during mode transitions.
type Context struct {
	// PreviousMode is the mode being transitioned from (for Enter).
	PreviousMode string

	// NextMode is the mode being transitioned to (for Exit).
	NextMode string

	// View is the active viewport. It may be nil.
	View ViewState
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline

	// CursorHidden hides the cursor.
	CursorHidden
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	case CursorHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Defaults returns the four standard modes.
func Defaults() []Mode {
	return []Mode{NewNormal(), NewInsert(), NewSelect(), NewCommand()}
}
