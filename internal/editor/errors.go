package editor

import (
	"errors"

	"github.com/dshills/linewise/internal/input/mode"
)

// Editor errors.
var (
	// ErrNotImplemented is returned for input typed in Command mode.
	ErrNotImplemented = mode.ErrNotImplemented

	// ErrNoTab indicates the editor has no open tab.
	ErrNoTab = errors.New("editor: no open tab")

	// ErrClipboardUnavailable indicates no system clipboard utility exists.
	ErrClipboardUnavailable = errors.New("editor: clipboard unavailable")

	// ErrNoSelection indicates a selection action outside Select mode.
	ErrNoSelection = errors.New("editor: no active selection")
)

var (
	// ErrUnknownMode indicates a binding for a mode that does not exist.
	ErrUnknownMode = errors.New("editor: unknown mode")

	// ErrUnknownAction indicates a binding to an action with no handler.
	ErrUnknownAction = errors.New("editor: unknown action")

	// ErrIsDirectory indicates a directory was given as a file name.
	ErrIsDirectory = errors.New("editor: is a directory")
)
