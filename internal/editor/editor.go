// Package editor applies resolved actions to buffers, viewports and the
// mode state machine.
//
// Every key press is turned into an input.Action by the keymap resolver
// (or by the active overlay) and executed through a dispatcher that has
// one handler registered per action name. The editor is single-threaded:
// each action is a complete state transition before the next key is read.
package editor

import (
	"errors"
	"fmt"

	"github.com/dshills/linewise/internal/dispatcher"
	"github.com/dshills/linewise/internal/engine/buffer"
	"github.com/dshills/linewise/internal/engine/cursor"
	"github.com/dshills/linewise/internal/input"
	"github.com/dshills/linewise/internal/input/key"
	"github.com/dshills/linewise/internal/input/keymap"
	"github.com/dshills/linewise/internal/input/mode"
	"github.com/dshills/linewise/internal/renderer/viewport"
)

// Tab is one open buffer and the window onto it.
type Tab struct {
	Handle buffer.Handle
	View   *viewport.Viewport
}

// Config configures an editor.
type Config struct {
	// Resolver maps keys to actions. Nil means the default keymaps.
	Resolver *keymap.Resolver

	// Clipboard receives yanked text. Nil means the system clipboard.
	Clipboard Clipboard

	// LogFunc receives debug output. Nil disables it.
	LogFunc func(format string, args ...any)

	// EnableMetrics turns on dispatch metrics.
	EnableMetrics bool
}

// Editor owns the open buffers, their tabs and all input state.
type Editor struct {
	store    *buffer.Store
	tabs     []*Tab
	current  int
	modes    *mode.Manager
	overlays []Overlay

	resolver   *keymap.Resolver
	dispatcher *dispatcher.Dispatcher
	clipboard  Clipboard
	logf       func(format string, args ...any)

	status string
	active bool
}

// New creates an editor with one tab per buffer. With no buffers it
// opens a single untitled one.
func New(buffers []*buffer.Buffer, cfg Config) (*Editor, error) {
	e := &Editor{
		store:     buffer.NewStore(),
		modes:     mode.NewDefaultManager(),
		resolver:  cfg.Resolver,
		clipboard: cfg.Clipboard,
		logf:      cfg.LogFunc,
		active:    true,
	}

	if e.resolver == nil {
		e.resolver = keymap.NewResolver()
		if err := keymap.LoadDefaults(e.resolver); err != nil {
			return nil, fmt.Errorf("load default keymaps: %w", err)
		}
	}
	if e.clipboard == nil {
		e.clipboard = SystemClipboard{}
	}
	if e.logf == nil {
		e.logf = func(string, ...any) {}
	}

	dcfg := dispatcher.DefaultConfig()
	if cfg.EnableMetrics {
		dcfg = dcfg.WithMetrics()
	}
	e.dispatcher = dispatcher.New(dcfg)
	if cfg.LogFunc != nil {
		hook := dispatcher.NewLoggingHook(cfg.LogFunc)
		e.dispatcher.RegisterPreHook(hook)
		e.dispatcher.RegisterPostHook(hook)
	}
	e.dispatcher.RegisterPostHook(dispatcher.PostDispatchFunc(e.trackSelection))
	e.registerHandlers()

	e.modes.OnModeChange(func(from, to mode.Mode) {
		e.logf("mode %s -> %s", from.Name(), to.Name())
	})

	if len(buffers) == 0 {
		buffers = []*buffer.Buffer{buffer.Untitled()}
	}
	for _, b := range buffers {
		e.AddBuffer(b)
	}
	return e, nil
}

// AddBuffer opens b in a new tab after the existing ones.
func (e *Editor) AddBuffer(b *buffer.Buffer) *Tab {
	h := e.store.Add(b)
	tab := &Tab{Handle: h, View: viewport.New(e.store.Reader(h))}
	e.tabs = append(e.tabs, tab)
	return tab
}

// Tabs returns the open tabs in display order.
func (e *Editor) Tabs() []*Tab { return e.tabs }

// CurrentTabIndex returns the index of the visible tab.
func (e *Editor) CurrentTabIndex() int { return e.current }

// CurrentTab returns the visible tab.
func (e *Editor) CurrentTab() *Tab {
	if len(e.tabs) == 0 {
		return nil
	}
	return e.tabs[e.current]
}

// View returns the viewport of the visible tab.
func (e *Editor) View() *viewport.Viewport {
	if t := e.CurrentTab(); t != nil {
		return t.View
	}
	return nil
}

// Buffer returns the buffer behind a tab.
func (e *Editor) Buffer(t *Tab) (*buffer.Buffer, error) {
	if t == nil {
		return nil, ErrNoTab
	}
	return e.store.Get(t.Handle)
}

// CurrentBuffer returns the buffer of the visible tab.
func (e *Editor) CurrentBuffer() (*buffer.Buffer, error) {
	return e.Buffer(e.CurrentTab())
}

// TabTitle returns the name shown for a tab.
func (e *Editor) TabTitle(t *Tab) string {
	b, err := e.Buffer(t)
	if err != nil {
		return "Untitled"
	}
	if name, ok := b.Name(); ok {
		return name
	}
	return "Untitled"
}

// Mode returns the current mode.
func (e *Editor) Mode() mode.Mode { return e.modes.Current() }

// Modes returns the mode manager.
func (e *Editor) Modes() *mode.Manager { return e.modes }

// Selection returns the active selection in Select mode.
func (e *Editor) Selection() (cursor.Selection, bool) { return e.modes.Selection() }

// Resolver returns the keymap resolver.
func (e *Editor) Resolver() *keymap.Resolver { return e.resolver }

// Dispatcher returns the action dispatcher.
func (e *Editor) Dispatcher() *dispatcher.Dispatcher { return e.dispatcher }

// Status returns the message for the status bar.
func (e *Editor) Status() string { return e.status }

// SetStatus sets the message for the status bar.
func (e *Editor) SetStatus(msg string) { e.status = msg }

// IsActive returns false once the editor has been asked to quit.
func (e *Editor) IsActive() bool { return e.active }

// Quit stops the editor.
func (e *Editor) Quit() { e.active = false }

// HandleKey routes one key press. An active overlay receives every key.
// Otherwise the key is resolved against the current mode; unbound keys
// are ignored, except in Command mode where they fail with
// ErrNotImplemented.
func (e *Editor) HandleKey(ev key.Event) error {
	e.status = ""

	if ov := e.Overlay(); ov != nil {
		cb, done := ov.HandleKey(ev)
		if done {
			e.PopOverlay()
		}
		if cb != nil {
			return e.report(cb(e))
		}
		return nil
	}

	action, err := e.resolver.Resolve(ev, e.modes.CurrentName())
	if errors.Is(err, keymap.ErrUnbound) {
		if cmd, ok := e.modes.Current().(*mode.Command); ok {
			return e.report(cmd.HandleKey(ev))
		}
		return nil
	}
	if err != nil {
		return e.report(err)
	}
	return e.Execute(action)
}

// Execute dispatches an action and records its message or error in the
// status bar.
func (e *Editor) Execute(action input.Action) error {
	result := e.dispatcher.Dispatch(action)
	if result.IsError() {
		return e.report(result.Err)
	}
	if result.Message != "" {
		e.status = result.Message
	}
	return nil
}

func (e *Editor) report(err error) error {
	if err != nil {
		e.status = err.Error()
	}
	return err
}

// trackSelection keeps the moving end of the selection on the cursor.
func (e *Editor) trackSelection(_ *input.Action, _ *dispatcher.Result) {
	if !e.modes.Is(mode.ModeSelect) {
		return
	}
	if v := e.View(); v != nil {
		e.modes.UpdateSelection(v.Cursor())
	}
}

// Overlay returns the topmost overlay, or nil.
func (e *Editor) Overlay() Overlay {
	if len(e.overlays) == 0 {
		return nil
	}
	return e.overlays[len(e.overlays)-1]
}

// PushOverlay puts ov on top of the overlay stack.
func (e *Editor) PushOverlay(ov Overlay) {
	e.overlays = append(e.overlays, ov)
}

// PopOverlay removes the topmost overlay.
func (e *Editor) PopOverlay() Overlay {
	if len(e.overlays) == 0 {
		return nil
	}
	ov := e.overlays[len(e.overlays)-1]
	e.overlays = e.overlays[:len(e.overlays)-1]
	return ov
}

// Overlays returns the overlay stack, bottom first.
func (e *Editor) Overlays() []Overlay { return e.overlays }
