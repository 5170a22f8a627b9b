package mode

import (
	"fmt"
	"sort"

	"github.com/dshills/linewise/internal/engine/buffer"
	"github.com/dshills/linewise/internal/engine/cursor"
)

// Manager manages editor modes and coordinates mode transitions.
type Manager struct {
	// modes holds all registered modes by name.
	modes map[string]Mode

	// current is the active mode.
	current Mode

	// previous is the mode before the current one.
	previous Mode

	// callbacks are notified on mode changes.
	callbacks []ModeChangeCallback
}

// ModeChangeCallback is called when the mode changes.
type ModeChangeCallback func(from, to Mode)

// NewManager creates a new mode manager.
func NewManager() *Manager {
	return &Manager{
		modes: make(map[string]Mode),
	}
}

// NewDefaultManager creates a manager with the standard modes registered
// and Normal mode active.
func NewDefaultManager() *Manager {
	m := NewManager()
	for _, md := range Defaults() {
		m.Register(md)
	}
	if err := m.SetInitialMode(ModeNormal, nil); err != nil {
		panic(err)
	}
	return m
}

// Register adds a mode to the manager.
// If a mode with the same name exists, it is replaced.
func (m *Manager) Register(mode Mode) {
	m.modes[mode.Name()] = mode
}

// Get returns a mode by name, or nil if not found.
func (m *Manager) Get(name string) Mode {
	return m.modes[name]
}

// Modes returns the sorted names of all registered modes.
func (m *Manager) Modes() []string {
	names := make([]string, 0, len(m.modes))
	for name := range m.modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Current returns the current mode, or nil if none is set.
func (m *Manager) Current() Mode {
	return m.current
}

// CurrentName returns the name of the current mode.
func (m *Manager) CurrentName() string {
	if m.current == nil {
		return ""
	}
	return m.current.Name()
}

// Previous returns the previous mode, or nil.
func (m *Manager) Previous() Mode {
	return m.previous
}

// Is returns true if the current mode matches the given name.
func (m *Manager) Is(name string) bool {
	return m.current != nil && m.current.Name() == name
}

// SetInitialMode makes name the current mode, calling only its Enter.
func (m *Manager) SetInitialMode(name string, view ViewState) error {
	mode, ok := m.modes[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMode, name)
	}
	if err := mode.Enter(&Context{View: view}); err != nil {
		return fmt.Errorf("enter %s: %w", name, err)
	}
	m.current = mode
	return nil
}

// Switch changes to a different mode, running the current mode's Exit and
// the new mode's Enter against view. Switching to the current mode is a
// no-op.
func (m *Manager) Switch(name string, view ViewState) error {
	newMode, ok := m.modes[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMode, name)
	}

	oldMode := m.current
	if oldMode == newMode {
		return nil
	}

	ctx := &Context{View: view}
	if oldMode != nil {
		ctx.NextMode = newMode.Name()
		if err := oldMode.Exit(ctx); err != nil {
			return fmt.Errorf("exit %s: %w", oldMode.Name(), err)
		}
		ctx.PreviousMode = oldMode.Name()
	}
	ctx.NextMode = ""

	if err := newMode.Enter(ctx); err != nil {
		return fmt.Errorf("enter %s: %w", newMode.Name(), err)
	}

	m.previous = oldMode
	m.current = newMode

	for _, cb := range m.callbacks {
		if cb != nil {
			cb(oldMode, newMode)
		}
	}
	return nil
}

// OnModeChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Manager) OnModeChange(callback ModeChangeCallback) func() {
	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}

// Selection returns the active selection when Select mode is current.
func (m *Manager) Selection() (cursor.Selection, bool) {
	sel, ok := m.current.(*Select)
	if !ok {
		return cursor.Selection{}, false
	}
	return sel.Selection()
}

// UpdateSelection moves the selection's moving end to pos.
// It does nothing outside Select mode.
func (m *Manager) UpdateSelection(pos buffer.Position) {
	sel, ok := m.current.(*Select)
	if !ok || !sel.active {
		return
	}
	sel.selection = sel.selection.MoveTo(pos)
}
