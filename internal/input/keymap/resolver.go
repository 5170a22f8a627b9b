package keymap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/linewise/internal/input"
	"github.com/dshills/linewise/internal/input/key"
	"github.com/dshills/linewise/internal/input/mode"
)

// Keymap errors.
var (
	// ErrUnbound indicates the key has no binding in the mode.
	ErrUnbound = errors.New("keymap: key not bound")

	// ErrInvalidBinding indicates a binding that cannot be registered.
	ErrInvalidBinding = errors.New("keymap: invalid binding")
)

// ActionInsertChar is produced for unbound printable keys in Insert mode.
const ActionInsertChar = "edit.insertChar"

// entry is an indexed binding.
type entry struct {
	binding  Binding
	priority int
}

// Resolver indexes bindings by mode and canonical key spec.
type Resolver struct {
	byMode map[string]map[string]entry
}

// NewResolver creates an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{byMode: make(map[string]map[string]entry)}
}

// Register indexes every binding of km. A binding replaces an existing one
// for the same key unless the existing one has a higher priority.
func (r *Resolver) Register(km *Keymap) error {
	if km == nil {
		return fmt.Errorf("%w: nil keymap", ErrInvalidBinding)
	}
	if err := km.Validate(); err != nil {
		return fmt.Errorf("keymap %q: %w", km.Name, err)
	}

	bindings := r.byMode[km.Mode]
	if bindings == nil {
		bindings = make(map[string]entry)
		r.byMode[km.Mode] = bindings
	}

	for _, b := range km.Bindings {
		// Validate has already parsed every key.
		spec, _ := key.Normalize(b.Keys)
		if old, ok := bindings[spec]; ok && old.priority > km.Priority {
			continue
		}
		bindings[spec] = entry{binding: b, priority: km.Priority}
	}
	return nil
}

// Lookup returns the binding for ev in modeName.
func (r *Resolver) Lookup(ev key.Event, modeName string) (Binding, bool) {
	e, ok := r.byMode[modeName][ev.Spec()]
	return e.binding, ok
}

// Resolve turns a key event into an action for modeName. It returns
// ErrUnbound when nothing matches.
func (r *Resolver) Resolve(ev key.Event, modeName string) (input.Action, error) {
	if b, ok := r.Lookup(ev, modeName); ok {
		action := input.Action{Name: b.Action, Source: input.SourceKeyboard}
		if len(b.Args) > 0 {
			action.Args.Extra = b.Args
		}
		return action, nil
	}

	if modeName == mode.ModeInsert && ev.IsChar() {
		return input.Action{
			Name:   ActionInsertChar,
			Args:   input.ActionArgs{Text: string(ev.Rune)},
			Source: input.SourceKeyboard,
		}, nil
	}

	return input.Action{}, fmt.Errorf("%w: %s in %s mode", ErrUnbound, ev, modeName)
}

// Bindings returns the bindings of modeName ordered by key spec.
func (r *Resolver) Bindings(modeName string) []Binding {
	bindings := r.byMode[modeName]
	specs := make([]string, 0, len(bindings))
	for spec := range bindings {
		specs = append(specs, spec)
	}
	sort.Strings(specs)

	out := make([]Binding, 0, len(specs))
	for _, spec := range specs {
		out = append(out, bindings[spec].binding)
	}
	return out
}

// Modes returns the sorted names of modes with at least one binding.
func (r *Resolver) Modes() []string {
	names := make([]string, 0, len(r.byMode))
	for name := range r.byMode {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
