package editor

import (
	"fmt"
	"sort"

	"github.com/dshills/linewise/internal/input/keymap"
)

// Bind adds a user binding. It overrides any default binding for the
// same keys in that mode.
func (e *Editor) Bind(modeName, keys, action string) error {
	if err := e.checkBinding(modeName, action); err != nil {
		return err
	}
	km := keymap.NewKeymap("user-"+modeName).
		ForMode(modeName).
		WithSource("user").
		WithPriority(keymap.UserPriority).
		Add(keys, action)
	return e.resolver.Register(km)
}

// BindAll adds a mode -> keys -> action table of user bindings, as read
// from the configuration file. Nothing is registered if any entry is
// invalid.
func (e *Editor) BindAll(source string, table map[string]map[string]string) error {
	modes := make([]string, 0, len(table))
	for m := range table {
		modes = append(modes, m)
	}
	sort.Strings(modes)
	for _, m := range modes {
		for _, action := range table[m] {
			if err := e.checkBinding(m, action); err != nil {
				return err
			}
		}
	}

	keymaps := keymap.FromConfig(source, table)
	for _, km := range keymaps {
		if err := km.Validate(); err != nil {
			return err
		}
	}
	return e.resolver.RegisterAll(keymaps)
}

func (e *Editor) checkBinding(modeName, action string) error {
	if modeName != keymap.ModeLeader && e.modes.Get(modeName) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownMode, modeName)
	}
	if !e.dispatcher.Registry().Has(action) {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	return nil
}
