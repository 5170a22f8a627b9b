package keymap

import (
	"sort"
)

// UserPriority is the priority of keymaps built from configuration.
const UserPriority = 10

// FromConfig builds one keymap per mode from a mode -> key -> action table,
// as found under [keymap] in the configuration file. Modes and keys are
// sorted so the result is deterministic.
func FromConfig(source string, table map[string]map[string]string) []*Keymap {
	modes := make([]string, 0, len(table))
	for m := range table {
		modes = append(modes, m)
	}
	sort.Strings(modes)

	keymaps := make([]*Keymap, 0, len(modes))
	for _, m := range modes {
		km := NewKeymap(source + "-" + m).
			ForMode(m).
			WithSource(source).
			WithPriority(UserPriority)

		keys := make([]string, 0, len(table[m]))
		for k := range table[m] {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			km.Add(k, table[m][k])
		}
		keymaps = append(keymaps, km)
	}
	return keymaps
}

// RegisterAll registers each keymap, stopping at the first error.
func (r *Resolver) RegisterAll(keymaps []*Keymap) error {
	for _, km := range keymaps {
		if err := r.Register(km); err != nil {
			return err
		}
	}
	return nil
}
