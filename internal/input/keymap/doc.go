// Package keymap maps key presses to editor actions.
//
// A Keymap is a named set of bindings for one mode. The Resolver indexes
// every registered keymap by mode and canonical key spec, so a binding
// written as "Ctrl+S" matches the same key as "<C-s>".
//
// # Binding Precedence
//
// When two keymaps bind the same key in the same mode:
//  1. Priority field (higher wins)
//  2. Registration order (later wins)
//
// Default keymaps register at priority 0. Keymaps built from the user's
// configuration and the init script register above that.
//
// # Usage
//
//	r := keymap.NewResolver()
//	if err := keymap.LoadDefaults(r); err != nil {
//	    return err
//	}
//
//	action, err := r.Resolve(ev, mode.ModeNormal)
//	if errors.Is(err, keymap.ErrUnbound) {
//	    // ignore the key
//	}
//
// In Insert mode, printable characters with no binding resolve to
// edit.insertChar carrying the character.
package keymap
