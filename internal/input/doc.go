// Package input defines the actions that key presses resolve to.
//
// Key events arrive from the renderer backend as key.Event values. The
// keymap package resolves an event against the current mode's bindings
// and yields an Action, which the editor dispatches by name:
//
//	ev := key.NewRuneEvent('x', key.ModNone)
//	action, err := resolver.Resolve(ev, "normal")
//	// action.Name == "edit.deleteForward"
//
// Sub-packages:
//
//   - key: key event types and key sequence parsing
//   - mode: the Normal, Insert, Select and Command modes and their manager
//   - keymap: per-mode bindings and the resolver
package input
