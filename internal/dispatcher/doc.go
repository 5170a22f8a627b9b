// Package dispatcher routes input actions to handlers and coordinates execution.
//
// The dispatcher is the hub between key resolution and editor state. The
// editor registers one handler per action name; the keymap resolver turns
// keys into actions; Dispatch runs the matching handler.
//
// # Handler Execution
//
// When an action is dispatched:
//
//  1. Pre-dispatch hooks are called (can modify or cancel the action)
//  2. The registry finds the handler for the action name
//  3. The handler is executed (with optional panic recovery)
//  4. Post-dispatch hooks are called
//  5. Metrics are recorded (if enabled)
//
// # Handlers
//
// Handlers implement the Handler interface, or are plain functions:
//
//	d.RegisterHandlerFunc("cursor.down", func(a input.Action) dispatcher.Result {
//	    view.MoveCursor(m, input.DirDown)
//	    return dispatcher.Success()
//	})
//
// A missing handler yields a StatusError result wrapping ErrNoHandler. A
// panicking handler yields a StatusError result wrapping ErrPanic when
// RecoverFromPanic is set.
//
// The dispatcher is used from the editor's single event loop and is not
// safe for concurrent use.
package dispatcher
