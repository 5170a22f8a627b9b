// Package mode provides the modal editing state machine.
//
// Four modes are defined:
//   - Normal mode: navigation and single-key commands
//   - Insert mode: text entry
//   - Select mode: character-wise selection following the cursor
//   - Command mode: reserved; every input fails with ErrNotImplemented
//
// # Mode Lifecycle
//
//	┌─────────┐    Enter()    ┌─────────┐
//	│ Mode A  │ ───────────▶ │ Mode B  │
//	└─────────┘              └─────────┘
//	     │                        │
//	     │  Exit()                │
//	     ◀────────────────────────┘
//
// When switching modes:
// 1. Current mode's Exit() is called
// 2. New mode's Enter() is called
// 3. Mode change callbacks are notified
//
// Enter and Exit apply cursor side effects through the ViewState in the
// transition Context: leaving Insert mode snaps a cursor that sits past
// the end of its line back onto the last character, and entering Select
// mode anchors a new selection at the cursor.
//
// The Manager is driven from the editor's single event loop and is not
// safe for concurrent use.
package mode
