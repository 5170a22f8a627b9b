// Package cursor provides the selection used by Select mode.
//
// A Selection has a fixed end, set where Select mode was entered, and a
// moving end that follows the cursor on every motion. Either end may come
// first in the buffer; Range orders them.
//
//	sel := cursor.NewSelection(buffer.Position{Line: 2, Column: 4})
//	sel = sel.MoveTo(buffer.Position{Line: 0, Column: 1})
//	start, end := sel.Range() // (0:1), (2:4)
//
// Selection is an immutable value type.
package cursor
