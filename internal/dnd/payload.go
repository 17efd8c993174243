// Package dnd implements the drag-and-drop interaction layer: the
// registration contract with the drag-sensing side, the per-gesture and
// per-square state machines, and the global drop monitor that commits
// legal moves to the board store.
//
// Everything runs synchronously on the caller's goroutine. Events are
// delivered one at a time and fully processed before the next, so the
// board snapshot read by a handler is consistent for that handler's
// entire execution. Malformed input never raises an error; it degrades
// to a silent no-op.
package dnd

import "github.com/sijan67/chessboard-pragmatic-dnd/internal/board"

// Payload is the identity of the piece being dragged, captured at drag
// start and immutable for the duration of the gesture.
type Payload struct {
	Position board.Coord
	Kind     board.Kind
}

// Valid returns true for a well-formed payload: an on-board coordinate
// carrying a recognized piece kind. Payloads from foreign or stale drag
// sources fail this check and are ignored everywhere.
func (p Payload) Valid() bool {
	return p.Position.IsValid() && p.Kind.IsValid()
}
