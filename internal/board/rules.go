package board

// IsLegalMove reports whether a piece of the given kind may move from
// origin to destination under current occupancy. Pure and deterministic;
// the snapshot is never mutated.
//
// The occupancy check runs first and is kind-independent: landing on an
// occupied square is always disallowed (captures are not modeled). Board
// bounds are not checked here; callers only ever offer on-board
// destinations.
func IsLegalMove(origin, destination Coord, kind Kind, snap Snapshot) bool {
	if snap.Occupied(destination) {
		return false
	}

	rowDelta, colDelta := origin.Deltas(destination)

	switch kind {
	case King:
		// A zero-distance move passes this rule. The occupancy check above
		// looks at the destination only, so a king dropped on its own square
		// would be accepted here; drop targets reject the origin square
		// before it gets this far.
		return rowDelta <= 1 && colDelta <= 1
	case Pawn:
		// One square toward decreasing row, never sideways or backward.
		return colDelta == 0 && destination.Row-origin.Row == -1
	default:
		return false
	}
}
