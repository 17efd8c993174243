package board

// Snapshot is a read-only view of the piece collection, taken at a single
// point in time. Callers may hold it for the duration of one event handler;
// it never changes underneath them.
type Snapshot []Piece

// PieceAt returns the piece at the given coordinate, if any.
func (s Snapshot) PieceAt(c Coord) (Piece, bool) {
	for _, p := range s {
		if p.Pos == c {
			return p, true
		}
	}
	return Piece{Kind: NoKind}, false
}

// Occupied returns true if any piece sits on the given coordinate.
func (s Snapshot) Occupied(c Coord) bool {
	_, ok := s.PieceAt(c)
	return ok
}

// Board owns the canonical piece collection. It is the sole mutator of
// board state; everything else reads snapshots.
type Board struct {
	pieces []Piece
}

// New creates a board holding the given pieces. A piece placed on an
// already occupied or off-board coordinate is dropped, preserving the
// one-piece-per-square invariant from the start.
func New(pieces ...Piece) *Board {
	b := &Board{pieces: make([]Piece, 0, len(pieces))}
	for _, p := range pieces {
		if !p.Pos.IsValid() || !p.Kind.IsValid() {
			continue
		}
		if Snapshot(b.pieces).Occupied(p.Pos) {
			continue
		}
		b.pieces = append(b.pieces, p)
	}
	return b
}

// Snapshot returns a copy of the current piece collection.
func (b *Board) Snapshot() Snapshot {
	snap := make(Snapshot, len(b.pieces))
	copy(snap, b.pieces)
	return snap
}

// CommitMove relocates the piece at origin to destination. The piece is
// replaced wholesale: the new collection is the old one with exactly that
// member's position changed. If no piece sits at origin the board is left
// unchanged and false is returned.
//
// CommitMove does not check legality; callers revalidate with IsLegalMove
// immediately before committing.
func (b *Board) CommitMove(origin, destination Coord) bool {
	moved := false
	next := make([]Piece, 0, len(b.pieces))
	for _, p := range b.pieces {
		if !moved && p.Pos == origin {
			next = append(next, Piece{Kind: p.Kind, Pos: destination})
			moved = true
			continue
		}
		next = append(next, p)
	}
	if !moved {
		return false
	}
	b.pieces = next
	return true
}
