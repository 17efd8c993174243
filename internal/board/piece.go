package board

import (
	"fmt"
	"strings"
)

// Kind represents the type of a piece. The set is closed: movement rules
// switch exhaustively over it and treat anything else as illegal.
type Kind uint8

const (
	King Kind = iota
	Pawn
	NoKind Kind = 2
)

// IsValid returns true for a recognized piece kind.
func (k Kind) IsValid() bool {
	return k < NoKind
}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case King:
		return "King"
	case Pawn:
		return "Pawn"
	default:
		return "None"
	}
}

// ParseKind converts a kind name (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "king":
		return King, nil
	case "pawn":
		return Pawn, nil
	default:
		return NoKind, fmt.Errorf("unknown piece kind: %q", s)
	}
}

// Piece is a piece kind placed at a coordinate.
type Piece struct {
	Kind Kind
	Pos  Coord
}

// String returns e.g. "King(3,2)".
func (p Piece) String() string {
	return p.Kind.String() + p.Pos.String()
}
