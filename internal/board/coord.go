// Package board implements the 8x8 board model: coordinates, pieces,
// the committed piece collection and move legality.
package board

import "fmt"

// Size is the number of rows and columns on the board.
const Size = 8

// Coord identifies a square by (row, column), both zero-indexed from the
// top-left corner. Equality is component-wise.
type Coord struct {
	Row int
	Col int
}

// NewCoord creates a coordinate from row and column.
func NewCoord(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// IsValid returns true if the coordinate lies on the board.
func (c Coord) IsValid() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// String returns the coordinate in "(row,col)" form.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Deltas returns the absolute row and column distance to other.
func (c Coord) Deltas(other Coord) (rowDelta, colDelta int) {
	return abs(c.Row - other.Row), abs(c.Col - other.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
