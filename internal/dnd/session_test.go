package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sijan67/chessboard-pragmatic-dnd/internal/board"
)

func kingPawnSnapshot() board.Snapshot {
	return board.New(
		board.Piece{Kind: board.King, Pos: board.NewCoord(3, 2)},
		board.Piece{Kind: board.Pawn, Pos: board.NewCoord(1, 6)},
	).Snapshot()
}

func TestSession(t *testing.T) {
	t.Run("starts with a well-formed payload", func(t *testing.T) {
		s := &Session{}
		require.False(t, s.Dragging())

		p := Payload{Position: board.NewCoord(3, 2), Kind: board.King}
		require.True(t, s.Start(p))
		assert.True(t, s.Dragging())
		assert.Equal(t, p, s.Payload())
	})

	t.Run("ignores a malformed payload", func(t *testing.T) {
		s := &Session{}
		assert.False(t, s.Start(Payload{Position: board.NewCoord(9, 0), Kind: board.King}))
		assert.False(t, s.Start(Payload{Position: board.NewCoord(1, 1), Kind: board.NoKind}))
		assert.False(t, s.Dragging())
	})

	t.Run("refuses a second start while dragging", func(t *testing.T) {
		s := &Session{}
		first := Payload{Position: board.NewCoord(3, 2), Kind: board.King}
		require.True(t, s.Start(first))
		assert.False(t, s.Start(Payload{Position: board.NewCoord(1, 6), Kind: board.Pawn}))
		assert.Equal(t, first, s.Payload())
	})

	t.Run("end returns to idle regardless of outcome", func(t *testing.T) {
		s := &Session{}
		require.True(t, s.Start(Payload{Position: board.NewCoord(3, 2), Kind: board.King}))
		s.End()
		assert.False(t, s.Dragging())
		// A fresh gesture is possible again.
		assert.True(t, s.Start(Payload{Position: board.NewCoord(1, 6), Kind: board.Pawn}))
	})
}

func TestSquareHover(t *testing.T) {
	snap := kingPawnSnapshot()
	kingPayload := Payload{Position: board.NewCoord(3, 2), Kind: board.King}

	t.Run("classifies a legal destination as valid", func(t *testing.T) {
		h := NewSquareHover(board.NewCoord(4, 3))
		require.Equal(t, HoverIdle, h.State())

		h.Enter(kingPayload, snap)
		assert.Equal(t, ValidMove, h.State())
	})

	t.Run("classifies an illegal destination as invalid", func(t *testing.T) {
		h := NewSquareHover(board.NewCoord(5, 2))
		h.Enter(kingPayload, snap)
		assert.Equal(t, InvalidMove, h.State())
	})

	t.Run("ignores a malformed payload", func(t *testing.T) {
		h := NewSquareHover(board.NewCoord(4, 3))
		h.Enter(Payload{Position: board.NewCoord(-1, 0), Kind: board.King}, snap)
		assert.Equal(t, HoverIdle, h.State())

		// An established state is also left untouched.
		h.Enter(kingPayload, snap)
		require.Equal(t, ValidMove, h.State())
		h.Enter(Payload{Position: board.NewCoord(3, 2), Kind: board.NoKind}, snap)
		assert.Equal(t, ValidMove, h.State())
	})

	t.Run("leave resets unconditionally", func(t *testing.T) {
		h := NewSquareHover(board.NewCoord(4, 3))
		h.Enter(kingPayload, snap)
		require.Equal(t, ValidMove, h.State())
		h.Leave()
		assert.Equal(t, HoverIdle, h.State())
	})

	t.Run("re-entering re-evaluates against the given board", func(t *testing.T) {
		dest := board.NewCoord(4, 3)
		h := NewSquareHover(dest)

		h.Enter(kingPayload, snap)
		require.Equal(t, ValidMove, h.State())
		h.Leave()

		// The destination is occupied on re-entry; no memoization.
		occupied := board.New(
			board.Piece{Kind: board.King, Pos: board.NewCoord(3, 2)},
			board.Piece{Kind: board.Pawn, Pos: dest},
		).Snapshot()
		h.Enter(kingPayload, occupied)
		assert.Equal(t, InvalidMove, h.State())
	})
}
