package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sijan67/chessboard-pragmatic-dnd/internal/board"
)

func TestLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		require.NoError(t, err)

		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "Chessboard", cfg.WindowTitle)
		assert.Equal(t, 80, cfg.SquareSize)
		assert.Equal(t, "classic", cfg.Theme)
		assert.False(t, cfg.Mute)
		assert.Empty(t, cfg.Pieces)
	})

	t.Run("reads yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		data := `log-level: debug
window-title: Test Board
square-size: 64
mute: true
pieces:
  - kind: king
    row: 3
    col: 2
  - kind: pawn
    row: 1
    col: 6
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "Test Board", cfg.WindowTitle)
		assert.Equal(t, 64, cfg.SquareSize)
		assert.True(t, cfg.Mute)
		require.Len(t, cfg.Pieces, 2)
	})

	t.Run("clamps tiny square size", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("square-size: 4\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 16, cfg.SquareSize)
	})
}

func TestConfig_InitialPieces(t *testing.T) {
	t.Run("empty placements use the default layout", func(t *testing.T) {
		cfg := &Config{}
		pieces, err := cfg.InitialPieces()
		require.NoError(t, err)
		require.Len(t, pieces, 2)
		assert.Equal(t, board.King, pieces[0].Kind)
		assert.Equal(t, board.NewCoord(3, 2), pieces[0].Pos)
		assert.Equal(t, board.Pawn, pieces[1].Kind)
		assert.Equal(t, board.NewCoord(1, 6), pieces[1].Pos)
	})

	t.Run("parses configured placements", func(t *testing.T) {
		cfg := &Config{Pieces: []Placement{{Kind: "King", Row: 0, Col: 0}}}
		pieces, err := cfg.InitialPieces()
		require.NoError(t, err)
		require.Len(t, pieces, 1)
		assert.Equal(t, board.King, pieces[0].Kind)
	})

	t.Run("rejects unknown kinds and off-board placements", func(t *testing.T) {
		_, err := (&Config{Pieces: []Placement{{Kind: "queen", Row: 0, Col: 0}}}).InitialPieces()
		assert.Error(t, err)

		_, err = (&Config{Pieces: []Placement{{Kind: "king", Row: 8, Col: 0}}}).InitialPieces()
		assert.Error(t, err)
	})
}
