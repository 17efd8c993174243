// An interactive board: pieces relocate by dragging, legality computed
// synchronously from piece kind and occupancy. Built with Ebitengine.
package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/sijan67/chessboard-pragmatic-dnd/internal/board"
	"github.com/sijan67/chessboard-pragmatic-dnd/internal/config"
	"github.com/sijan67/chessboard-pragmatic-dnd/internal/obslog"
	"github.com/sijan67/chessboard-pragmatic-dnd/internal/storage"
	"github.com/sijan67/chessboard-pragmatic-dnd/internal/ui"
)

func main() {
	cfg, err := config.Load("config.yml")
	if err != nil {
		panic(err)
	}

	obslog.Init(cfg.LogLevel)
	defer obslog.Sync()

	pieces, err := cfg.InitialPieces()
	if err != nil {
		obslog.L().Fatal("invalid piece placement", zap.Error(err))
	}
	store := board.New(pieces...)

	var st *storage.Storage
	dbDir, err := storage.GetDatabaseDir(cfg.DataDir)
	if err == nil {
		st, err = storage.Open(dbDir)
	}
	if err != nil {
		obslog.L().Warn("storage unavailable, preferences will not persist", zap.Error(err))
	} else {
		defer st.Close()
	}

	game := ui.NewGame(cfg, store, st)
	defer game.Close()

	ebiten.SetWindowSize(game.BoardPixelSize(), game.BoardPixelSize())
	ebiten.SetWindowTitle(cfg.WindowTitle)

	obslog.L().Info("starting", zap.String("title", cfg.WindowTitle))
	if err := ebiten.RunGame(game); err != nil {
		obslog.L().Fatal("game loop failed", zap.Error(err))
	}
}
