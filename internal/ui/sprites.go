// Package ui implements the board surface using Ebitengine.
package ui

import (
	"bytes"
	"embed"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"go.uber.org/zap"

	"github.com/sijan67/chessboard-pragmatic-dnd/internal/board"
	"github.com/sijan67/chessboard-pragmatic-dnd/internal/obslog"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// pieceFiles maps piece kinds to their asset file paths.
var pieceFiles = map[board.Kind]string{
	board.King: "assets/pieces/wK.svg",
	board.Pawn: "assets/pieces/wP.svg",
}

// SpriteManager manages piece sprites rasterized from embedded SVGs.
type SpriteManager struct {
	pieces      map[board.Kind]*ebiten.Image
	size        int     // Display size in logical pixels
	renderScale float64 // Rasterize above display size for sharp scaling
}

// NewSpriteManager creates a sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[board.Kind]*ebiten.Image),
		size:        size,
		renderScale: 3.0,
	}
	sm.loadPieces()
	return sm
}

// loadPieces rasterizes all piece sprites from the embedded SVG files.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for kind, path := range pieceFiles {
		data, err := pieceAssets.ReadFile(path)
		if err != nil {
			obslog.L().Warn("failed to read piece asset", zap.String("path", path), zap.Error(err))
			continue
		}

		icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
		if err != nil {
			obslog.L().Warn("failed to parse piece SVG", zap.String("path", path), zap.Error(err))
			continue
		}

		icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

		rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
		scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
		raster := rasterx.NewDasher(renderSize, renderSize, scanner)
		icon.Draw(raster, 1.0)

		sm.pieces[kind] = ebiten.NewImageFromImage(rgba)
	}
}

// GetPiece returns the sprite for a piece kind.
func (sm *SpriteManager) GetPiece(kind board.Kind) *ebiten.Image {
	return sm.pieces[kind]
}

// DrawPieceAt draws a piece at the given pixel coordinates. The hiDPI
// scale is applied on top of the rasterization downscale.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, kind board.Kind, x, y int, hiDPIScale float64) {
	sprite := sm.GetPiece(kind)
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := hiDPIScale / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the display size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
