package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/sijan67/chessboard-pragmatic-dnd/internal/board"
	"github.com/sijan67/chessboard-pragmatic-dnd/internal/dnd"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare  color.RGBA
	DarkSquare   color.RGBA
	ValidMove    color.RGBA
	InvalidMove  color.RGBA
	DragOrigin   color.RGBA
	Background   color.RGBA
	TextColor    color.RGBA
	LabelOnLight color.RGBA
	LabelOnDark  color.RGBA
}

// ClassicTheme returns the default tan/brown theme.
func ClassicTheme() *Theme {
	return &Theme{
		LightSquare:  color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:   color.RGBA{181, 136, 99, 255},  // Brown
		ValidMove:    color.RGBA{130, 180, 105, 170}, // Green overlay
		InvalidMove:  color.RGBA{210, 80, 70, 170},   // Red overlay
		DragOrigin:   color.RGBA{247, 247, 105, 140}, // Yellow highlight
		Background:   color.RGBA{40, 44, 52, 255},
		TextColor:    color.RGBA{220, 220, 220, 255},
		LabelOnLight: color.RGBA{140, 100, 70, 255},
		LabelOnDark:  color.RGBA{235, 215, 185, 255},
	}
}

// ForestTheme returns a green variant.
func ForestTheme() *Theme {
	return &Theme{
		LightSquare:  color.RGBA{235, 236, 208, 255},
		DarkSquare:   color.RGBA{115, 149, 82, 255},
		ValidMove:    color.RGBA{255, 255, 120, 170},
		InvalidMove:  color.RGBA{210, 80, 70, 170},
		DragOrigin:   color.RGBA{245, 246, 130, 140},
		Background:   color.RGBA{38, 36, 33, 255},
		TextColor:    color.RGBA{220, 220, 220, 255},
		LabelOnLight: color.RGBA{100, 125, 75, 255},
		LabelOnDark:  color.RGBA{230, 232, 200, 255},
	}
}

// ThemeByName looks up a theme by its preference name, defaulting to
// classic for unknown names.
func ThemeByName(name string) *Theme {
	if name == "forest" {
		return ForestTheme()
	}
	return ClassicTheme()
}

// Renderer handles all drawing operations.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
	scale      float64 // HiDPI scale factor
}

// NewRenderer creates a new renderer.
func NewRenderer(squareSize int, theme *Theme) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      theme,
		boardSize:  squareSize * board.Size,
		squareSize: squareSize,
		scale:      1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
}

// SetTheme swaps the color scheme.
func (r *Renderer) SetTheme(theme *Theme) {
	r.theme = theme
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// DrawBoard draws the grid squares and coordinate labels.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			x := r.s(col * r.squareSize)
			y := r.s(row * r.squareSize)

			var c color.RGBA
			if (row+col)%2 == 0 {
				c = r.theme.LightSquare
			} else {
				c = r.theme.DarkSquare
			}
			vector.DrawFilledRect(screen, x, y, r.s(r.squareSize), r.s(r.squareSize), c, false)
		}
	}

	r.drawCoordinates(screen)
}

// drawCoordinates draws row and column indices along the board edges.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	face := GetFaceWithSize(labelFontSize * r.scale)
	if face == nil {
		return
	}

	pad := 3.0 * r.scale
	for row := 0; row < board.Size; row++ {
		op := &text.DrawOptions{}
		op.GeoM.Translate(pad, float64(r.s(row*r.squareSize))+pad)
		op.ColorScale.ScaleWithColor(r.labelColor(row, 0))
		text.Draw(screen, fmt.Sprintf("%d", row), face, op)
	}
	for col := 0; col < board.Size; col++ {
		label := fmt.Sprintf("%d", col)
		w, h := MeasureText(label, face)
		op := &text.DrawOptions{}
		op.GeoM.Translate(
			float64(r.s((col+1)*r.squareSize))-w-pad,
			float64(r.s(board.Size*r.squareSize))-h-pad,
		)
		op.ColorScale.ScaleWithColor(r.labelColor(board.Size-1, col))
		text.Draw(screen, label, face, op)
	}
}

func (r *Renderer) labelColor(row, col int) color.RGBA {
	if (row+col)%2 == 0 {
		return r.theme.LabelOnLight
	}
	return r.theme.LabelOnDark
}

// DrawHover tints each square according to its hover classification and
// highlights the drag origin.
func (r *Renderer) DrawHover(screen *ebiten.Image, classify func(board.Coord) dnd.Classification, dragging bool, origin board.Coord) {
	if !dragging {
		return
	}

	r.fillSquare(screen, origin, r.theme.DragOrigin)

	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			loc := board.NewCoord(row, col)
			switch classify(loc) {
			case dnd.ValidMove:
				r.fillSquare(screen, loc, r.theme.ValidMove)
			case dnd.InvalidMove:
				r.fillSquare(screen, loc, r.theme.InvalidMove)
			}
		}
	}
}

// fillSquare draws a colored overlay on a square.
func (r *Renderer) fillSquare(screen *ebiten.Image, loc board.Coord, c color.RGBA) {
	if !loc.IsValid() {
		return
	}
	x, y := r.SquareToScreen(loc)
	vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.squareSize), r.s(r.squareSize), c, false)
}

// DrawPieces draws all pieces in the snapshot. The piece on the drag
// origin square is skipped while a drag is in progress; the ghost follows
// the cursor instead.
func (r *Renderer) DrawPieces(screen *ebiten.Image, snap board.Snapshot, dragging bool, dragOrigin board.Coord, anims *AnimationManager) {
	for _, p := range snap {
		if dragging && p.Pos == dragOrigin {
			continue
		}

		x, y := r.SquareToScreen(p.Pos)
		if anims != nil {
			offsetX, offsetY := anims.GetShakeOffset(p.Pos)
			x += int(offsetX)
			y += int(offsetY)
		}

		r.sprites.DrawPieceAt(screen, p.Kind, int(r.s(x)), int(r.s(y)), r.scale)
	}
}

// DrawDraggedPiece draws the piece being dragged, centered on the cursor.
// mouseX, mouseY are in logical coordinates.
func (r *Renderer) DrawDraggedPiece(screen *ebiten.Image, kind board.Kind, mouseX, mouseY int) {
	halfSize := int(r.s(r.squareSize)) / 2
	x := int(r.s(mouseX)) - halfSize
	y := int(r.s(mouseY)) - halfSize
	r.sprites.DrawPieceAt(screen, kind, x, y, r.scale)
}

// SquareToScreen converts a coordinate to logical screen coordinates of
// its top-left corner. Row 0 renders at the top.
func (r *Renderer) SquareToScreen(loc board.Coord) (int, int) {
	return loc.Col * r.squareSize, loc.Row * r.squareSize
}

// ScreenToSquare converts logical screen coordinates to a board
// coordinate. The second return is false outside the board.
func (r *Renderer) ScreenToSquare(x, y int) (board.Coord, bool) {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.Coord{Row: -1, Col: -1}, false
	}
	return board.NewCoord(y/r.squareSize, x/r.squareSize), true
}

// BoardSize returns the board size in logical pixels.
func (r *Renderer) BoardSize() int {
	return r.boardSize
}

// SquareSize returns the size of one square in logical pixels.
func (r *Renderer) SquareSize() int {
	return r.squareSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
