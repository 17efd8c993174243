package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/sijan67/chessboard-pragmatic-dnd/internal/board"
	"github.com/sijan67/chessboard-pragmatic-dnd/internal/config"
	"github.com/sijan67/chessboard-pragmatic-dnd/internal/dnd"
	"github.com/sijan67/chessboard-pragmatic-dnd/internal/obslog"
	"github.com/sijan67/chessboard-pragmatic-dnd/internal/storage"
)

// UIScale is the global HiDPI scale factor for all UI drawing.
// Set by Game.Layout() and read by the input handler.
var UIScale float64 = 1.0

// Game implements ebiten.Game. It is the drag-sensing side of the dnd
// contract: polled mouse state is translated into the discrete
// drag-start, hover-enter, hover-leave and drop events the controller
// consumes. All events are dispatched synchronously inside Update, one
// at a time.
type Game struct {
	store      *board.Board
	controller *dnd.Controller

	// Components
	input    *InputHandler
	renderer *Renderer
	feedback *FeedbackManager

	// Storage
	storage *storage.Storage
	prefs   *storage.UserPreferences

	// Pointer-to-square tracking while a drag is in progress
	hasHover    bool
	hoverSquare board.Coord

	// HiDPI scaling
	scale float64
}

// NewGame wires the board store, the dnd controller and the presentation
// components. The storage may be nil; preferences then stay in memory.
func NewGame(cfg *config.Config, store *board.Board, st *storage.Storage) *Game {
	g := &Game{
		store:    store,
		input:    NewInputHandler(),
		feedback: NewFeedbackManager(),
		storage:  st,
		scale:    1.0,
	}

	g.loadPreferences(cfg)
	g.renderer = NewRenderer(cfg.SquareSize, ThemeByName(g.prefs.Theme))
	g.feedback.Audio().SetEnabled(g.prefs.SoundEnabled)

	g.controller = dnd.NewController(store, dnd.NewDispatcher())
	g.controller.SetCallbacks(dnd.Callbacks{
		OnCommit: g.moveCommitted,
		OnReject: g.dropRejected,
		OnCancel: g.dragCancelled,
	})

	return g
}

// loadPreferences loads user preferences, falling back to config values.
func (g *Game) loadPreferences(cfg *config.Config) {
	g.prefs = storage.DefaultPreferences()
	g.prefs.Theme = cfg.Theme
	g.prefs.SoundEnabled = !cfg.Mute

	if g.storage == nil {
		return
	}
	prefs, err := g.storage.LoadPreferences()
	if err != nil {
		obslog.L().Warn("failed to load preferences", zap.Error(err))
		return
	}
	g.prefs = prefs
}

// savePreferences persists current preferences.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		obslog.L().Warn("failed to save preferences", zap.Error(err))
	}
}

// Update handles one tick of the event loop.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	g.handleShortcuts()
	g.handleBoardInput()

	return nil
}

// handleShortcuts processes keyboard toggles.
func (g *Game) handleShortcuts() {
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.prefs.SoundEnabled = !g.prefs.SoundEnabled
		g.feedback.Audio().SetEnabled(g.prefs.SoundEnabled)
		g.savePreferences()
		if g.prefs.SoundEnabled {
			g.feedback.toasts.Show("Sound on", ToastInfo, time.Second)
		} else {
			g.feedback.toasts.Show("Sound off", ToastInfo, time.Second)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		if g.prefs.Theme == "forest" {
			g.prefs.Theme = "classic"
		} else {
			g.prefs.Theme = "forest"
		}
		g.renderer.SetTheme(ThemeByName(g.prefs.Theme))
		g.savePreferences()
	}
}

// handleBoardInput turns polled mouse state into drag events.
func (g *Game) handleBoardInput() {
	mx, my := g.input.MousePosition()
	sq, overBoard := g.renderer.ScreenToSquare(mx, my)

	// Drag start
	if g.input.IsLeftJustPressed() && !g.controller.Dragging() {
		if overBoard && g.controller.BeginDrag(sq) {
			g.hasHover = true
			g.hoverSquare = sq
		}
		return
	}

	if !g.controller.Dragging() {
		return
	}

	// Drop
	if g.input.IsLeftJustReleased() {
		if overBoard {
			g.controller.Drop(sq)
		} else {
			g.controller.Drop()
		}
		g.hasHover = false
		return
	}

	// Hover transitions while the button is held
	if overBoard {
		if !g.hasHover || g.hoverSquare != sq {
			if g.hasHover {
				g.controller.HoverLeave(g.hoverSquare)
			}
			g.controller.HoverEnter(sq)
			g.hasHover = true
			g.hoverSquare = sq
		}
	} else if g.hasHover {
		g.controller.HoverLeave(g.hoverSquare)
		g.hasHover = false
	}
}

// moveCommitted reacts to a committed move.
func (g *Game) moveCommitted(_, _ board.Coord) {
	g.feedback.OnMoveCommitted()
	if g.storage != nil {
		if err := g.storage.RecordCommit(); err != nil {
			obslog.L().Warn("failed to record move", zap.Error(err))
		}
	}
}

// dropRejected reacts to a drop that failed the legality recheck. The
// piece snaps back because board state was never updated.
func (g *Game) dropRejected(origin, _ board.Coord) {
	g.feedback.OnDropRejected(origin)
	if g.storage != nil {
		if err := g.storage.RecordReject(); err != nil {
			obslog.L().Warn("failed to record rejection", zap.Error(err))
		}
	}
}

// dragCancelled reacts to a gesture abandoned outside any square.
func (g *Game) dragCancelled() {
	if g.storage != nil {
		if err := g.storage.RecordCancel(); err != nil {
			obslog.L().Warn("failed to record cancellation", zap.Error(err))
		}
	}
}

// Draw renders one frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)

	screen.Fill(g.renderer.Theme().Background)
	g.renderer.DrawBoard(screen)

	payload, dragging := g.controller.DragPayload()
	g.renderer.DrawHover(screen, g.controller.Classification, dragging, payload.Position)
	g.renderer.DrawPieces(screen, g.store.Snapshot(), dragging, payload.Position, g.feedback.Animations())

	if dragging {
		mx, my := g.input.MousePosition()
		g.renderer.DrawDraggedPiece(screen, payload.Kind, mx, my)
	}

	g.feedback.Draw(screen, int(float64(g.renderer.BoardSize())*g.scale))
}

// Layout returns the screen dimensions, scaled for HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	UIScale = g.scale

	size := int(float64(g.renderer.BoardSize()) * g.scale)
	return size, size
}

// BoardPixelSize returns the unscaled window size.
func (g *Game) BoardPixelSize() int {
	return g.renderer.BoardSize()
}

// Close persists preferences and releases resources.
func (g *Game) Close() {
	g.savePreferences()
}
