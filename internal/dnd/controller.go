package dnd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sijan67/chessboard-pragmatic-dnd/internal/board"
	"github.com/sijan67/chessboard-pragmatic-dnd/internal/obslog"
)

// Callbacks are the presentation hooks the controller fires after a drop
// resolves. All fields are optional.
type Callbacks struct {
	// OnCommit runs after a legal drop updated the board.
	OnCommit func(origin, destination board.Coord)
	// OnReject runs when a drop landed on a target but failed the
	// legality recheck. The board is unchanged.
	OnReject func(origin, destination board.Coord)
	// OnCancel runs when a gesture ends with no target under the release
	// point, or with an unusable drop event.
	OnCancel func()
}

// Controller wires every square of the grid into the dispatcher as both a
// draggable source (the piece currently sitting on it) and a drop zone,
// and owns the transient gesture state: one drag session plus one hover
// machine per square entered during the gesture.
//
// Hover classification is advisory; the drop monitor re-runs the legality
// check against the live board before committing.
type Controller struct {
	store      *board.Board
	dispatcher *Dispatcher

	session *Session
	hovers  map[board.Coord]*SquareHover

	callbacks Callbacks
}

// NewController registers the full grid with the dispatcher and installs
// the global drop monitor.
func NewController(store *board.Board, dispatcher *Dispatcher) *Controller {
	c := &Controller{
		store:      store,
		dispatcher: dispatcher,
		session:    &Session{},
	}

	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			loc := board.NewCoord(row, col)
			id := zoneID(loc)

			dispatcher.RegisterDraggable(id,
				func() Payload { return c.payloadAt(loc) },
				c.dragStarted,
				c.dragEnded,
			)
			dispatcher.RegisterDropZone(id,
				func() board.Coord { return loc },
				func(p Payload) bool { return p.Position != loc },
				func(p Payload) { c.hoverEntered(loc, p) },
				func(Payload) { c.hoverLeft(loc) },
			)
		}
	}

	dispatcher.SetMonitor(c.handleDrop)
	return c
}

// SetCallbacks installs the presentation hooks.
func (c *Controller) SetCallbacks(cb Callbacks) {
	c.callbacks = cb
}

// BeginDrag starts a gesture on the piece at loc. Returns false when the
// square is empty or a gesture is already active.
func (c *Controller) BeginDrag(loc board.Coord) bool {
	if !loc.IsValid() {
		return false
	}
	return c.dispatcher.StartDrag(zoneID(loc))
}

// HoverEnter reports the pointer entering a square mid-drag.
func (c *Controller) HoverEnter(loc board.Coord) {
	if !loc.IsValid() {
		return
	}
	c.dispatcher.EnterZone(zoneID(loc))
}

// HoverLeave reports the pointer leaving a square mid-drag.
func (c *Controller) HoverLeave(loc board.Coord) {
	if !loc.IsValid() {
		return
	}
	c.dispatcher.LeaveZone(zoneID(loc))
}

// Drop releases the gesture over the given squares, topmost first. Call
// with no arguments when the release point is outside the board; the
// gesture is then abandoned without touching the board.
func (c *Controller) Drop(under ...board.Coord) {
	ids := make([]string, 0, len(under))
	for _, loc := range under {
		if loc.IsValid() {
			ids = append(ids, zoneID(loc))
		}
	}
	c.dispatcher.Drop(ids...)
}

// Dragging returns true while a gesture is in progress.
func (c *Controller) Dragging() bool {
	return c.session.Dragging()
}

// DragPayload returns the active gesture's payload.
func (c *Controller) DragPayload() (Payload, bool) {
	return c.session.Payload(), c.session.Dragging()
}

// Classification returns the hover verdict for a square. Squares not
// entered during the current gesture are Idle.
func (c *Controller) Classification(loc board.Coord) Classification {
	if h, ok := c.hovers[loc]; ok {
		return h.State()
	}
	return HoverIdle
}

// payloadAt captures the identity of the piece currently at loc. An empty
// square yields a malformed payload, which the dispatcher refuses to drag.
func (c *Controller) payloadAt(loc board.Coord) Payload {
	p, ok := c.store.Snapshot().PieceAt(loc)
	if !ok {
		return Payload{Position: loc, Kind: board.NoKind}
	}
	return Payload{Position: p.Pos, Kind: p.Kind}
}

func (c *Controller) dragStarted(p Payload) {
	if !c.session.Start(p) {
		return
	}
	c.hovers = make(map[board.Coord]*SquareHover)
	obslog.L().Debug("drag started",
		zap.Stringer("origin", p.Position),
		zap.Stringer("kind", p.Kind))
}

func (c *Controller) dragEnded(Payload) {
	c.session.End()
	c.hovers = nil
}

func (c *Controller) hoverEntered(loc board.Coord, p Payload) {
	if c.hovers == nil {
		return
	}
	h, ok := c.hovers[loc]
	if !ok {
		h = NewSquareHover(loc)
		c.hovers[loc] = h
	}
	h.Enter(p, c.store.Snapshot())
}

func (c *Controller) hoverLeft(loc board.Coord) {
	if h, ok := c.hovers[loc]; ok {
		h.Leave()
	}
}

// handleDrop is the global monitor: it resolves the first target under
// the release point and either commits the move or leaves the board
// untouched. Hover-time validity is not consulted; legality is recomputed
// against the live board.
func (c *Controller) handleDrop(ev DropEvent) {
	if len(ev.Targets) == 0 {
		obslog.L().Debug("drop outside any target, gesture cancelled")
		c.cancel()
		return
	}

	origin := ev.Source.Position
	destination := ev.Targets[0].Location
	if !ev.Source.Valid() || !destination.IsValid() {
		c.cancel()
		return
	}

	snap := c.store.Snapshot()
	if _, ok := snap.PieceAt(origin); !ok {
		// Stale payload; nothing to move.
		c.cancel()
		return
	}

	if !board.IsLegalMove(origin, destination, ev.Source.Kind, snap) {
		obslog.L().Debug("illegal drop rejected",
			zap.Stringer("origin", origin),
			zap.Stringer("destination", destination))
		if c.callbacks.OnReject != nil {
			c.callbacks.OnReject(origin, destination)
		}
		return
	}

	c.store.CommitMove(origin, destination)
	obslog.L().Info("move committed",
		zap.Stringer("origin", origin),
		zap.Stringer("destination", destination),
		zap.Stringer("kind", ev.Source.Kind))
	if c.callbacks.OnCommit != nil {
		c.callbacks.OnCommit(origin, destination)
	}
}

func (c *Controller) cancel() {
	if c.callbacks.OnCancel != nil {
		c.callbacks.OnCancel()
	}
}

func zoneID(loc board.Coord) string {
	return fmt.Sprintf("square-%d-%d", loc.Row, loc.Col)
}
