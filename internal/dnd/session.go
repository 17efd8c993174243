package dnd

import "github.com/sijan67/chessboard-pragmatic-dnd/internal/board"

// State is the per-draggable gesture state.
type State int

const (
	Idle State = iota
	Dragging
)

// String returns the state name.
func (s State) String() string {
	if s == Dragging {
		return "Dragging"
	}
	return "Idle"
}

// Session tracks one drag gesture: Idle until a drag starts, Dragging
// until the drop, whatever the outcome. A new session value is created
// per gesture; nothing survives the drop.
type Session struct {
	state   State
	payload Payload
}

// Start moves the session from Idle to Dragging, capturing the payload.
// A malformed payload or an already active session leaves the state
// unchanged and returns false.
func (s *Session) Start(p Payload) bool {
	if s.state != Idle || !p.Valid() {
		return false
	}
	s.state = Dragging
	s.payload = p
	return true
}

// Dragging returns true while the gesture is in progress.
func (s *Session) Dragging() bool {
	return s.state == Dragging
}

// Payload returns the payload captured at drag start.
func (s *Session) Payload() Payload {
	return s.payload
}

// End returns the session to Idle, regardless of drop outcome.
func (s *Session) End() {
	s.state = Idle
	s.payload = Payload{Kind: board.NoKind}
}

// Classification is the tri-state hover verdict for one square during an
// in-progress drag. It is a presentation derivative only: recomputed on
// every hover-enter, reset on hover-leave or drop, and never trusted when
// a drop commits.
type Classification int

const (
	HoverIdle Classification = iota
	ValidMove
	InvalidMove
)

// String returns the classification name.
func (c Classification) String() string {
	switch c {
	case ValidMove:
		return "ValidMove"
	case InvalidMove:
		return "InvalidMove"
	default:
		return "Idle"
	}
}

// SquareHover is the hover state machine for a single square. Instances
// are created when a gesture starts and discarded when it ends.
type SquareHover struct {
	location board.Coord
	state    Classification
}

// NewSquareHover creates an idle hover machine for the given square.
func NewSquareHover(loc board.Coord) *SquareHover {
	return &SquareHover{location: loc}
}

// Enter classifies the square for the hovering payload against the
// current committed board. A malformed payload is ignored and the state
// stays unchanged. Re-entering re-evaluates from scratch; there is no
// memoization across hovers.
func (h *SquareHover) Enter(p Payload, snap board.Snapshot) {
	if !p.Valid() {
		return
	}
	if board.IsLegalMove(p.Position, h.location, p.Kind, snap) {
		h.state = ValidMove
	} else {
		h.state = InvalidMove
	}
}

// Leave resets the square to Idle unconditionally.
func (h *SquareHover) Leave() {
	h.state = HoverIdle
}

// State returns the current classification.
func (h *SquareHover) State() Classification {
	return h.state
}

// Location returns the square this machine belongs to.
func (h *SquareHover) Location() board.Coord {
	return h.location
}
