package dnd

import "github.com/sijan67/chessboard-pragmatic-dnd/internal/board"

// DropTarget identifies a drop zone that was under the release point.
type DropTarget struct {
	ID       string
	Location board.Coord
}

// DropEvent is delivered to the global monitor on every drop, wherever it
// lands. Targets are ordered topmost first; a release outside any zone
// produces an event with no targets.
type DropEvent struct {
	Source  Payload
	Targets []DropTarget
}

type draggable struct {
	payloadFn func() Payload
	onStart   func(Payload)
	onDrop    func(Payload)
}

type dropZone struct {
	locationFn func() board.Coord
	canAccept  func(Payload) bool
	onEnter    func(Payload)
	onLeave    func(Payload)
}

// Dispatcher delivers typed drag events to registered handlers. It is the
// in-process equivalent of a drag-and-drop sensor contract: draggables
// produce payloads, drop zones receive hover transitions, and a single
// monitor observes every drop system-wide.
//
// The dispatcher is not safe for concurrent use; all calls happen on the
// UI event loop, one event at a time.
type Dispatcher struct {
	draggables map[string]*draggable
	zones      map[string]*dropZone
	monitor    func(DropEvent)

	active  bool
	source  string
	payload Payload
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		draggables: make(map[string]*draggable),
		zones:      make(map[string]*dropZone),
	}
}

// RegisterDraggable associates an addressable element with a payload
// producer and gesture callbacks. The payload is produced fresh on each
// drag start.
func (d *Dispatcher) RegisterDraggable(id string, payloadFn func() Payload, onStart, onDrop func(Payload)) {
	d.draggables[id] = &draggable{payloadFn: payloadFn, onStart: onStart, onDrop: onDrop}
}

// RegisterDropZone associates an addressable element with a location
// producer, an acceptance predicate and hover callbacks. A nil canAccept
// accepts everything.
func (d *Dispatcher) RegisterDropZone(id string, locationFn func() board.Coord, canAccept func(Payload) bool, onEnter, onLeave func(Payload)) {
	d.zones[id] = &dropZone{locationFn: locationFn, canAccept: canAccept, onEnter: onEnter, onLeave: onLeave}
}

// SetMonitor installs the single global drop subscription.
func (d *Dispatcher) SetMonitor(fn func(DropEvent)) {
	d.monitor = fn
}

// StartDrag begins a gesture on the registered draggable. No gesture
// starts when one is already active, the id is unknown, or the produced
// payload is malformed; all of those return false silently.
func (d *Dispatcher) StartDrag(id string) bool {
	if d.active {
		return false
	}
	src, ok := d.draggables[id]
	if !ok || src.payloadFn == nil {
		return false
	}
	p := src.payloadFn()
	if !p.Valid() {
		return false
	}

	d.active = true
	d.source = id
	d.payload = p
	if src.onStart != nil {
		src.onStart(p)
	}
	return true
}

// Dragging returns true while a gesture is active.
func (d *Dispatcher) Dragging() bool {
	return d.active
}

// Source returns the payload of the active gesture.
func (d *Dispatcher) Source() (Payload, bool) {
	return d.payload, d.active
}

// EnterZone delivers a hover-enter to a drop zone. Zones that cannot
// accept the active payload never see the transition.
func (d *Dispatcher) EnterZone(id string) {
	z := d.acceptingZone(id)
	if z == nil {
		return
	}
	if z.onEnter != nil {
		z.onEnter(d.payload)
	}
}

// LeaveZone delivers a hover-leave to a drop zone.
func (d *Dispatcher) LeaveZone(id string) {
	z := d.acceptingZone(id)
	if z == nil {
		return
	}
	if z.onLeave != nil {
		z.onLeave(d.payload)
	}
}

// Drop ends the active gesture over the zones identified by ids, topmost
// first. Zones that cannot accept the payload are filtered from the
// resolved target list. The monitor receives the drop event first, then
// the source's drop callback runs; afterwards the dispatcher is idle
// again regardless of what the handlers did.
func (d *Dispatcher) Drop(ids ...string) {
	if !d.active {
		return
	}

	p := d.payload
	src := d.draggables[d.source]

	var targets []DropTarget
	for _, id := range ids {
		z, ok := d.zones[id]
		if !ok || z.locationFn == nil {
			continue
		}
		if z.canAccept != nil && !z.canAccept(p) {
			continue
		}
		targets = append(targets, DropTarget{ID: id, Location: z.locationFn()})
	}

	if d.monitor != nil {
		d.monitor(DropEvent{Source: p, Targets: targets})
	}

	d.active = false
	d.source = ""
	d.payload = Payload{Kind: board.NoKind}

	if src != nil && src.onDrop != nil {
		src.onDrop(p)
	}
}

func (d *Dispatcher) acceptingZone(id string) *dropZone {
	if !d.active {
		return nil
	}
	z, ok := d.zones[id]
	if !ok {
		return nil
	}
	if z.canAccept != nil && !z.canAccept(d.payload) {
		return nil
	}
	return z
}
