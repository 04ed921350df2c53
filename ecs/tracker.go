package ecs

import (
	"github.com/sourceful-energy/pixelgrid"
	"github.com/sourceful-energy/pixelgrid/pattern"

	"github.com/yohamta/donburi"
)

// GridState is the component a Tracker keeps on each grid's entity.
type GridState struct {
	NodeID   uint32
	Ref      pattern.Ref
	Frame    int
	Lit      int  // number of lit pixels in the current frame
	Paused   bool
	Missing  bool // the last requested pattern was not found
	Advances int  // frame advances seen since the entity was created
}

// GridStateComponent is the Donburi component type holding a GridState.
var GridStateComponent = donburi.NewComponentType[GridState]()

// Tracker mirrors every grid reporting to a Donburi world as one entity
// with a GridStateComponent. Entities are created on a grid's first event
// and removed when it is disposed.
type Tracker struct {
	world    donburi.World
	entities map[uint32]donburi.Entity
}

// NewTracker subscribes a Tracker to GridEventType on world. Pair it with a
// sink from NewDonburiSink on the same world and call Process once per tick.
func NewTracker(world donburi.World) *Tracker {
	t := &Tracker{world: world, entities: make(map[uint32]donburi.Entity)}
	GridEventType.Subscribe(world, t.apply)
	return t
}

// Process delivers queued grid events to every subscriber of the world,
// the tracker included.
func (t *Tracker) Process() {
	GridEventType.ProcessEvents(t.world)
}

// Len returns the number of tracked grids.
func (t *Tracker) Len() int { return len(t.entities) }

// State returns the tracked state of the grid whose root node has nodeID.
func (t *Tracker) State(nodeID uint32) (GridState, bool) {
	e, ok := t.entities[nodeID]
	if !ok || !t.world.Valid(e) {
		return GridState{}, false
	}
	return *GridStateComponent.Get(t.world.Entry(e)), true
}

// Totals summarises every tracked grid.
func (t *Tracker) Totals() (grids, paused, missing, advances int) {
	for _, e := range t.entities {
		if !t.world.Valid(e) {
			continue
		}
		st := GridStateComponent.Get(t.world.Entry(e))
		grids++
		if st.Paused {
			paused++
		}
		if st.Missing {
			missing++
		}
		advances += st.Advances
	}
	return grids, paused, missing, advances
}

func (t *Tracker) apply(w donburi.World, ev pixelgrid.GridEvent) {
	if ev.NodeID == 0 {
		return
	}
	if ev.Type == pixelgrid.GridDisposed {
		if e, ok := t.entities[ev.NodeID]; ok {
			if w.Valid(e) {
				w.Remove(e)
			}
			delete(t.entities, ev.NodeID)
		}
		return
	}

	e, ok := t.entities[ev.NodeID]
	if !ok || !w.Valid(e) {
		e = w.Create(GridStateComponent)
		t.entities[ev.NodeID] = e
		GridStateComponent.Get(w.Entry(e)).NodeID = ev.NodeID
	}
	st := GridStateComponent.Get(w.Entry(e))
	st.Ref = ev.Ref
	switch ev.Type {
	case pixelgrid.GridPatternChanged:
		st.Missing = false
		st.Frame = ev.Frame
		st.Lit = len(ev.Active)
	case pixelgrid.GridPatternMissing:
		st.Missing = true
		st.Frame = 0
		st.Lit = 0
	case pixelgrid.GridFrameAdvanced:
		st.Frame = ev.Frame
		st.Lit = len(ev.Active)
		st.Advances++
	case pixelgrid.GridPaused:
		st.Paused = true
	case pixelgrid.GridResumed:
		st.Paused = false
	}
}
