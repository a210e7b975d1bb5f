// Package feather2d detects overlaps between convex polygons: a hashed grid broad
// phase feeds GJK narrow phase workers, and overlap changes are reported as events.
package feather2d

import (
	"github.com/akmonengine/feather2d/actor"
	"go.uber.org/zap"
)

const (
	DEFAULT_WORKERS   = 1
	DEFAULT_CELL_SIZE = 1
	DEFAULT_NUM_CELLS = 1024
)

type World struct {
	// List of all bodies in the world
	Bodies      []*actor.Body
	SpatialGrid *SpatialGrid
	Workers     int

	Events Events

	// Nil means no logging
	Logger *zap.Logger
}

// NewWorld creates an empty world with a default grid
func NewWorld() *World {
	return &World{
		SpatialGrid: NewSpatialGrid(DEFAULT_CELL_SIZE, DEFAULT_NUM_CELLS),
		Workers:     DEFAULT_WORKERS,
		Events:      NewEvents(),
		Logger:      zap.NewNop(),
	}
}

// AddBody adds a body to the world
func (w *World) AddBody(body *actor.Body) {
	w.Bodies = append(w.Bodies, body)
}

// RemoveBody removes a body from the world, it will not receive an exit event
func (w *World) RemoveBody(body *actor.Body) {
	k := -1
	for i, b := range w.Bodies {
		if b == body {
			k = i
			break
		}
	}

	if k != -1 {
		w.Bodies = append(w.Bodies[:k], w.Bodies[k+1:]...)
	}

	w.Events.forget(body)
}

// DetectOverlaps returns the pairs of bodies overlapping at their current transforms.
// Transforms written directly to the bodies are taken into account.
func (w *World) DetectOverlaps() []Pair {
	w.prepare()
	w.refreshBounds()

	return NarrowPhase(BroadPhase(w.SpatialGrid, w.Bodies, w.Workers), w.Workers, w.Logger)
}

// Step detects the overlaps at the current transforms and dispatches the events
func (w *World) Step() {
	overlaps := w.DetectOverlaps()
	w.Logger.Debug("step",
		zap.Int("bodies", len(w.Bodies)),
		zap.Int("overlaps", len(overlaps)),
	)

	w.Events.recordOverlaps(overlaps)
	w.Events.flush()
}

func (w *World) prepare() {
	w.Workers = max(DEFAULT_WORKERS, w.Workers)
	if w.SpatialGrid == nil {
		w.SpatialGrid = NewSpatialGrid(DEFAULT_CELL_SIZE, DEFAULT_NUM_CELLS)
	}
	if w.Events.listeners == nil {
		w.Events = NewEvents()
	}
	if w.Logger == nil {
		w.Logger = zap.NewNop()
	}
}

// refreshBounds recomputes the world vertices of bodies whose transform was set directly
func (w *World) refreshBounds() {
	task(w.Workers, w.Bodies, func(body *actor.Body) {
		body.Shape.ComputeAABB(body.Transform)
	})
}
