package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Canonical start placement, used at game start and after every game over.
var (
	StartHead    = core.Pt(3, 3)
	StartBody    = core.Pt(3, 2)
	StartHeading = Up
)

// World owns all mutable simulation state for one run.
// Each tick step receives the world by pointer and mutates only its own fields.
type World struct {
	bounds  core.Bounds
	maxFood int

	segments  []core.Point // Head at index 0
	heading   Heading      // Heading the head will move with next
	committed Heading      // Heading of the last executed move

	food  []core.Point
	score int

	lastTail    core.Point
	hasLastTail bool

	pendingSpawns int
	pendingGrowth int
	ticks         uint64
}

// NewWorld creates a world with the canonical snake and a full refill queued.
func NewWorld(bounds core.Bounds, maxFood int) *World {
	w := &World{
		bounds:  bounds,
		maxFood: maxFood,
	}
	w.Reset()
	return w
}

// Bounds returns the arena size.
func (w *World) Bounds() core.Bounds {
	return w.bounds
}

// MaxFood returns the food cap.
func (w *World) MaxFood() int {
	return w.maxFood
}

// Segments returns a copy of the snake positions, head first.
func (w *World) Segments() []core.Point {
	return slices.Clone(w.segments)
}

// Head returns the head position.
func (w *World) Head() core.Point {
	return w.segments[0]
}

// Len returns the number of segments including the head.
func (w *World) Len() int {
	return len(w.segments)
}

// Heading returns the heading the head will move with on the next tick.
func (w *World) Heading() Heading {
	return w.heading
}

// Food returns a copy of the food positions.
func (w *World) Food() []core.Point {
	return slices.Clone(w.food)
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}

// LastTail returns the cell vacated by the tail on the most recent move.
// The second result is false before the first move of a run.
func (w *World) LastTail() (core.Point, bool) {
	return w.lastTail, w.hasLastTail
}

// PendingSpawns returns the number of queued food refill requests.
func (w *World) PendingSpawns() int {
	return w.pendingSpawns
}

// Ticks returns the number of ticks run since the last reset.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// occupiedBySnake reports whether any segment sits on p.
func (w *World) occupiedBySnake(p core.Point) bool {
	return slices.Contains(w.segments, p)
}
