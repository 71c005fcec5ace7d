package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// MoveResult is the outcome of advancing the snake by one cell.
type MoveResult struct {
	Segments []core.Point // Post-move positions, head first
	Snapshot []core.Point // Pre-move positions, head first
	LastTail core.Point   // Pre-move tail position
}

// Head returns the post-move head position.
func (r MoveResult) Head() core.Point {
	return r.Segments[0]
}

// Move advances the snake one cell in heading h. It does not look at walls
// or the body; collisions are judged on the result.
// Segment i takes the pre-move position of segment i-1. The input is not modified.
func Move(segments []core.Point, h Heading) MoveResult {
	if len(segments) == 0 {
		panic("snake: move with no segments")
	}

	snapshot := slices.Clone(segments)
	next := make([]core.Point, len(snapshot))
	next[0] = snapshot[0].Add(h.Delta())
	copy(next[1:], snapshot[:len(snapshot)-1])

	return MoveResult{
		Segments: next,
		Snapshot: snapshot,
		LastTail: snapshot[len(snapshot)-1],
	}
}

// apply commits a move to the world.
func (w *World) apply(m MoveResult) {
	w.segments = m.Segments
	w.lastTail = m.LastTail
	w.hasLastTail = true
	w.committed = w.heading
}
