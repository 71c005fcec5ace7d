package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Reset ends the run in one step: all food and segments are dropped, the score
// returns to zero, the canonical snake is respawned and a full food refill is
// queued. Nothing outside this call can see the world in between.
func (w *World) Reset() {
	w.segments = []core.Point{StartHead, StartBody}
	w.heading = StartHeading
	w.committed = StartHeading
	w.food = nil
	w.score = 0
	w.lastTail = core.Point{}
	w.hasLastTail = false
	w.pendingGrowth = 0
	w.pendingSpawns = w.maxFood
	w.ticks = 0
}
