package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Eat consumes every food item under the head. Each one removes the food,
// queues a growth and a refill, and adds one point.
func (w *World) Eat() []core.Event {
	var events []core.Event
	head := w.Head()

	kept := w.food[:0]
	for _, f := range w.food {
		if f != head {
			kept = append(kept, f)
			continue
		}
		w.pendingGrowth++
		w.pendingSpawns++
		w.score++
		events = append(events,
			core.Event{Kind: core.EventAte, Pos: f, Score: w.score},
			core.Event{Kind: core.EventSpawnRequested},
		)
	}
	w.food = kept
	return events
}

// Grow appends one segment at the last vacated tail cell per queued growth.
// Growth before any move is a scheduling bug and panics.
func (w *World) Grow() []core.Event {
	var events []core.Event
	for ; w.pendingGrowth > 0; w.pendingGrowth-- {
		if !w.hasLastTail {
			panic("snake: growth requested before the first move")
		}
		w.segments = append(w.segments, w.lastTail)
		events = append(events, core.Event{Kind: core.EventGrew, Pos: w.lastTail})
	}
	return events
}
