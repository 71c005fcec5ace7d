package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Reasons attached to EventSpawnDropped.
const (
	DropFull      = "full"
	DropExhausted = "exhausted"
)

// RequestSpawn queues n food refill requests.
func (w *World) RequestSpawn(n int) {
	if n > 0 {
		w.pendingSpawns += n
	}
}

// SpawnFood drains every queued refill request.
// A request is dropped when the food cap is reached, or when maxAttempts
// random draws all land on the snake. Food landing on food is allowed.
func (w *World) SpawnFood(rng *rand.Rand, maxAttempts int) []core.Event {
	var events []core.Event
	for ; w.pendingSpawns > 0; w.pendingSpawns-- {
		if len(w.food) >= w.maxFood {
			events = append(events, core.Event{Kind: core.EventSpawnDropped, Reason: DropFull})
			continue
		}

		p, ok := w.freeCell(rng, maxAttempts)
		if !ok {
			events = append(events, core.Event{Kind: core.EventSpawnDropped, Reason: DropExhausted})
			continue
		}

		w.food = append(w.food, p)
		events = append(events, core.Event{Kind: core.EventFoodSpawned, Pos: p})
	}
	return events
}

// freeCell draws uniform random cells until one is off the snake.
func (w *World) freeCell(rng *rand.Rand, maxAttempts int) (core.Point, bool) {
	for range maxAttempts {
		p := core.Pt(rng.Intn(w.bounds.Width), rng.Intn(w.bounds.Height))
		if !w.occupiedBySnake(p) {
			return p, true
		}
	}
	return core.Point{}, false
}
