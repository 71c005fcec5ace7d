package core

// EventKind identifies a notification emitted by a simulation tick.
type EventKind int

const (
	EventGameOver       EventKind = iota // Run ended; world was reset
	EventAte                             // Head consumed a food item
	EventGrew                            // A body segment was appended
	EventSpawnRequested                  // A food refill was queued
	EventFoodSpawned                     // A food item was placed
	EventSpawnDropped                    // A refill request was discarded
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventGameOver:
		return "game_over"
	case EventAte:
		return "ate"
	case EventGrew:
		return "grew"
	case EventSpawnRequested:
		return "spawn_requested"
	case EventFoodSpawned:
		return "food_spawned"
	case EventSpawnDropped:
		return "spawn_dropped"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification for the presentation layer.
// Fields that do not apply to a kind are left zero.
type Event struct {
	Kind   EventKind
	Pos    Point  // Ate, Grew, FoodSpawned: the cell involved
	Score  int    // Ate: score after eating; GameOver: final score
	Length int    // GameOver: final snake length
	Ticks  uint64 // GameOver: ticks survived
	Reason string // GameOver: death cause; SpawnDropped: why
}
