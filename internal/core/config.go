package core

// RuntimeConfig is what the platform knows when a run starts.
// A zero Seed is replaced with the current time by interactive front ends.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second for input sampling and redraw (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int    // Current score
	Length int    // Current snake length
	Ticks  uint64 // Simulation ticks in the current run
	Paused bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the notifications emitted during the tick,
// in the order they happened.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind was emitted.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Count returns how many events of the given kind were emitted.
func (r StepResult) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Arena is a read-only frame of the grid for the presentation layer.
type Arena struct {
	Bounds  Bounds
	Snake   []Point // Head first
	Food    []Point
	Heading string
}
