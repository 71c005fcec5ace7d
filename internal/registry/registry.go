// Package registry maps variant IDs to factories. Variants register
// themselves from init(); front ends list and create them by ID.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is what the platform drives. Implementations hold simulation state
// only; input mapping, frame timing and drawing live in the platform.
type Game interface {
	// ID returns a unique identifier for this variant (e.g., "classic").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Steer samples input between ticks without advancing the simulation.
	Steer(in core.InputFrame)

	// Step samples input and advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// State returns the current game state (score, length, paused).
	State() core.GameState

	// Arena returns the grid contents for rendering.
	Arena() core.Arena

	// TicksPerSecond returns the fixed simulation rate.
	TicksPerSecond() int
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a variant from the loaded configuration.
type Factory func(cfg config.SnakeConfig) (Game, error)

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a variant. It is meant to be called from init().
// The factory is tried once against the default configuration so that a
// broken variant fails at startup; Register panics on that failure and on a
// duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	probe, err := f(config.DefaultSnakeConfig())
	if err != nil {
		panic(fmt.Sprintf("registry: game %q: %v", id, err))
	}
	entries[id] = entry{factory: f, title: probe.Title()}
}

// List returns every registered variant ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(infos, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return infos
}

// Create builds the variant id from cfg.
func Create(id string, cfg config.SnakeConfig) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g, err := e.factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("registry: cannot create %q: %w", id, err)
	}
	return g, nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
