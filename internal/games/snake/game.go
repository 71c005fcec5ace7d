package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Rules bundles the selectable rule variants.
type Rules struct {
	Collision CollisionRule
	Reversal  ReversalGuard
}

// RulesFromConfig converts the rules section of a config.
func RulesFromConfig(rc config.RulesConfig) (Rules, error) {
	collision, err := ParseCollisionRule(rc.Collision)
	if err != nil {
		return Rules{}, err
	}
	reversal, err := ParseReversalGuard(rc.Reversal)
	if err != nil {
		return Rules{}, err
	}
	return Rules{Collision: collision, Reversal: reversal}, nil
}

// Game runs the fixed-tick snake simulation.
// It is not safe for concurrent use; each player session owns its own Game.
type Game struct {
	id     string
	title  string
	cfg    config.SnakeConfig
	rules  Rules
	rng    *rand.Rand
	world  *World
	paused bool

	// pending holds the initial fill, reported by the next Step.
	pending []core.Event
}

// New creates a game for the given variant. Reset must be called before Step.
func New(id, title string, cfg config.SnakeConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rules, err := RulesFromConfig(cfg.Rules)
	if err != nil {
		return nil, err
	}

	g := &Game{
		id:    id,
		title: title,
		cfg:   cfg,
		rules: rules,
	}
	g.Reset(core.RuntimeConfig{})
	return g, nil
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Rules returns the active rule variants.
func (g *Game) Rules() Rules {
	return g.rules
}

// TicksPerSecond returns the fixed simulation rate.
func (g *Game) TicksPerSecond() int {
	return g.cfg.Timing.TicksPerSecond
}

// Reset starts a fresh run seeded from cfg.Seed and fills the food.
// The fill's events are returned by the following Step.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.paused = false
	g.world = NewWorld(
		core.Bounds{Width: g.cfg.Arena.Width, Height: g.cfg.Arena.Height},
		g.cfg.Food.MaxCount,
	)
	g.pending = g.refill(g.spawnRequests(nil))
}

// Steer samples directional input without advancing the simulation.
// The platform calls it every frame; Step calls it once more before ticking.
func (g *Game) Steer(in core.InputFrame) {
	if g.paused {
		return
	}
	g.world.Steer(in, g.rules.Reversal)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	res := g.step(in)
	if len(g.pending) > 0 {
		res.Events = append(g.pending, res.Events...)
		g.pending = nil
	}
	return res
}

func (g *Game) step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		return core.StepResult{State: g.State(), Events: g.restart()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.world.Steer(in, g.rules.Reversal)
	events := g.tick()
	return core.StepResult{State: g.State(), Events: events}
}

// restart abandons the current run without a game over. The RNG stream is kept.
func (g *Game) restart() []core.Event {
	g.paused = false
	g.world.Reset()
	return g.refill(g.spawnRequests(nil))
}

// spawnRequests appends one SpawnRequested per queued refill.
func (g *Game) spawnRequests(events []core.Event) []core.Event {
	for range g.world.PendingSpawns() {
		events = append(events, core.Event{Kind: core.EventSpawnRequested})
	}
	return events
}

// refill drains the queued spawn requests.
func (g *Game) refill(events []core.Event) []core.Event {
	return append(events, g.world.SpawnFood(g.rng, g.cfg.Food.SpawnAttempts)...)
}

// tick runs one fixed step: move, judge, then either reset or resolve
// eating and growth. Queued refills are drained last in both cases.
func (g *Game) tick() []core.Event {
	w := g.world
	w.ticks++

	m := Move(w.segments, w.heading)
	cause := DetectCollision(w.bounds, m, g.rules.Collision)
	w.apply(m)

	var events []core.Event
	if cause != CauseNone {
		events = append(events, core.Event{
			Kind:   core.EventGameOver,
			Score:  w.score,
			Length: w.Len(),
			Ticks:  w.ticks,
			Reason: cause.String(),
		})
		w.Reset()
		events = g.spawnRequests(events)
	} else {
		events = append(events, w.Eat()...)
		events = append(events, w.Grow()...)
	}

	return g.refill(events)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.world.Score(),
		Length: g.world.Len(),
		Ticks:  g.world.Ticks(),
		Paused: g.paused,
	}
}

// Segments returns the snake positions, head first.
func (g *Game) Segments() []core.Point {
	return g.world.Segments()
}

// Food returns the food positions.
func (g *Game) Food() []core.Point {
	return g.world.Food()
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.world.Score()
}

// Heading returns the heading for the next tick.
func (g *Game) Heading() Heading {
	return g.world.Heading()
}

// Bounds returns the arena size.
func (g *Game) Bounds() core.Bounds {
	return g.world.Bounds()
}

// Arena returns the grid contents for rendering.
func (g *Game) Arena() core.Arena {
	return core.Arena{
		Bounds:  g.world.Bounds(),
		Snake:   g.world.Segments(),
		Food:    g.world.Food(),
		Heading: g.world.Heading().String(),
	}
}
