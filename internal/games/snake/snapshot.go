package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Variant       string       `yaml:"variant"`
	Width         int          `yaml:"width"`
	Height        int          `yaml:"height"`
	Tick          uint64       `yaml:"tick"`
	Score         int          `yaml:"score"`
	Heading       Heading      `yaml:"heading"`
	Snake         []core.Point `yaml:"snake"`
	Food          []core.Point `yaml:"food"`
	PendingSpawns int          `yaml:"pending_spawns"`
	Paused        bool         `yaml:"paused"`
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Variant:       g.id,
		Width:         g.world.Bounds().Width,
		Height:        g.world.Bounds().Height,
		Tick:          g.world.Ticks(),
		Score:         g.world.Score(),
		Heading:       g.world.Heading(),
		Snake:         g.world.Segments(),
		Food:          g.world.Food(),
		PendingSpawns: g.world.PendingSpawns(),
		Paused:        g.paused,
	}
}
