package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration:
// a 12x12 arena, five food items, six ticks per second and the classic rules.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Arena: ArenaConfig{
			Width:  12,
			Height: 12,
		},
		Food: FoodConfig{
			MaxCount:      5,
			SpawnAttempts: 64,
		},
		Timing: TimingConfig{
			TicksPerSecond: 6,
		},
		Rules: RulesConfig{
			Collision: CollisionPreMove,
			Reversal:  ReversalHeading,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
