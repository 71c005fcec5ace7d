// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"fmt"
)

// Rule names accepted in the rules section.
const (
	CollisionPreMove  = "pre_move"
	CollisionPostMove = "post_move"
	ReversalHeading   = "heading"
	ReversalCommitted = "committed"
)

// minArenaSide keeps the canonical start (3,3)/(3,2) inside the arena.
const minArenaSide = 4

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Food   FoodConfig   `yaml:"food"`
	Timing TimingConfig `yaml:"timing"`
	Rules  RulesConfig  `yaml:"rules"`
}

// ArenaConfig defines the grid dimensions.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FoodConfig defines food placement parameters.
type FoodConfig struct {
	MaxCount      int `yaml:"max_count"`
	SpawnAttempts int `yaml:"spawn_attempts"`
}

// TimingConfig defines the fixed simulation rate.
type TimingConfig struct {
	TicksPerSecond int `yaml:"ticks_per_second"`
}

// RulesConfig selects between rule variants.
type RulesConfig struct {
	Collision string `yaml:"collision"`
	Reversal  string `yaml:"reversal"`
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	if c.Arena.Width < minArenaSide || c.Arena.Height < minArenaSide {
		return fmt.Errorf("config: arena must be at least %dx%d, got %dx%d",
			minArenaSide, minArenaSide, c.Arena.Width, c.Arena.Height)
	}
	if c.Food.MaxCount <= 0 {
		return fmt.Errorf("config: food.max_count must be positive, got %d", c.Food.MaxCount)
	}
	if c.Food.SpawnAttempts <= 0 {
		return fmt.Errorf("config: food.spawn_attempts must be positive, got %d", c.Food.SpawnAttempts)
	}
	if c.Timing.TicksPerSecond <= 0 {
		return fmt.Errorf("config: timing.ticks_per_second must be positive, got %d", c.Timing.TicksPerSecond)
	}
	switch c.Rules.Collision {
	case CollisionPreMove, CollisionPostMove:
	default:
		return fmt.Errorf("config: unknown collision rule %q", c.Rules.Collision)
	}
	switch c.Rules.Reversal {
	case ReversalHeading, ReversalCommitted:
	default:
		return fmt.Errorf("config: unknown reversal rule %q", c.Rules.Reversal)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// TicksForPreset returns the simulation rate for a difficulty preset.
func TicksForPreset(preset DifficultyPreset) (int, bool) {
	switch preset {
	case DifficultyEasy:
		return 4, true
	case DifficultyNormal:
		return 6, true
	case DifficultyHard:
		return 10, true
	default:
		return 0, false
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	tps, ok := TicksForPreset(preset)
	if !ok {
		return fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", preset)
	}
	cfg.Timing.TicksPerSecond = tps
	return nil
}
