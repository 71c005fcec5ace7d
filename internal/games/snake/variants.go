package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Variant identifiers.
const (
	VariantClassic   = "classic"
	VariantForgiving = "forgiving"
)

func init() {
	registry.Register(VariantClassic, func(cfg config.SnakeConfig) (registry.Game, error) {
		return New(VariantClassic, "Snake", cfg)
	})
	registry.Register(VariantForgiving, func(cfg config.SnakeConfig) (registry.Game, error) {
		cfg.Rules = Forgiving()
		return New(VariantForgiving, "Snake (Forgiving)", cfg)
	})
}

// Forgiving returns the rules that let the head follow the tail and
// reject reversals against the last executed move.
func Forgiving() config.RulesConfig {
	return config.RulesConfig{
		Collision: config.CollisionPostMove,
		Reversal:  config.ReversalCommitted,
	}
}
