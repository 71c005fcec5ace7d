package snake

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// CollisionRule selects which body positions the new head is tested against.
type CollisionRule int

const (
	// CollisionPreMove tests against every position held before the move,
	// including the tail cell the move is vacating.
	CollisionPreMove CollisionRule = iota
	// CollisionPostMove tests against the body after the move.
	CollisionPostMove
)

// ParseCollisionRule converts a config rule name.
func ParseCollisionRule(s string) (CollisionRule, error) {
	switch s {
	case config.CollisionPreMove:
		return CollisionPreMove, nil
	case config.CollisionPostMove:
		return CollisionPostMove, nil
	}
	return CollisionPreMove, fmt.Errorf("snake: unknown collision rule %q", s)
}

func (r CollisionRule) String() string {
	if r == CollisionPostMove {
		return config.CollisionPostMove
	}
	return config.CollisionPreMove
}

// DeathCause describes why a run ended.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseWall
	CauseSelf
)

func (c DeathCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "none"
	}
}

// DetectCollision judges a move. It returns CauseNone when the run goes on.
// When the head is both off the arena and on the body, the wall wins.
func DetectCollision(b core.Bounds, m MoveResult, rule CollisionRule) DeathCause {
	head := m.Head()
	if !b.Contains(head) {
		return CauseWall
	}

	body := m.Snapshot
	if rule == CollisionPostMove {
		body = m.Segments[1:]
	}
	if slices.Contains(body, head) {
		return CauseSelf
	}
	return CauseNone
}
