package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// ReversalGuard selects the heading a candidate is compared against when
// rejecting 180° turns.
type ReversalGuard int

const (
	// GuardHeading compares against the current heading, which may already
	// have been changed by an earlier sample within the same tick. Two quick
	// turns between ticks can therefore still reverse the snake.
	GuardHeading ReversalGuard = iota
	// GuardCommitted compares against the heading of the last executed move.
	GuardCommitted
)

// ParseReversalGuard converts a config rule name.
func ParseReversalGuard(s string) (ReversalGuard, error) {
	switch s {
	case config.ReversalHeading:
		return GuardHeading, nil
	case config.ReversalCommitted:
		return GuardCommitted, nil
	}
	return GuardHeading, fmt.Errorf("snake: unknown reversal rule %q", s)
}

func (g ReversalGuard) String() string {
	if g == GuardCommitted {
		return config.ReversalCommitted
	}
	return config.ReversalHeading
}

// steerPriority is the order in which simultaneously held keys are considered.
var steerPriority = []struct {
	action  core.Action
	heading Heading
}{
	{core.ActionLeft, Left},
	{core.ActionDown, Down},
	{core.ActionUp, Up},
	{core.ActionRight, Right},
}

// candidateHeading picks the first held direction in priority order.
func candidateHeading(in core.InputFrame) (Heading, bool) {
	for _, p := range steerPriority {
		if in.Has(p.action) {
			return p.heading, true
		}
	}
	return Up, false
}

// Steer samples directional input and updates the heading.
// It returns the resulting heading and whether it changed.
func (w *World) Steer(in core.InputFrame, guard ReversalGuard) (Heading, bool) {
	candidate, ok := candidateHeading(in)
	if !ok {
		return w.heading, false
	}

	ref := w.heading
	if guard == GuardCommitted {
		ref = w.committed
	}
	if candidate == ref.Opposite() || candidate == w.heading {
		return w.heading, false
	}

	w.heading = candidate
	return w.heading, true
}
