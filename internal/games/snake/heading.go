package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Heading is the direction the head moves on the next tick.
type Heading int

const (
	Left Heading = iota
	Up
	Right
	Down
)

// Headings lists every heading.
var Headings = []Heading{Left, Up, Right, Down}

// Opposite returns the reverse heading. Left/Right and Up/Down are paired.
func (h Heading) Opposite() Heading {
	switch h {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Delta returns the one-cell offset for the heading. Grid y grows upward.
func (h Heading) Delta() core.Point {
	switch h {
	case Left:
		return core.Pt(-1, 0)
	case Right:
		return core.Pt(1, 0)
	case Up:
		return core.Pt(0, 1)
	default:
		return core.Pt(0, -1)
	}
}

func (h Heading) String() string {
	switch h {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// MarshalText encodes the heading by name for YAML snapshots.
func (h Heading) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// ParseHeading converts a name or a single letter (l, u, r, d) to a Heading.
func ParseHeading(s string) (Heading, error) {
	switch s {
	case "left", "l", "L":
		return Left, nil
	case "up", "u", "U":
		return Up, nil
	case "right", "r", "R":
		return Right, nil
	case "down", "d", "D":
		return Down, nil
	}
	return Up, fmt.Errorf("snake: unknown heading %q", s)
}

// Action returns the input action that steers toward h.
func (h Heading) Action() core.Action {
	switch h {
	case Left:
		return core.ActionLeft
	case Right:
		return core.ActionRight
	case Down:
		return core.ActionDown
	default:
		return core.ActionUp
	}
}
