package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// cellWidth is the number of terminal columns per grid cell.
// Terminal cells are roughly twice as tall as wide.
const cellWidth = 2

// Glyphs for arena contents.
const (
	glyphHead = '@'
	glyphBody = 'o'
	glyphFood = '*'
	glyphGrid = '·'
)

// ArenaLayout positions the grid inside the terminal.
// Grid y grows upward while screen rows grow downward, so rows are flipped.
type ArenaLayout struct {
	Bounds core.Bounds
	Box    core.Rect // Border, inclusive of the frame
}

// NewArenaLayout centers an arena of the given size on a screenW x screenH
// terminal, leaving hudLines rows above it.
func NewArenaLayout(b core.Bounds, screenW, screenH, hudLines int) ArenaLayout {
	boxW := b.Width*cellWidth + 3
	boxH := b.Height + 2

	x := (screenW - boxW) / 2
	y := hudLines + (screenH-hudLines-boxH)/2
	x = max(x, 0)
	y = max(y, hudLines)

	return ArenaLayout{
		Bounds: b,
		Box:    core.NewRect(x, y, boxW, boxH),
	}
}

// Fits reports whether the framed arena fits on a screenW x screenH terminal.
func (l ArenaLayout) Fits(screenW, screenH int) bool {
	return l.Box.Right() <= screenW && l.Box.Bottom() <= screenH
}

// ToScreen converts a grid position to the terminal column and row of its glyph.
func (l ArenaLayout) ToScreen(p core.Point) (int, int) {
	x := l.Box.X + 2 + p.X*cellWidth
	y := l.Box.Y + 1 + (l.Bounds.Height - 1 - p.Y)
	return x, y
}

// FromScreen converts a terminal position back to a grid position.
// The second result is false when the position is not on a cell glyph.
func (l ArenaLayout) FromScreen(x, y int) (core.Point, bool) {
	dx := x - l.Box.X - 2
	if dx < 0 || dx%cellWidth != 0 {
		return core.Point{}, false
	}
	p := core.Pt(dx/cellWidth, l.Bounds.Height-1-(y-l.Box.Y-1))
	return p, l.Bounds.Contains(p)
}

// DrawArena draws the border, the empty grid, food and the snake.
// The snake is drawn last so it covers stacked food.
func DrawArena(s *core.Screen, l ArenaLayout, a core.Arena) {
	s.DrawBox(l.Box, core.ColorFrame)

	for gy := 0; gy < a.Bounds.Height; gy++ {
		for gx := 0; gx < a.Bounds.Width; gx++ {
			x, y := l.ToScreen(core.Pt(gx, gy))
			s.SetColored(x, y, glyphGrid, core.ColorFrame)
		}
	}

	for _, f := range a.Food {
		x, y := l.ToScreen(f)
		s.SetColored(x, y, glyphFood, core.ColorFood)
	}

	for i := len(a.Snake) - 1; i >= 0; i-- {
		x, y := l.ToScreen(a.Snake[i])
		if i == 0 {
			s.SetColored(x, y, glyphHead, core.ColorHead)
		} else {
			s.SetColored(x, y, glyphBody, core.ColorBody)
		}
	}
}

// HUD is the information line drawn above the arena.
type HUD struct {
	Title  string
	Score  int
	Best   int
	Length int
	Paused bool
}

// Line formats the HUD as a single line.
func (h HUD) Line() string {
	line := fmt.Sprintf("%s  Score: %d  Best: %d  Length: %d", h.Title, h.Score, max(h.Best, h.Score), h.Length)
	if h.Paused {
		line += "  [PAUSED]"
	}
	return line
}
