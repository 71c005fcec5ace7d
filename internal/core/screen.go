package core

import (
	"strings"
)

// Cell is a single character position on a Screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a character buffer the arena is drawn into before the platform
// styles it for the terminal. Cells are stored row-major.
type Screen struct {
	width  int
	height int
	cells  []Cell
}

// NewScreen creates a blank screen with the given dimensions.
func NewScreen(width, height int) *Screen {
	width, height = max(width, 0), max(height, 0)
	s := &Screen{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	s.Clear()
	return s
}

// index returns the slice offset of (x, y), or -1 when off screen.
func (s *Screen) index(x, y int) int {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return -1
	}
	return y*s.width + x
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the dimensions, keeping the overlapping top-left region.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	next := NewScreen(width, height)
	for y := range min(s.height, height) {
		for x := range min(s.width, width) {
			next.cells[next.index(x, y)] = s.cells[s.index(x, y)]
		}
	}
	*s = *next
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

// Set places a rune with the default color. Off-screen writes are dropped.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a rune with a color. Off-screen writes are dropped.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if i := s.index(x, y); i >= 0 {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

// Get returns the rune at (x, y), or a space when off screen.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a blank cell when off screen.
func (s *Screen) GetCell(x, y int) Cell {
	if i := s.index(x, y); i >= 0 {
		return s.cells[i]
	}
	return blankCell
}

// DrawText writes text left to right from (x, y), one rune per cell.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored is DrawText with a color.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for i, r := range []rune(text) {
		s.SetColored(x+i, y, r, c)
	}
}

// DrawTextCentered draws text centered on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.width-len([]rune(text)))/2, y, text)
}

// DrawBox outlines r with box-drawing characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	left, top := r.X, r.Y
	right, bottom := r.Right()-1, r.Bottom()-1

	for x := left + 1; x < right; x++ {
		s.SetColored(x, top, '─', c)
		s.SetColored(x, bottom, '─', c)
	}
	for y := top + 1; y < bottom; y++ {
		s.SetColored(left, y, '│', c)
		s.SetColored(right, y, '│', c)
	}
	s.SetColored(left, top, '┌', c)
	s.SetColored(right, top, '┐', c)
	s.SetColored(left, bottom, '└', c)
	s.SetColored(right, bottom, '┘', c)
}

// String returns the buffer as plain text, rows separated by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Row returns row y as plain text. Off-screen rows are all spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	sb.Grow(s.width)
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
