// Package core provides fundamental types and utilities shared by the snake
// simulation and the terminal platform. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import "fmt"

// Point is a cell coordinate on the arena grid.
// It is a comparable value type; two points are equal when both coordinates match.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p offset by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// String formats the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Bounds describes the playable arena [0,Width) x [0,Height).
type Bounds struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the arena.
func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Cells returns the number of cells in the arena.
func (b Bounds) Cells() int {
	return b.Width * b.Height
}

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // top-left
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}
