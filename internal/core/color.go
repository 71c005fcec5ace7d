package core

// Color names the role of a screen cell. The platform picks the terminal
// color for each role, so games never deal with palettes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorFrame         // arena border and empty grid cells
	ColorFood
	ColorHead
	ColorBody
	ColorHUD    // score line
	ColorStatus // transient messages such as game over
)
