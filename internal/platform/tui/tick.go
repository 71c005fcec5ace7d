// Package tui provides the Bubble Tea integration for the snake platform.
// It handles the terminal UI loop, input mapping, and fixed-step orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per rendered frame. Input is sampled and the
// simulation clock advanced on every frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// statusMsg clears a transient status line when it expires.
type statusMsg struct {
	id int
}

// statusCmd schedules the expiry of status line id.
func statusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return statusMsg{id: id}
	})
}
