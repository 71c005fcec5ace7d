package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// palette assigns a terminal style to each cell role.
var palette = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorFrame:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorFood:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorHead:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorBody:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorStatus:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
}

// styleFor returns the style for a role, falling back to the plain style.
func styleFor(c core.Color) lipgloss.Style {
	if st, ok := palette[c]; ok {
		return st
	}
	return palette[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is emitted as spans of equal role so a frame carries one escape
// sequence per span rather than per cell.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

func renderRow(s *core.Screen, y int) string {
	var (
		out  strings.Builder
		span strings.Builder
		role core.Color
	)
	flush := func() {
		if span.Len() > 0 {
			out.WriteString(styleFor(role).Render(span.String()))
			span.Reset()
		}
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if x > 0 && cell.Color != role {
			flush()
		}
		role = cell.Color
		span.WriteRune(cell.Rune)
	}
	flush()
	return out.String()
}
