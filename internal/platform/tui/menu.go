package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// MenuItem is one variant row in the picker.
type MenuItem struct {
	Variant string
	Title   string
	Best    int
}

// menuOutcome records how the picker was left.
type menuOutcome int

const (
	menuPending menuOutcome = iota
	menuPlay
	menuScores
	menuQuit
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuBestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuFrameStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
)

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	outcome   menuOutcome
}

// NewMenuModel lists the registered variants. Best scores come from store when it is set.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, v := range registry.List() {
		item := MenuItem{Variant: v.ID, Title: v.Title}
		if store != nil {
			item.Best, _ = store.HighScore(v.ID)
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

// handleKey moves the cursor (wrapping at both ends) or leaves the picker.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.items)
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		return m.leave(menuQuit)
	case MenuActionScoreboard:
		return m.leave(menuScores)
	case MenuActionSelect:
		if n > 0 {
			return m.leave(menuPlay)
		}
	case MenuActionUp:
		if n > 0 {
			m.cursor = (m.cursor + n - 1) % n
		}
	case MenuActionDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	}
	return m, nil
}

func (m MenuModel) leave(o menuOutcome) (tea.Model, tea.Cmd) {
	m.outcome = o
	return m, tea.Quit
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.outcome == menuQuit {
		return ""
	}

	rows := make([]string, 0, len(m.items))
	for i, item := range m.items {
		title := fmt.Sprintf("  %-20s", item.Title)
		if i == m.cursor {
			title = menuCursorStyle.Render(fmt.Sprintf("> %-20s", item.Title))
		}
		rows = append(rows, title+menuBestStyle.Render(fmt.Sprintf(" best %4d", item.Best)))
	}
	if len(rows) == 0 {
		rows = append(rows, "no variants registered")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		menuTitleStyle.Render("S N A K E"),
		"",
		strings.Join(rows, "\n"),
		"",
		menuBestStyle.Render("up/down move · enter play · tab scores · q quit"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, menuFrameStyle.Render(body))
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Variant         string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Done reports whether the picker has been left.
func (m MenuModel) Done() bool {
	return m.outcome != menuPending
}

// Result summarizes how the menu was left. A pending menu yields a zero result.
func (m MenuModel) Result() MenuResult {
	res := MenuResult{Config: m.config}
	switch m.outcome {
	case menuPlay:
		res.Variant = m.items[m.cursor].Variant
	case menuScores:
		res.WantsScoreboard = true
	case menuQuit:
		res.Quit = true
	}
	return res
}

// RunMenu shows the picker full screen until a choice is made.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok || !m.Done() {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
