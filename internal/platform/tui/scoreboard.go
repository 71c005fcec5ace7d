package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const (
	scoreboardRuns    = 100 // rows loaded per variant
	statsPanelWidth   = 24
	minWidthForPanel  = 76
	scoreboardChrome  = 10 // title, tabs, borders and help
	minTableRowsShown = 3
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("22")).
			Padding(0, 1)
	boardPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextVariant key.Binding
	PrevVariant key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevVariant, k.NextVariant, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextVariant: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next rules")),
		PrevVariant: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev rules")),
		Back:        key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// boardExit records how the scoreboard was left.
type boardExit int

const (
	boardOpen boardExit = iota
	boardBack
	boardQuit
)

// ScoreboardModel shows the best runs of one variant at a time.
type ScoreboardModel struct {
	store    *storage.Store
	variants []registry.GameInfo
	selected int
	runs     []storage.Run
	stats    *storage.VariantStats
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	exit     boardExit
}

// NewScoreboardModel opens on the first registered variant. A nil store shows empty tables.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:    store,
		variants: registry.List(),
		help:     help.New(),
		keys:     DefaultScoreboardKeyMap(),
		width:    width,
		height:   height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

// panelShown reports whether the stats panel fits next to the table.
func (m ScoreboardModel) panelShown() bool {
	return m.width >= minWidthForPanel
}

func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 6},
		{Title: "Length", Width: 6},
		{Title: "Ticks", Width: 7},
		{Title: "Cause", Width: 5},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-scoreboardChrome, minTableRowsShown)),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(st)
	return t
}

// reload fetches runs and stats for the selected variant.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.selected].ID
		if runs, err := m.store.TopScores(id, scoreboardRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetVariantStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		rows = append(rows, table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprint(r.Score),
			fmt.Sprint(r.Length),
			fmt.Sprint(r.Ticks),
			r.Cause,
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// selectVariant moves to variant i, wrapping at both ends.
func (m *ScoreboardModel) selectVariant(i int) {
	n := len(m.variants)
	if n == 0 {
		return
	}
	m.selected = ((i % n) + n) % n
	m.reload()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.exit = boardQuit
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.exit = boardBack
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextVariant):
			m.selectVariant(m.selected + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevVariant):
			m.selectVariant(m.selected - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.exit != boardOpen {
		return ""
	}

	body := boardPanelStyle.Render(m.tableView())
	if m.panelShown() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", m.statsPanel())
	} else if line := m.statsLine(); line != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, boardDimStyle.Render(line))
	}

	page := lipgloss.JoinVertical(lipgloss.Center,
		boardTitleStyle.Render("HIGH SCORES"),
		"",
		m.tabs(),
		"",
		body,
		"",
		m.help.View(m.keys),
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, page)
}

// tabs renders the variant strip, collapsing to "< title >" when it does not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.variants) == 0 {
		return boardDimStyle.Render("no variants registered")
	}

	parts := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.selected {
			parts[i] = boardActiveTab.Render(v.Title)
		} else {
			parts[i] = boardTabStyle.Render(v.Title)
		}
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if lipgloss.Width(strip) > m.width-4 {
		return boardActiveTab.Render("< " + truncate(m.variants[m.selected].Title, m.width-8) + " >")
	}
	return strip
}

func (m ScoreboardModel) tableView() string {
	if len(m.runs) == 0 {
		return boardDimStyle.Italic(true).Padding(2, 4).
			Render("No runs recorded yet.\nEat something to set a high score!")
	}
	return m.table.View()
}

// statsPanel lists the aggregate numbers for the selected variant.
func (m ScoreboardModel) statsPanel() string {
	lines := []string{"Stats", strings.Repeat("─", statsPanelWidth-4)}
	if m.stats == nil || m.stats.RunsCount == 0 {
		lines = append(lines, boardDimStyle.Render("nothing yet"))
	} else {
		s := m.stats
		lines = append(lines,
			fmt.Sprintf("runs     %d", s.RunsCount),
			fmt.Sprintf("best     %d", s.HighScore),
			fmt.Sprintf("average  %.1f", s.AvgScore),
			fmt.Sprintf("longest  %d", s.LongestRun),
			fmt.Sprintf("ticks    %d", s.TotalTicks),
			fmt.Sprintf("walls    %d", s.WallDeaths),
			fmt.Sprintf("self     %d", s.SelfDeaths),
		)
		if !s.LastPlayed.IsZero() {
			lines = append(lines, "", boardDimStyle.Render("last "+s.LastPlayed.Format("Jan 02 15:04")))
		}
	}
	return boardPanelStyle.Width(statsPanelWidth).Render(strings.Join(lines, "\n"))
}

// statsLine is the one-line summary used when the panel does not fit.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.RunsCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d runs  avg %.1f  longest %d  walls %d  self %d",
		m.stats.RunsCount, m.stats.AvgScore, m.stats.LongestRun, m.stats.WallDeaths, m.stats.SelfDeaths)
}

// truncate shortens s to at most n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 2 {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.exit == boardBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.exit == boardQuit
}

// RunScoreboard shows the scoreboard full screen.
// It reports whether the user went back rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
