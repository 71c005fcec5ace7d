package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// sessionScreen identifies the active screen of a session.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel is the top-level model of one SSH connection. It moves
// between the picker, a game and the scoreboard inside a single program.
type SessionModel struct {
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	snake      config.SnakeConfig
	screen     sessionScreen
	menu       MenuModel
	gameModel  GameModel
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model.
// A nil logger discards log output.
func NewSessionModel(store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, snake config.SnakeConfig) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		store:  store,
		logger: logger,
		config: cfg,
		snake:  snake,
		menu:   NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
// The menu signals its choice with tea.Quit, which the session swallows.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	res := m.menu.Result()
	switch {
	case res.Quit:
		m.quitting = true
		return m, tea.Quit

	case res.WantsScoreboard:
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scoreboard.Init()

	case res.Variant != "":
		game, err := registry.Create(res.Variant, m.snake)
		if err != nil {
			m.logger.Error("cannot create game", "variant", res.Variant, "error", err)
			m.menu = NewMenuModel(m.store, m.config)
			return m, nil
		}

		cfg := m.config
		cfg.Seed = time.Now().UnixNano()
		m.gameModel = NewGameModel(game, m.store, m.logger, cfg)
		m.gameModel.embedded = true
		m.screen = screenGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// Frame messages still in flight are dropped once the menu is back.
	if m.gameModel.BackToMenu() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

// backToMenu shows a fresh menu.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}
