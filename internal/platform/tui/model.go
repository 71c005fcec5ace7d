package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// hudLines is the number of rows reserved above the arena.
const hudLines = 2

// screenRows returns the rows left for the screen buffer below a terminal
// height, one row being used by the help bar.
func screenRows(termH int) int {
	return max(termH-1, 1)
}

// statusTTL is how long a transient status line stays visible.
const statusTTL = 3 * time.Second

// GameModel is the Bubble Tea model for one snake game.
// Input is sampled every frame; the simulation runs at the game's own fixed rate.
type GameModel struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	clock    *core.Clock
	keys     *KeyMapper
	help     help.Model
	helpKeys GameKeyMap

	input     core.InputFrame
	state     core.GameState
	best      int
	lastFrame time.Time
	status    string
	statusID  int

	embedded   bool // Quit returns to the session menu instead of exiting
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
// A nil logger discards log output.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	best := 0
	if store != nil {
		if high, err := store.HighScore(game.ID()); err == nil {
			best = high
		} else {
			logger.Warn("could not load high score", "variant", game.ID(), "error", err)
		}
	}

	game.Reset(cfg)
	km := NewKeyMapper()

	return GameModel{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, screenRows(cfg.ScreenH)),
		store:    store,
		logger:   logger,
		config:   cfg,
		clock:    core.NewClock(game.TicksPerSecond()),
		keys:     km,
		help:     help.New(),
		helpKeys: km.HelpKeys(),
		input:    core.NewInputFrame(),
		state:    game.State(),
		best:     best,
	}
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.logger.Info("run started", "variant", m.game.ID(), "seed", m.config.Seed, "tps", m.game.TicksPerSecond())
	return frameCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, screenRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))

	case statusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey records input for the next frame.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.input) {
		if m.embedded && msg.String() != "ctrl+c" {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleFrame samples the input gathered since the last frame and runs
// every simulation tick that has become due.
func (m GameModel) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastFrame.IsZero() {
		elapsed = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	var cmds []tea.Cmd
	if m.input.Has(core.ActionRestart) {
		cmds = append(cmds, m.apply(m.game.Step(core.InputOf(core.ActionRestart))))
		cmds = append(cmds, m.setStatus("New run"))
		m.clock.Reset()
	}
	if m.input.Has(core.ActionPause) {
		cmds = append(cmds, m.apply(m.game.Step(core.InputOf(core.ActionPause))))
		m.clock.Reset()
	}

	dir := directional(m.input)
	m.game.Steer(dir)

	if !m.state.Paused {
		for n := m.clock.Advance(elapsed); n > 0; n-- {
			cmds = append(cmds, m.apply(m.game.Step(dir)))
		}
	}

	m.input.Clear()
	cmds = append(cmds, frameCmd(m.config.TickRate))
	return m, tea.Batch(cmds...)
}

// apply records a step result and reacts to its events.
func (m *GameModel) apply(res core.StepResult) tea.Cmd {
	m.state = res.State

	var cmd tea.Cmd
	for _, e := range res.Events {
		switch e.Kind {
		case core.EventGameOver:
			m.logger.Info("run ended",
				"variant", m.game.ID(),
				"score", e.Score,
				"length", e.Length,
				"ticks", e.Ticks,
				"cause", e.Reason,
			)
			m.saveRun(e)
			cmd = m.setStatus(fmt.Sprintf("Game over (%s), score %d", e.Reason, e.Score))
		case core.EventAte:
			m.best = max(m.best, e.Score)
		case core.EventSpawnDropped:
			m.logger.Debug("food spawn dropped", "reason", e.Reason)
		}
	}
	return cmd
}

// saveRun persists a finished run. Runs that never scored are not recorded.
func (m *GameModel) saveRun(e core.Event) {
	m.best = max(m.best, e.Score)
	if m.store == nil || e.Score <= 0 {
		return
	}

	_, err := m.store.SaveRun(storage.Run{
		Variant: m.game.ID(),
		Score:   e.Score,
		Length:  e.Length,
		Ticks:   e.Ticks,
		Cause:   e.Reason,
	})
	if err != nil {
		m.logger.Error("could not save run", "error", err)
	}
}

// setStatus shows a transient message under the arena.
func (m *GameModel) setStatus(text string) tea.Cmd {
	m.statusID++
	m.status = text
	return statusCmd(m.statusID, statusTTL)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// draw renders the HUD and arena into the screen buffer.
func (m *GameModel) draw() {
	m.screen.Clear()

	// The last row holds the status line.
	w, h := m.screen.Width(), m.screen.Height()-1
	arena := m.game.Arena()
	layout := NewArenaLayout(arena.Bounds, w, h, hudLines)
	if !layout.Fits(w, h) {
		m.screen.DrawTextCentered(m.screen.Height()/2, "Terminal too small")
		return
	}

	hud := HUD{
		Title:  m.game.Title(),
		Score:  m.state.Score,
		Best:   m.best,
		Length: m.state.Length,
		Paused: m.state.Paused,
	}
	m.screen.DrawTextColored(layout.Box.X, layout.Box.Y-hudLines, hud.Line(), core.ColorHUD)

	DrawArena(m.screen, layout, arena)

	if m.status != "" {
		m.screen.DrawTextColored(layout.Box.X, layout.Box.Bottom(), m.status, core.ColorStatus)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.helpKeys)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
