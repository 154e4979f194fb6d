package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilt-escape/internal/core"
	"github.com/vovakirdan/tilt-escape/internal/registry"
	"github.com/vovakirdan/tilt-escape/internal/storage"
)

// localKeys is the in-terminal binding set. Unlike the SSH session,
// esc pauses here instead of leaving the game, and ctrl+s is free for
// screenshots.
var localKeys = map[string]core.Action{
	"a": core.ActionTiltLeft, "left": core.ActionTiltLeft,
	"d": core.ActionTiltRight, "right": core.ActionTiltRight,
	"w": core.ActionTiltUp, "up": core.ActionTiltUp,
	"s": core.ActionTiltDown, "down": core.ActionTiltDown,
	" ": core.ActionCenter,
	"p": core.ActionPause, "esc": core.ActionPause,
	"r": core.ActionRestart,
}

// Model runs a single game in the local terminal.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	input      core.InputFrame
	state      core.GameState
	quitting   bool
	scoreSaved bool // The current game over already banked its score
}

// NewModel wraps game in a Bubble Tea model.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		input:  core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update dispatches keys, resizes and ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// bankScore saves the current score once per finished run. Safe to call
// every tick; it no-ops until there is something to save.
func (m *Model) bankScore() {
	if m.scoreSaved || m.state.Score == 0 || m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.game.ID(), m.state.Score)
	m.scoreSaved = true
}

// logRuns appends finished board attempts to the run log.
func (m *Model) logRuns(events []core.Event) {
	if m.store == nil {
		return
	}
	for _, e := range events {
		switch e.Kind {
		case core.EventLevelEscaped, core.EventPlayerCaught, core.EventPlayerFell:
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.RecordRun(m.game.ID(), e.Level, e.Kind.String(), e.Ticks)
		}
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		// Practice runs never flip GameOver; bank the score on the way out.
		m.bankScore()
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if action, ok := localKeys[msg.String()]; ok {
		m.input.Set(action)
	}
	return m, nil
}

// handleResize restarts the game at the new terminal size. An already
// finished run keeps its game-over screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.state.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart after a finished run reseeds so guards patrol differently
	if m.input.Has(core.ActionRestart) && m.state.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.state = m.game.State()
		m.scoreSaved = false
		m.input.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.input)
	m.state = result.State

	m.logRuns(result.Events)
	if m.state.GameOver {
		m.bankScore()
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot dumps the rendered screen to ~/.tilt-escape/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".tilt-escape", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run plays game in the local terminal until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(NewModel(game, store, cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
