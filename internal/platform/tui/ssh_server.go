// Package tui renders games in the terminal, both for local programs and
// for sessions served over SSH via Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tilt-escape/internal/core"
	"github.com/vovakirdan/tilt-escape/internal/games/escape"
	"github.com/vovakirdan/tilt-escape/internal/registry"
	"github.com/vovakirdan/tilt-escape/internal/storage"
)

// SSHServerConfig configures the public game server.
type SSHServerConfig struct {
	Address     string        // host:port to listen on, e.g. ":23234"
	HostKeyPath string        // empty means ~/.tilt-escape/host_key
	DBPath      string        // scores database
	IdleTimeout time.Duration // idle sessions are dropped after this
}

// DefaultSSHServerConfig returns the stock server settings.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.tilt-escape/scores.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer hosts the game over SSH.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// hostKeyFile returns the host key path, defaulting under the user's home,
// and makes sure its directory exists.
func hostKeyFile(cfg SSHServerConfig) (string, error) {
	path := cfg.HostKeyPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".tilt-escape", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// NewSSHServer builds the Wish server. A missing scores database is only a
// warning: sessions then run without persistence.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tiltescape-ssh",
	})

	// Board-loading errors from sessions land in the server log
	escape.SetLogger(logger)

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
	}

	keyPath, err := hostKeyFile(cfg)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, err
	}

	srv := &SSHServer{config: cfg, store: store, logger: logger}
	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.sessionHandler),
			srv.logSessions,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	return srv, nil
}

// sessionHandler builds the per-session Bubble Tea program, sized from the
// session's PTY.
func (s *SSHServer) sessionHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 60,
		Seed:     time.Now().UnixNano(),
	}
	return NewSessionModel(s.store, cfg, sess.User()), []tea.ProgramOption{tea.WithAltScreen()}
}

// logSessions wraps the session handler with start/end log lines.
func (s *SSHServer) logSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.logger.Info("session started", "user", sess.User(), "remote", sess.RemoteAddr().String())
		next(sess)
		s.logger.Info("session ended", "user", sess.User(), "remote", sess.RemoteAddr().String())
	}
}

// ListenAndServe runs the server until SIGINT/SIGTERM, then shuts down.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		err := s.server.ListenAndServe()
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-stop
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown stops accepting sessions and closes the store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen is which surface an SSH session currently shows.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel is the top-level model for one SSH session. It hosts the
// menu and swaps in the game or the score browser, turning their tea.Quit
// commands back into screen switches so only an explicit quit ends the
// session.
type SessionModel struct {
	store  *storage.Store
	config core.RuntimeConfig
	user   string

	active     sessionScreen
	menu       MenuModel
	game       registry.Game
	gameModel  *GameModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session starting at the menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, user string) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		user:   user,
		menu:   NewMenuModel(store, cfg),
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update dispatches to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = ws.Width
		m.config.ScreenH = ws.Height
	}

	switch {
	case m.active == screenGame && m.gameModel != nil:
		return m.updateGame(msg)
	case m.active == screenScores && m.scoreboard != nil:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// backToMenu discards the active screen and rebuilds the menu so sizes and
// best scores are current.
func (m *SessionModel) backToMenu() tea.Cmd {
	m.active = screenMenu
	m.game = nil
	m.gameModel = nil
	m.scoreboard = nil
	m.menu = NewMenuModel(m.store, m.config)
	return m.menu.Init()
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		m.active = screenScores
		return m, sb.Init()
	}

	if picked := m.menu.Selected(); picked != nil {
		game, err := registry.Create(picked.GameID)
		if err != nil {
			// The menu only lists registered games
			return m, nil
		}
		m.game = game
		m.config = m.menu.Config()

		gm := NewGameModel(game, m.store, m.config)
		m.gameModel = &gm
		m.active = screenGame
		return m, gm.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.gameModel = &gm
	}

	if m.gameModel.BackToMenu() {
		return m, m.backToMenu()
	}
	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m, m.backToMenu()
	}
	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.active == screenGame && m.gameModel != nil:
		return m.gameModel.View()
	case m.active == screenScores && m.scoreboard != nil:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// GameModel hosts one game inside a session, with a back-to-menu exit on
// top of the game's own controls.
type GameModel struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	input  core.InputFrame
	state  core.GameState
	keys   *KeyMapper

	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel wraps a game for play inside a session.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		input:  core.NewInputFrame(),
		keys:   NewKeyMapper(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles session game messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if !m.state.GameOver {
			m.game.Reset(m.config)
		}
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// bankScore saves the current score once. Zero scores are not recorded.
func (m *GameModel) bankScore() {
	if m.scoreSaved || m.state.Score == 0 || m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveScore(m.game.ID(), m.state.Score)
	m.scoreSaved = true
}

// logRuns appends finished attempts to the run log.
func (m *GameModel) logRuns(events []core.Event) {
	if m.store == nil {
		return
	}
	for _, e := range events {
		switch e.Kind {
		case core.EventLevelEscaped, core.EventPlayerCaught, core.EventPlayerFell:
			//nolint:errcheck // Best-effort save
			m.store.RecordRun(m.game.ID(), e.Level, e.Kind.String(), e.Ticks)
		}
	}
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.input) {
		// Practice runs never flip GameOver; bank the score on the way out.
		m.bankScore()
		m.quitting = true
		return m, tea.Quit
	}

	// B or Esc leaves for the menu once the run is over or paused
	action := m.keys.MapKeyToMenuAction(msg)
	if action == MenuActionBack && (m.state.GameOver || m.state.Paused) {
		m.backToMenu = true
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
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

// View renders one frame.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports that the player quit the session outright.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports that the player asked for the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
