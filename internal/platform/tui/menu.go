package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilt-escape/internal/core"
	"github.com/vovakirdan/tilt-escape/internal/registry"
	"github.com/vovakirdan/tilt-escape/internal/storage"
)

// MenuItem is one selectable row in the game picker.
type MenuItem struct {
	GameID string
	Title  string
	Best   int // High score at menu construction, 0 if none
}

// MenuModel is the Bubble Tea model for the game picker.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	width      int
	height     int
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	quitting   bool
	choice     *MenuItem // Set once the user picks a game
	showScores bool      // Set when the user asks for the scoreboard
}

func bestScore(store *storage.Store, gameID string) int {
	if store == nil {
		return 0
	}
	best, err := store.HighScore(gameID)
	if err != nil {
		return 0
	}
	return best
}

// NewMenuModel builds the picker from the registered games.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		// Practice variants are reached through the mode sub-menu
		if strings.HasSuffix(g.ID, "_practice") {
			continue
		}
		items = append(items, MenuItem{
			GameID: g.ID,
			Title:  g.Title,
			Best:   bestScore(store, g.ID),
		})
	}

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update reacts to key presses and terminal resizes.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			pick := m.items[m.cursor]
			m.choice = &pick
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.showScores = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the picker.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	center := func(s string) {
		b.WriteString(centerText(s, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	center("  T I L T   E S C A P E  ")
	b.WriteString("\n")
	center("Select a game")
	b.WriteString("\n")

	for i, item := range m.items {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		line := marker + item.Title
		if item.Best > 0 {
			line = fmt.Sprintf("%s  (best %d)", line, item.Best)
		}
		center(line)
	}

	b.WriteString("\n")
	center("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit")
	return b.String()
}

// Selected returns the chosen game, nil when nothing was picked.
func (m MenuModel) Selected() *MenuItem {
	return m.choice
}

// IsQuitting reports whether the user quit out of the menu.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the user asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.showScores
}

// Config returns the runtime config, including any resize picked up
// while the menu was showing.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads text on the left so it sits centered in width columns.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return strings.Repeat(" ", (width-len(text))/2) + text
}

// MenuResult is what running the menu produced.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the picker in the local terminal and reports the
// selection.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		res.WantsScoreboard = true
	case m.IsQuitting(), m.Selected() == nil:
		res.Quit = true
	default:
		res.GameID = m.Selected().GameID
	}
	return res, nil
}
