package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilt-escape/internal/core"
	"github.com/vovakirdan/tilt-escape/internal/registry"
	"github.com/vovakirdan/tilt-escape/internal/storage"
)

const (
	// Terminals narrower than this stack the game tabs above the table
	// instead of showing the sidebar.
	sidebarMinTerm = 80
	sidebarCols    = 20
	scoreRowLimit  = 100
)

// scoreboardView selects which dataset the table shows.
type scoreboardView int

const (
	viewScores scoreboardView = iota
	viewBoards
)

// ScoreboardKeyMap holds the scoreboard bindings in bubbles/key form so
// the help bubble can render them.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	NextGame   key.Binding
	PrevGame   key.Binding
	ToggleView key.Binding
	Back       key.Binding
	Quit       key.Binding
}

func bind(label, action string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, action))
}

// DefaultScoreboardKeyMap returns the standard scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:         bind("up/k", "scroll up", "up", "k"),
		Down:       bind("down/j", "scroll down", "down", "j"),
		Left:       bind("left/h", "prev game", "left", "h"),
		Right:      bind("right/l", "next game", "right", "l"),
		NextGame:   bind("tab", "next game", "tab"),
		PrevGame:   bind("S-tab", "prev game", "shift+tab"),
		ToggleView: bind("v", "scores/boards", "v"),
		Back:       bind("esc/b", "back", "esc", "b"),
		Quit:       bind("q", "quit", "q", "ctrl+c"),
	}
}

// ShortHelp is the one-line strip under the table.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.ToggleView, k.Back}
}

// FullHelp is the expanded help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame, k.ToggleView},
		{k.Back, k.Quit},
	}
}

// ScoreboardModel is the Bubble Tea model for the score browser. It pages
// between registered games and, per game, between the high-score list and
// the per-board run statistics.
type ScoreboardModel struct {
	games  []registry.GameInfo
	active int // index into games

	store  *storage.Store
	scores []storage.ScoreEntry
	boards []storage.LevelStats
	view   scoreboardView

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
	wide   bool // sidebar layout fits

	quitting  bool
	goingBack bool
}

// NewScoreboardModel builds the score browser sized for the given terminal.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
		wide:   width >= sidebarMinTerm,
	}
	m.help.ShowAll = false
	m.table = m.buildTable()
	if len(m.games) > 0 {
		m.refresh(m.games[0].ID)
	}
	return m
}

// buildTable makes a fresh table for the active view. The score table gets
// responsive column widths; the board table is fixed since its six columns
// already fit the narrow layout.
func (m *ScoreboardModel) buildTable() table.Model {
	var cols []table.Column
	switch m.view {
	case viewBoards:
		cols = []table.Column{
			{Title: "Board", Width: 10},
			{Title: "Runs", Width: 6},
			{Title: "Escaped", Width: 8},
			{Title: "Caught", Width: 7},
			{Title: "Fell", Width: 5},
			{Title: "Best", Width: 7},
		}
	default:
		cols = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 18},
		}
		avail := m.width - 4
		if m.wide {
			avail -= sidebarCols + 3
		}
		if avail > 40 {
			cols[1].Width = 12
			cols[2].Width = core.Min(avail-22, 20)
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(m.height-8),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)
	return t
}

// refresh pulls the active view's rows for the given game. Query errors
// leave the table empty; the browser works without a store at all.
func (m *ScoreboardModel) refresh(gameID string) {
	m.scores = nil
	m.boards = nil
	if m.store != nil {
		switch m.view {
		case viewBoards:
			m.boards, _ = m.store.GetLevelStats(gameID)
		default:
			m.scores, _ = m.store.TopScores(gameID, scoreRowLimit)
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	var rows []table.Row
	switch m.view {
	case viewBoards:
		for _, s := range m.boards {
			best := "-"
			if s.BestTicks > 0 {
				best = fmt.Sprintf("%d", s.BestTicks)
			}
			rows = append(rows, table.Row{
				s.LevelName,
				fmt.Sprintf("%d", s.Attempts),
				fmt.Sprintf("%d", s.Escapes),
				fmt.Sprintf("%d", s.Catches),
				fmt.Sprintf("%d", s.Falls),
				best,
			})
		}
	default:
		for i, s := range m.scores {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// cycleGame moves the game selection by delta, wrapping at both ends.
func (m *ScoreboardModel) cycleGame(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.active = (m.active + delta + len(m.games)) % len(m.games)
	m.refresh(m.games[m.active].ID)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd { return nil }

// Update handles scoreboard input. Keys not claimed here fall through to
// the table bubble, which owns scrolling.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame), key.Matches(msg, m.keys.Right):
			m.cycleGame(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevGame), key.Matches(msg, m.keys.Left):
			m.cycleGame(-1)
			return m, nil

		case key.Matches(msg, m.keys.ToggleView):
			if m.view == viewScores {
				m.view = viewBoards
			} else {
				m.view = viewScores
			}
			m.table = m.buildTable()
			if len(m.games) > 0 {
				m.refresh(m.games[m.active].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.wide = m.width >= sidebarMinTerm
		m.help.Width = msg.Width
		m.table = m.buildTable()
		m.fillRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the score browser.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	heading := "HIGH SCORES"
	if m.view == viewBoards {
		heading = "BOARD STATS"
	}
	if len(m.games) > 0 {
		heading = fmt.Sprintf("%s - %s", heading, m.games[m.active].Title)
	}
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText(heading, m.width)))
	b.WriteString("\n\n")
	if m.wide {
		b.WriteString(m.sideBySide())
	} else {
		b.WriteString(m.stacked())
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)))
	return b.String()
}

// sideBySide renders the game list beside the table.
func (m ScoreboardModel) sideBySide() string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	lines := []string{"Games", strings.Repeat("-", sidebarCols-4)}
	for i, g := range m.games {
		marker := "  "
		style := lipgloss.NewStyle()
		if i == m.active {
			marker = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		lines = append(lines, style.Render(marker+trimTitle(g.Title, sidebarCols-6)))
	}
	sidebar := frame.Width(sidebarCols).Render(strings.Join(lines, "\n") + "\n")
	body := frame.Render(m.tableOrEmpty())
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", body)
}

// stacked renders game tabs above the table for narrow terminals.
func (m ScoreboardModel) stacked() string {
	plain := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeTab := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		short := trimTitle(g.Title, 10)
		if i == m.active {
			tabs[i] = activeTab.Render(short)
		} else {
			tabs[i] = plain.Render(" " + short + " ")
		}
	}
	row := strings.Join(tabs, " ")
	if len(row) > m.width-4 {
		row = fmt.Sprintf("< %s >", m.games[m.active].Title)
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(centerText(row, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(frame.Render(m.tableOrEmpty()), m.width))
	return b.String()
}

func trimTitle(s string, max int) string {
	if len(s) > max {
		return s[:max-1] + "."
	}
	return s
}

// tableOrEmpty renders the table, or a hint when nothing is recorded yet.
func (m ScoreboardModel) tableOrEmpty() string {
	empty := len(m.scores) == 0
	hint := "No scores recorded yet.\nPlay a game to set a high score!"
	if m.view == viewBoards {
		empty = len(m.boards) == 0
		hint = "No runs recorded yet.\nPlay a board to log a run!"
	}
	if !empty {
		return m.table.View()
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4).
		Render(hint)
}

// IsGoingBack reports that the user backed out to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports that the user quit outright.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the score browser in its own program. The returned
// flag is true when the user backed out to the menu rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (bool, error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(ScoreboardModel); ok {
		return m.IsGoingBack(), nil
	}
	return false, nil
}
