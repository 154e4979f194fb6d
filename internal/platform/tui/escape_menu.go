package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilt-escape/internal/core"
	"github.com/vovakirdan/tilt-escape/internal/games/escape"
)

// EscapeMode is the chosen way to play.
type EscapeMode int

const (
	EscapeModeCampaign EscapeMode = iota
	EscapeModePractice
)

// EscapeSelection is what the mode menu produced.
type EscapeSelection struct {
	Mode  EscapeMode
	Level int // 0 = start from beginning, 1-N = specific board
}

// EscapeModeModel is the two-screen picker: game mode first, then a
// board when the mode needs one.
type EscapeModeModel struct {
	cursor       int
	boardCursor  int
	pickingBoard bool
	pendingMode  EscapeMode // Mode the board picker feeds into
	width        int
	height       int
	keys         *KeyMapper
	selection    EscapeSelection
	choosing     bool
	quitting     bool
	back         bool
}

// NewEscapeModeModel creates the picker at the given terminal size.
func NewEscapeModeModel(width, height int) EscapeModeModel {
	return EscapeModeModel{
		width:    width,
		height:   height,
		keys:     NewKeyMapper(),
		choosing: true,
	}
}

// Init implements tea.Model.
func (m EscapeModeModel) Init() tea.Cmd {
	return nil
}

// Update reacts to key presses and terminal resizes.
func (m EscapeModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// modeRows are the entries on the first screen; handleModeKey switches
// on their positions.
func modeRows() []string {
	return []string{
		fmt.Sprintf("Campaign (%d boards)", len(escape.LevelNames())),
		"Start from Board...",
		"Practice a Board...",
	}
}

func (m EscapeModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKeyToMenuAction(msg)
	if m.pickingBoard {
		return m.handleBoardKey(action)
	}
	return m.handleModeKey(action)
}

func (m EscapeModeModel) handleModeKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(modeRows())-1 {
			m.cursor++
		}

	case MenuActionSelect:
		switch m.cursor {
		case 0:
			m.choosing = false
			m.selection = EscapeSelection{Mode: EscapeModeCampaign}
			return m, tea.Quit
		case 1:
			m.pendingMode = EscapeModeCampaign
			m.pickingBoard = true
			m.boardCursor = 0
		case 2:
			m.pendingMode = EscapeModePractice
			m.pickingBoard = true
			m.boardCursor = 0
		}

	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m EscapeModeModel) handleBoardKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.boardCursor > 0 {
			m.boardCursor--
		}

	case MenuActionDown:
		if m.boardCursor < len(escape.LevelNames())-1 {
			m.boardCursor++
		}

	case MenuActionSelect:
		m.choosing = false
		m.selection = EscapeSelection{
			Mode:  m.pendingMode,
			Level: m.boardCursor + 1, // 1-indexed
		}
		return m, tea.Quit

	case MenuActionBack:
		m.pickingBoard = false
	}

	return m, nil
}

// View renders whichever screen is active.
func (m EscapeModeModel) View() string {
	if m.quitting {
		return ""
	}
	if m.pickingBoard {
		return m.viewBoardPicker()
	}
	return m.viewModePicker()
}

func (m EscapeModeModel) viewModePicker() string {
	var b strings.Builder
	center := func(s string) {
		b.WriteString(centerText(s, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	center("T I L T   E S C A P E")
	b.WriteString("\n")
	center("Select game mode:")
	b.WriteString("\n")

	for i, row := range modeRows() {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		center(marker + row)
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

func (m EscapeModeModel) viewBoardPicker() string {
	var b strings.Builder
	center := func(s string) {
		b.WriteString(centerText(s, m.width))
		b.WriteString("\n")
	}

	title := "SELECT BOARD"
	if m.pendingMode == EscapeModePractice {
		title = "PRACTICE BOARD"
	}

	b.WriteString("\n")
	center(title)
	b.WriteString("\n")

	for i, name := range escape.LevelNames() {
		marker := "  "
		if i == m.boardCursor {
			marker = "> "
		}
		center(fmt.Sprintf("%s%2d. %s", marker, i+1, name))
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

// Selected returns the selection, nil while still choosing.
func (m EscapeModeModel) Selected() *EscapeSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing reports whether no selection has been made yet.
func (m EscapeModeModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting reports whether the user quit out of the picker.
func (m EscapeModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack reports whether the user backed out to the previous menu.
func (m EscapeModeModel) WantsBack() bool {
	return m.back
}

// RunEscapeModeSelector shows the picker in the local terminal. A nil
// selection means the user quit or backed out.
func RunEscapeModeSelector(cfg core.RuntimeConfig) (*EscapeSelection, core.RuntimeConfig, error) {
	p := tea.NewProgram(NewEscapeModeModel(cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := final.(EscapeModeModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}
	return m.Selected(), cfg, nil
}
