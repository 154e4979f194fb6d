package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilt-escape/internal/core"
)

// KeyMapper owns the shared key bindings so games and menus agree on
// them and tests can exercise the mapping directly.
type KeyMapper struct{}

// NewKeyMapper returns a mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

var actionKeys = map[string]core.Action{
	"a": core.ActionTiltLeft, "left": core.ActionTiltLeft,
	"d": core.ActionTiltRight, "right": core.ActionTiltRight,
	"w": core.ActionTiltUp, "up": core.ActionTiltUp,
	"s": core.ActionTiltDown, "down": core.ActionTiltDown,
	" ":     core.ActionCenter, // Space levels the board
	"enter": core.ActionConfirm,
	"b": core.ActionBack, "esc": core.ActionBack,
	"p": core.ActionPause,
	"r": core.ActionRestart,
}

// MapKey translates a key message to a game action. The second result
// flags a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" {
		return core.ActionQuit, true
	}
	return actionKeys[key], false
}

// MapKeyToFrame folds a key message into frame and reports whether it
// was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction is a navigation intent inside a menu.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

var menuKeys = map[string]MenuAction{
	"ctrl+c": MenuActionQuit, "q": MenuActionQuit,
	"w": MenuActionUp, "up": MenuActionUp, "k": MenuActionUp,
	"s": MenuActionDown, "down": MenuActionDown, "j": MenuActionDown,
	"enter": MenuActionSelect, " ": MenuActionSelect,
	"b": MenuActionBack, "esc": MenuActionBack,
	"tab": MenuActionScoreboard,
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return menuKeys[msg.String()]
}
