// Package tui is the Bubble Tea layer: the local game loop, key mapping,
// menus, and the screen renderer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation frame.
type TickMsg time.Time

// tickCmd schedules the next frame at the given ticks per second.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
