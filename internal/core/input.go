package core

// Action is a semantic game input, decoupled from physical keys so the
// same game logic serves local and SSH play.
type Action int

const (
	ActionNone      Action = iota
	ActionTiltLeft         // A, Left arrow - tilt the board left
	ActionTiltRight        // D, Right arrow - tilt the board right
	ActionTiltUp           // W, Up arrow - tilt the board up
	ActionTiltDown         // S, Down arrow - tilt the board down
	ActionCenter           // Space - level the board (cancel all tilt)
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
)

var actionNames = [...]string{
	ActionNone:      "None",
	ActionTiltLeft:  "TiltLeft",
	ActionTiltRight: "TiltRight",
	ActionTiltUp:    "TiltUp",
	ActionTiltDown:  "TiltDown",
	ActionCenter:    "Center",
	ActionConfirm:   "Confirm",
	ActionBack:      "Back",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
	ActionPause:     "Pause",
}

// String returns the action's name.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame collects the actions seen during one simulation tick. A
// frame only answers "was this triggered"; press order is not kept.
type InputFrame struct {
	actions map[Action]bool
}

// NewInputFrame creates an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make(map[Action]bool)}
}

// Set marks an action as triggered this frame.
func (f *InputFrame) Set(a Action) {
	if f.actions == nil {
		f.actions = make(map[Action]bool)
	}
	f.actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.actions[a]
}

// Clear drops all actions, readying the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.actions {
		delete(f.actions, k)
	}
}

// Clone returns an independent copy of the frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.actions {
		c.actions[k] = v
	}
	return c
}
