package core

// RuntimeConfig is handed to a game at Reset. Screen dimensions drive
// board placement; TickRate fixes the simulation dt; Seed makes a run
// reproducible.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns available
	ScreenH  int   // Terminal rows available
	TickRate int   // Fixed simulation ticks per second
	Seed     int64 // RNG seed, 0 = pick from the clock in the platform layer
}

// DefaultConfig returns the config used when the terminal size cannot
// be detected.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the platform-visible status of a game: the running
// score and whether the game has ended or sits paused.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult carries the state after one tick plus the events the tick
// produced (board escaped, caught, fell). The platform persists events
// as run records.
type StepResult struct {
	State  GameState
	Events []Event
}
