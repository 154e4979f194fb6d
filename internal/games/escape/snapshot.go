package escape

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWin         GameStateType = "win"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the wrapper state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Mode         string
	Score        int
	AttemptTicks int
	LevelIndex   int
	LevelName    string
	PlayerX      float64
	PlayerY      float64
	VelX         float64
	VelY         float64
	GuardCount   int
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.paused:
		state = StatePaused
	}

	p := g.world.Level().Player
	return Snapshot{
		Tick:         g.tick,
		Mode:         string(g.mode),
		Score:        g.score,
		AttemptTicks: g.attemptTicks,
		LevelIndex:   g.world.LevelIndex(),
		LevelName:    g.world.LevelName(),
		PlayerX:      p.Pos.X,
		PlayerY:      p.Pos.Y,
		VelX:         p.Vel.X,
		VelY:         p.Vel.Y,
		GuardCount:   len(g.world.Level().Guards),
		State:        state,
	}
}
