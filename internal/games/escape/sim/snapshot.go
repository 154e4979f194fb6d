package sim

// GuardSnapshot captures one guard's observable state.
type GuardSnapshot struct {
	ID       int
	PosX     float64
	PosY     float64
	VelX     float64
	VelY     float64
	Look     LookDirection
	CurrentX float64
	CurrentY float64
	NextX    float64
	NextY    float64
}

// Snapshot captures the complete world state for determinism testing and
// replay.
type Snapshot struct {
	LevelIndex int
	LevelName  string
	BoardW     int
	BoardH     int
	PlayerX    float64
	PlayerY    float64
	VelX       float64
	VelY       float64
	Guards     []GuardSnapshot
}

// Snapshot returns the current world snapshot for determinism
// verification.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		LevelIndex: w.index,
		LevelName:  w.LevelName(),
		BoardW:     w.boardW,
		BoardH:     w.boardH,
		PlayerX:    w.level.Player.Pos.X,
		PlayerY:    w.level.Player.Pos.Y,
		VelX:       w.level.Player.Vel.X,
		VelY:       w.level.Player.Vel.Y,
	}
	for _, g := range w.level.Guards {
		s.Guards = append(s.Guards, GuardSnapshot{
			ID:       g.ID,
			PosX:     g.Pos.X,
			PosY:     g.Pos.Y,
			VelX:     g.Vel.X,
			VelY:     g.Vel.Y,
			Look:     g.Vision.Direction,
			CurrentX: g.current.X,
			CurrentY: g.current.Y,
			NextX:    g.next.X,
			NextY:    g.next.Y,
		})
	}
	return s
}
