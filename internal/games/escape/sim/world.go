package sim

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Source yields level data by name. Implementations include the embedded
// board pack and a filesystem directory.
type Source interface {
	// Names returns the level names in rotation order.
	Names() []string

	// Load returns the raw bytes for one of the names.
	Load(name string) ([]byte, error)
}

// Outcome reports how a frame ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeEscaped
	OutcomeCaught
	OutcomeFell
)

// String returns a short lowercase name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeEscaped:
		return "escaped"
	case OutcomeCaught:
		return "caught"
	case OutcomeFell:
		return "fell"
	default:
		return "none"
	}
}

// World drives one run of the game: it owns the current level, rotates
// through the source's boards and advances the simulation one tilt frame
// at a time. All methods must be called from a single goroutine.
type World struct {
	params Params
	source Source
	names  []string
	index  int
	level  *Level
	boardW int
	boardH int
	rng    *rand.Rand
	log    *log.Logger
}

// NewWorld builds a world over the source's boards and loads the first
// one. A nil Params.Rand is replaced by a generator seeded from
// Params.Seed; a nil logger discards output.
func NewWorld(src Source, p Params, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := p.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(p.Seed))
	}
	w := &World{
		params: p,
		source: src,
		names:  src.Names(),
		rng:    rng,
		log:    logger,
	}
	w.loadCurrent()
	return w
}

// Update advances the simulation by one frame. Level transitions are
// decided first, from the positions the previous frame left behind; a
// transition consumes the whole frame, so the replacement board starts
// untouched at its spawn layout.
func (w *World) Update(tilt TiltState, dt float64) Outcome {
	switch {
	case w.Escaped():
		w.NextLevel()
		return OutcomeEscaped
	case w.level.CaughtByGuard():
		w.Reset()
		return OutcomeCaught
	case w.level.FellInHole():
		w.Reset()
		return OutcomeFell
	}

	for _, g := range w.level.Guards {
		g.Advance(dt)
	}

	angle := w.params.TiltAngleDeg * math.Pi / 180
	acc := accelerationFor(tilt, w.params.Gravity, angle)
	integrate(&w.level.Player, acc, dt)
	w.resolveWallCollisions()

	return OutcomeNone
}

// Escaped reports whether the player has left the board. The playable
// area extends one cell past the far edges, so a marble rolling through
// an edge gap has fully cleared the maze before the level switches.
func (w *World) Escaped() bool {
	p := w.level.Player.Pos
	return p.X < 0 || p.X > float64(w.boardW+1) ||
		p.Y < 0 || p.Y > float64(w.boardH+1)
}

// resolveWallCollisions pushes the player out of every overlapping wall,
// one wall at a time, zeroing the velocity component along the push axis.
func (w *World) resolveWallCollisions() {
	for _, wall := range w.level.Walls {
		c := w.level.CheckWallCollision(wall)
		if !c.Hit {
			continue
		}
		p := &w.level.Player
		switch c.Dir {
		case DirLeft:
			p.Vel.X = 0
			p.Pos.X += p.Radius - math.Abs(c.Diff.X)
		case DirRight:
			p.Vel.X = 0
			p.Pos.X -= p.Radius - math.Abs(c.Diff.X)
		case DirUp:
			p.Vel.Y = 0
			p.Pos.Y += p.Radius - math.Abs(c.Diff.Y)
		default:
			// DirDown and DirNone resolve upward.
			p.Vel.Y = 0
			p.Pos.Y -= p.Radius - math.Abs(c.Diff.Y)
		}
	}
}

// loadCurrent replaces the level with a fresh parse of the current name.
// Source failures are logged, not fatal: the world continues with an
// empty level.
func (w *World) loadCurrent() {
	if len(w.names) == 0 {
		w.level = &Level{}
		w.boardW, w.boardH = 0, 0
		return
	}
	name := w.names[w.index]
	data, err := w.source.Load(name)
	if err != nil {
		w.log.Error("could not load level", "name", name, "error", err)
		w.level = &Level{}
		w.boardW, w.boardH = 0, 0
		return
	}
	p := w.params
	p.Rand = w.rng
	w.level = Parse(data, p)
	w.boardW = w.level.Length()
	w.boardH = w.level.Height()
}

// Reset reloads the current level from the source, restoring the spawn
// layout.
func (w *World) Reset() {
	w.loadCurrent()
}

// NextLevel advances the rotation by one board, wrapping to the first
// after the last, and loads it.
func (w *World) NextLevel() {
	if len(w.names) == 0 {
		return
	}
	w.index = (w.index + 1) % len(w.names)
	w.loadCurrent()
}

// SetLevel jumps to the board at index i. Out-of-range indexes are
// ignored.
func (w *World) SetLevel(i int) {
	if i < 0 || i >= len(w.names) {
		return
	}
	w.index = i
	w.loadCurrent()
}

// SetTimerCeilings changes the dwell and look ceilings used when guards
// are constructed. It affects the next load; guards already on the board
// keep the thresholds they drew.
func (w *World) SetTimerCeilings(maxWait, maxLook float64) {
	w.params.MaxWaitSeconds = maxWait
	w.params.MaxLookSeconds = maxLook
}

// Level exposes the live level for rendering and inspection.
func (w *World) Level() *Level {
	return w.level
}

// LevelName returns the name of the current board, or "" for an empty
// rotation.
func (w *World) LevelName() string {
	if len(w.names) == 0 {
		return ""
	}
	return w.names[w.index]
}

// LevelIndex returns the current position in the rotation.
func (w *World) LevelIndex() int {
	return w.index
}

// LevelCount returns the number of boards in the rotation.
func (w *World) LevelCount() int {
	return len(w.names)
}

// BoardSize returns the current board's width and height in cells.
func (w *World) BoardSize() (int, int) {
	return w.boardW, w.boardH
}
