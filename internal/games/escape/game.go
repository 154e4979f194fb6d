// Package escape implements Tilt Escape, a stealth maze game: the player
// tilts the board to roll a marble past patrolling guards and out through
// a gap in the wall, without falling into holes or crossing a guard's
// watched cell.
package escape

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilt-escape/internal/config"
	"github.com/vovakirdan/tilt-escape/internal/core"
	"github.com/vovakirdan/tilt-escape/internal/games/escape/levels"
	"github.com/vovakirdan/tilt-escape/internal/games/escape/sim"
	"github.com/vovakirdan/tilt-escape/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModePractice Mode = "practice"
)

// Outcome flash duration in ticks (~0.75s at 60 FPS).
const flashDuration = 45

// Package-level variables for config/difficulty (like breakout pattern)
var (
	configPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel int
	levelDir           string
	logger             *log.Logger
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetStartLevel sets the starting board (1-based). 0 means the first board.
// Campaign runs consume the selection; practice keeps drilling it.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start board.
func GetStartLevel() int {
	return selectedStartLevel
}

// SetLevelDir points the game at a directory of .map files instead of the
// bundled board pack.
func SetLevelDir(dir string) {
	levelDir = dir
}

// SetLogger routes board-loading errors somewhere visible. The default
// discards them, which is what a fullscreen terminal session wants.
func SetLogger(l *log.Logger) {
	logger = l
}

// newSource builds the level source honoring a custom board directory.
func newSource() sim.Source {
	if levelDir != "" {
		dir, err := levels.NewDir(levelDir, logger)
		if err == nil {
			return dir
		}
		if logger != nil {
			logger.Error("could not open level directory", "dir", levelDir, "error", err)
		}
	}
	return levels.Bundled()
}

// LevelNames returns the board names the game would rotate through.
func LevelNames() []string {
	return newSource().Names()
}

// Game implements the Tilt Escape game.
type Game struct {
	mode Mode
	rng  *rand.Rand

	world *sim.World

	cfg        config.EscapeConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
	dt         float64

	tilt sim.TiltState

	tick         uint64
	score        int // Boards cleared this run
	attemptTicks int // Ticks survived on the current board

	won      bool
	paused   bool
	tooSmall bool

	flashText  string
	flashColor core.Color
	flashTicks int

	// Render layout
	hudHeight  int
	mapOffsetX int
	mapOffsetY int
}

// New creates a new campaign mode game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewPractice creates a practice game that drills a single board.
func NewPractice() *Game {
	return &Game{mode: ModePractice}
}

func init() {
	registry.Register("escape", func() registry.Game {
		return New()
	})
	registry.Register("escape_practice", func() registry.Game {
		return NewPractice()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return "escape_practice"
	}
	return "escape"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Tilt Escape (Practice)"
	}
	return "Tilt Escape"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	// Load game config
	cfg, err := config.LoadEscape(configPath)
	if err != nil {
		cfg = config.DefaultEscapeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyEscapePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	g.tick = 0
	g.score = 0
	g.attemptTicks = 0
	g.won = false
	g.paused = false
	g.flashText = ""
	g.flashTicks = 0
	g.tilt = sim.TiltState{}
	g.hudHeight = 2

	src := newSource()
	if g.mode == ModePractice {
		src = g.practiceSource(src)
	}

	p := sim.DefaultParams()
	p.Gravity = cfg.Physics.Gravity
	p.TiltAngleDeg = cfg.Physics.TiltAngleDeg
	p.PlayerRadius = cfg.Player.Radius
	p.GuardRadius = cfg.Guards.Radius
	p.GuardVision.Radius = cfg.Guards.VisionRadius
	p.GuardVision.Distance = cfg.Guards.VisionDistance
	p.MaxWaitSeconds = g.difficulty.PauseSeconds(cfg.Guards.MaxWaitSeconds, 0, 0)
	p.MaxLookSeconds = g.difficulty.LookSeconds(cfg.Guards.MaxLookSeconds, 0, 0)
	p.Seed = runtime.Seed

	g.world = sim.NewWorld(src, p, logger)

	if g.mode == ModeCampaign && selectedStartLevel > 0 && selectedStartLevel <= g.world.LevelCount() {
		g.world.SetLevel(selectedStartLevel - 1)
		selectedStartLevel = 0 // Reset after use
	}

	g.layoutBoard()
}

// practiceSource narrows the source to the selected board.
func (g *Game) practiceSource(src sim.Source) sim.Source {
	names := src.Names()
	if len(names) == 0 {
		return src
	}
	name := names[0]
	if selectedStartLevel > 0 && selectedStartLevel <= len(names) {
		name = names[selectedStartLevel-1]
	}
	single, err := levels.Single(src, name)
	if err != nil {
		return src
	}
	return single
}

// layoutBoard recomputes screen placement for the current board. Boards
// differ in size, so this runs again after every level switch.
func (g *Game) layoutBoard() {
	boardW, boardH := g.world.BoardSize()

	requiredW := boardW + 2
	requiredH := boardH + g.hudHeight + 1
	g.tooSmall = g.runtime.ScreenW < requiredW || g.runtime.ScreenH < requiredH
	if g.tooSmall {
		return
	}

	g.mapOffsetX = (g.runtime.ScreenW - boardW) / 2
	g.mapOffsetY = g.hudHeight
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart: a full new run, not the per-board reset that
	// already happens on capture or falling.
	if input.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.flashTicks > 0 {
		g.flashTicks--
	}

	g.processInput(input)

	prevName := g.world.LevelName()
	outcome := g.world.Update(g.tilt, g.dt)

	var events []core.Event
	switch outcome {
	case sim.OutcomeEscaped:
		g.score++
		events = append(events, core.Event{
			Kind:  core.EventLevelEscaped,
			Level: prevName,
			Ticks: g.attemptTicks,
		})
		g.flash("Escaped!", core.ColorBrightGreen)
		if g.mode == ModeCampaign && g.world.LevelIndex() == 0 {
			g.won = true
			events = append(events, core.Event{
				Kind:  core.EventGameWon,
				Level: prevName,
				Ticks: g.attemptTicks,
			})
		}
	case sim.OutcomeCaught:
		events = append(events, core.Event{
			Kind:  core.EventPlayerCaught,
			Level: prevName,
			Ticks: g.attemptTicks,
		})
		g.flash("Caught!", core.ColorBrightRed)
	case sim.OutcomeFell:
		events = append(events, core.Event{
			Kind:  core.EventPlayerFell,
			Level: prevName,
			Ticks: g.attemptTicks,
		})
		g.flash("Fell!", core.ColorOrange)
	}

	if outcome != sim.OutcomeNone {
		g.attemptTicks = 0
		g.world.SetTimerCeilings(
			g.difficulty.PauseSeconds(g.cfg.Guards.MaxWaitSeconds, g.score, int(g.tick)),
			g.difficulty.LookSeconds(g.cfg.Guards.MaxLookSeconds, g.score, int(g.tick)),
		)
		g.layoutBoard()
	} else {
		g.attemptTicks++
	}

	return core.StepResult{State: g.State(), Events: events}
}

// processInput latches tilt state. A held tilt persists across frames;
// tilting the opposite way replaces it and Center levels the board.
func (g *Game) processInput(input core.InputFrame) {
	if input.Has(core.ActionCenter) {
		g.tilt = sim.TiltState{}
	}
	if input.Has(core.ActionTiltLeft) {
		g.tilt.Left = true
		g.tilt.Right = false
	}
	if input.Has(core.ActionTiltRight) {
		g.tilt.Right = true
		g.tilt.Left = false
	}
	if input.Has(core.ActionTiltUp) {
		g.tilt.Up = true
		g.tilt.Down = false
	}
	if input.Has(core.ActionTiltDown) {
		g.tilt.Down = true
		g.tilt.Up = false
	}
}

// flash shows a short outcome note in the HUD.
func (g *Game) flash(text string, c core.Color) {
	g.flashText = text
	g.flashColor = c
	g.flashTicks = flashDuration
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderGuards(dst)
	g.renderPlayer(dst)

	switch {
	case g.won:
		g.renderOverlay(dst, "You escaped them all!", fmt.Sprintf("Final Score: %d", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.mode == ModePractice {
		hud = fmt.Sprintf(" Tilt Escape (Practice) — Board: %s  Score: %d  Time: %.1fs",
			g.world.LevelName(), g.score, float64(g.attemptTicks)*g.dt)
	} else {
		hud = fmt.Sprintf(" Tilt Escape — Board: %d/%d  Score: %d  Time: %.1fs",
			g.world.LevelIndex()+1, g.world.LevelCount(), g.score, float64(g.attemptTicks)*g.dt)
	}
	if t := g.tiltGlyph(); t != "" {
		hud += "  Tilt: " + t
	}

	dst.DrawText(0, 0, hud)
	if g.flashTicks > 0 {
		dst.DrawTextColored(len(hud)+2, 0, g.flashText, g.flashColor)
	}

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// tiltGlyph shows which way the board is held.
func (g *Game) tiltGlyph() string {
	var b strings.Builder
	if g.tilt.Left {
		b.WriteRune('←')
	}
	if g.tilt.Right {
		b.WriteRune('→')
	}
	if g.tilt.Up {
		b.WriteRune('↑')
	}
	if g.tilt.Down {
		b.WriteRune('↓')
	}
	return b.String()
}

// renderBoard draws walls and holes.
func (g *Game) renderBoard(dst *core.Screen) {
	level := g.world.Level()
	for _, wall := range level.Walls {
		g.setBoardCell(dst, wall.Pos, '#', core.ColorDefault)
	}
	for _, hole := range level.Holes {
		g.setBoardCell(dst, hole.Pos, 'O', core.ColorGray)
	}
}

// renderGuards draws each guard and the cell it watches. Watch cells can
// point off the board when a guard faces a border; those are not drawn.
func (g *Game) renderGuards(dst *core.Screen) {
	boardW, boardH := g.world.BoardSize()
	board := core.NewRect(0, 0, boardW, boardH)
	for _, guard := range g.world.Level().Guards {
		watched := guard.WatchedCell().Round()
		if board.Contains(int(watched.X), int(watched.Y)) {
			g.setBoardCell(dst, watched, '*', core.ColorRed)
		}
		g.setBoardCell(dst, guard.Pos.Round(), 'G', core.ColorBrightRed)
	}
}

// renderPlayer draws the marble.
func (g *Game) renderPlayer(dst *core.Screen) {
	g.setBoardCell(dst, g.world.Level().Player.Pos.Round(), '@', core.ColorBrightYellow)
}

// setBoardCell translates board cell coordinates to the screen.
func (g *Game) setBoardCell(dst *core.Screen, cell sim.Vec2, r rune, c core.Color) {
	x := g.mapOffsetX + int(cell.X)
	y := g.mapOffsetY + int(cell.Y)
	dst.SetCell(x, y, r, c)
}

// renderOverlay draws a centered message box over the board.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(line1))/2, boxY+1, line1)
	dst.DrawText(boxX+(boxW-len(line2))/2, boxY+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.won,
		Paused:   g.paused,
	}
}

// World exposes the simulation for inspection.
func (g *Game) World() *sim.World {
	return g.world
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Score: %d, Board: %s\n", g.tick, g.score, g.world.LevelName()))
	p := g.world.Level().Player
	b.WriteString(fmt.Sprintf("Player: (%.2f, %.2f) vel (%.2f, %.2f)\n", p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y))
	b.WriteString(fmt.Sprintf("Guards: %d, Won: %v, Paused: %v\n", len(g.world.Level().Guards), g.won, g.paused))
	return b.String()
}
