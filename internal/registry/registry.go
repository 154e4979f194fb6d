// Package registry is the global table of playable game modes. Each mode
// registers a factory from its init() so the platform can list and
// instantiate games without importing them directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tilt-escape/internal/core"
)

// Game is the contract every playable mode implements. Implementations
// hold pure simulation state; input mapping, timing and terminal output
// all live in the platform layer, so nothing here may depend on Bubble
// Tea.
type Game interface {
	// ID is the stable identifier used for CLI commands and score
	// storage, e.g. "escape" or "escape_practice".
	ID() string

	// Title is the human-readable name shown in menus.
	Title() string

	// Reset puts the game into its initial state. Called once before the
	// first tick and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick under the given
	// input frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. The buffer arrives
	// pre-cleared.
	Render(dst *core.Screen)

	// State reports score, pause and game-over status.
	State() core.GameState
}

// GameInfo is the listing entry for one registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh instance of a game.
type Factory func() Game

type entry struct {
	title string
	make  Factory
}

var (
	mu    sync.RWMutex
	games = make(map[string]entry)
)

// Register adds a game factory under id. Meant to be called from a
// game package's init(); a duplicate id is a programming error and
// panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := games[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// Probe a throwaway instance once for the display title
	games[id] = entry{title: f().Title(), make: f}
}

// List returns every registered game, sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(games))
	for id, e := range games {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := games[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.make(), nil
}

// Exists reports whether a game is registered under id.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := games[id]
	return ok
}
