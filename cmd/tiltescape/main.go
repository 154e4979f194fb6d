// tiltescape is a terminal stealth game: tilt the board to roll a ball
// past patrolling guards and slip off the edge of the map.
//
// Usage:
//
//	tiltescape list              - List games and bundled boards
//	tiltescape play [game]       - Play a game (default: escape)
//	tiltescape menu              - Start menu to pick games interactively
//	tiltescape serve             - Start SSH server for remote play
//	tiltescape scores [game]     - Show high scores (all games if omitted)
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tilt-escape/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilt-escape/internal/core"
	// Importing the game package also registers its modes
	"github.com/vovakirdan/tilt-escape/internal/games/escape"
	"github.com/vovakirdan/tilt-escape/internal/platform/tui"
	"github.com/vovakirdan/tilt-escape/internal/storage"
)

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tiltescape",
		Short: "Tilt Escape - Dodge the guards in your terminal",
		Long: `Tilt Escape is a terminal stealth game. Tilt the board to roll your
ball past patrolling guards, avoid the holes, and escape off the map.

Available commands:
  list     - Show games and bundled boards
  play     - Play directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and run stats

Examples:
  tiltescape list
  tiltescape play
  tiltescape menu
  tiltescape serve --ssh :2222
  tiltescape scores escape`,
	}

	cmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	cmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	cmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilt-escape/scores.db", "Path to scores database")

	cmd.AddCommand(listCmd, playCmd, menuCmd, serveCmd, scoresCmd)
	return cmd
}

// openStore opens the scores database. On failure it warns and returns
// nil; play continues without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// terminalConfig builds the runtime config from the current terminal
// size and the global flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// pickEscapeMode runs the mode/board selector and resolves the concrete
// game id. An empty id with a nil error means the user backed out.
func pickEscapeMode(cfg core.RuntimeConfig) (string, core.RuntimeConfig, error) {
	selection, cfg, err := tui.RunEscapeModeSelector(cfg)
	if err != nil || selection == nil {
		return "", cfg, err
	}

	id := "escape"
	if selection.Mode == tui.EscapeModePractice {
		id = "escape_practice"
	}
	if selection.Level > 0 {
		escape.SetStartLevel(selection.Level)
	}
	return id, cfg, nil
}
