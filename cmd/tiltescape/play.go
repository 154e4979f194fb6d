package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-escape/internal/games/escape"
	"github.com/vovakirdan/tilt-escape/internal/games/escape/levels"
	"github.com/vovakirdan/tilt-escape/internal/platform/tui"
	"github.com/vovakirdan/tilt-escape/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLevels     string
)

var playCmd = newPlayCmd()

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play [game]",
		Short: "Play a game",
		Long: `Start playing. With no argument the campaign starts; pass escape_practice
to drill a single board.

Controls:
  WASD/Arrows - Tilt the board
  Space       - Level the board
  P/Esc       - Pause
  R           - Restart the run
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  tiltescape play
  tiltescape play escape --difficulty hard
  tiltescape play escape --level 3
  tiltescape play escape_practice --level 2
  tiltescape play escape --levels ./myboards
  tiltescape play escape --config ./my-escape.yaml`,
		Args: cobra.MaximumNArgs(1),
		Run:  runPlay,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().IntVar(&flagLevel, "level", 0, "Start board (1-N, skips the mode selector)")
	cmd.Flags().StringVar(&flagLevels, "levels", "", "Directory of .map boards to play instead of the bundled pack")
	return cmd
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "escape"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tiltescape list' to see available games.")
		os.Exit(1)
	}

	// Terminal size is needed early for the mode selector
	cfg := terminalConfig()

	escape.SetConfigPath(flagConfig)
	escape.SetDifficultyPreset(flagDifficulty)

	if flagLevels != "" {
		// Fail loudly here; inside the TUI a broken board pack would
		// silently fall back to the bundled one.
		logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "tiltescape"})
		if _, err := levels.NewDir(flagLevels, logger); err != nil {
			logger.Fatal("could not open level directory", "dir", flagLevels, "error", err)
		}
		escape.SetLevelDir(flagLevels)
	}

	if flagLevel > 0 {
		if boards := len(escape.LevelNames()); flagLevel > boards {
			fmt.Fprintf(os.Stderr, "Error: board %d out of range (1-%d)\n", flagLevel, boards)
			os.Exit(1)
		}
		escape.SetStartLevel(flagLevel)
	} else if gameID == "escape" {
		picked, updatedCfg, err := pickEscapeMode(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = updatedCfg
		if picked == "" {
			// Backed out of the mode picker
			return
		}
		gameID = picked
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
