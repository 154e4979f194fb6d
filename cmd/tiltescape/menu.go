package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-escape/internal/games/escape"
	"github.com/vovakirdan/tilt-escape/internal/platform/tui"
	"github.com/vovakirdan/tilt-escape/internal/registry"
)

var menuCmd = newMenuCmd()

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start with an interactive game picker menu",
		Long: `Start in interactive menu mode. After a game ends you come back to
the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  tiltescape menu
  tiltescape menu --fps 30
  tiltescape menu --db ./scores.db`,
		Run: runMenu,
	}
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return
			}
			continue
		}

		gameID := menuResult.GameID
		if gameID == "" {
			return
		}

		if gameID == "escape" {
			escape.SetConfigPath(flagConfig)
			escape.SetDifficultyPreset(flagDifficulty)

			picked, updatedCfg, selErr := pickEscapeMode(cfg)
			cfg = updatedCfg
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			if picked == "" {
				// Backed out of the mode picker
				continue
			}
			gameID = picked
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed per run so guards patrol differently each time
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
