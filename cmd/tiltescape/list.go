package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-escape/internal/games/escape"
	"github.com/vovakirdan/tilt-escape/internal/registry"
)

var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List games and bundled boards",
		Long:  `Shows the registered games and the boards in the bundled campaign pack.`,
		Run:   runList,
	}
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	idWidth := len("ID")
	for _, g := range games {
		if len(g.ID) > idWidth {
			idWidth = len(g.ID)
		}
	}

	fmt.Println("Available games:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", idWidth, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", idWidth, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", idWidth, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Bundled boards:")
	for i, name := range escape.LevelNames() {
		fmt.Printf("  %2d. %s\n", i+1, name)
	}

	fmt.Println()
	fmt.Println("Run 'tiltescape play <id>' to play a game.")
}
