package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connect4/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Connect Four with the main menu",
	Long: `Start Connect Four in interactive menu mode.

Pick a mode with the arrow keys or its number. After a game you can play
again or return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  1-5          - Pick an entry
  Enter/Space  - Select
  Q            - Quit

Examples:
  connect4 menu
  connect4 menu --pace slow
  connect4 menu --db ./connect4.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	e := mustSetup(false, false)

	runErr := tui.Run(e.options())
	e.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
	fmt.Println(tui.Farewell)
}
