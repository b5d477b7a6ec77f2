package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connect4/internal/games/connect4"
	"github.com/vovakirdan/connect4/internal/platform/tui"
	"github.com/vovakirdan/connect4/internal/players"
)

var (
	flagVs string
	flagP1 string
	flagP2 string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game directly",
	Long: `Start a game without going through the menu.

Controls:
  Left/Right/h/l - Move the drop marker
  Enter/Space    - Drop a disc
  1-7            - Drop a disc in that column
  Q/Esc          - Quit the game (asks first)
  Ctrl+C         - Exit immediately

Modes:
  computer - You against the computer (default)
  human    - Two players on one keyboard

Examples:
  connect4 play --p1 Alice
  connect4 play --vs human --p1 Alice --p2 Bob
  connect4 play --p1 Alice --pace instant --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagVs, "vs", "computer", "Opponent: computer or human")
	playCmd.Flags().StringVar(&flagP1, "p1", "", "Name of player 1 (default from config)")
	playCmd.Flags().StringVar(&flagP2, "p2", "", "Name of player 2 in human mode (default from config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	mode, err := connect4.ParseMode(flagVs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	e := mustSetup(false, false)

	setup, err := playSetup(mode, e)
	if err != nil {
		e.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Names must be %s.\n", players.NameRules)
		os.Exit(1)
	}

	// Register the players up front, as the menu's name screen does.
	if e.store != nil {
		names := []string{setup.P1}
		if mode == connect4.ModeVsHuman {
			names = append(names, setup.P2)
		}
		for _, name := range names {
			if _, err := e.store.FindOrCreatePlayer(name); err != nil {
				e.logger.Warn("could not load player", "name", name, "error", err)
			}
		}
	}

	e.logger.Info("game started", "mode", mode, "player1", setup.P1, "player2", setup.P2)
	runErr := tui.RunGame(e.options(), setup)
	e.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	fmt.Println(tui.Farewell)
}

// playSetup resolves and validates the player names from flags and config.
func playSetup(mode connect4.Mode, e *env) (tui.GameSetup, error) {
	p1 := players.NormalizeName(firstNonEmpty(flagP1, e.cfg.Players.DefaultP1))
	if mode == connect4.ModeVsComputer {
		if err := players.ValidateName(p1); err != nil {
			return tui.GameSetup{}, fmt.Errorf("player 1: %w", err)
		}
		return tui.GameSetup{Mode: mode, P1: p1}, nil
	}

	p2 := players.NormalizeName(firstNonEmpty(flagP2, e.cfg.Players.DefaultP2))
	if err := players.ValidatePair(p1, p2); err != nil {
		return tui.GameSetup{}, err
	}
	return tui.GameSetup{Mode: mode, P1: p1, P2: p2}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
