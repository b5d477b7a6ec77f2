package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently finished games",
	Long: `Display the most recent won or tied games, newest first.
Games that were quit are not kept.

Examples:
  connect4 history
  connect4 history --limit 50
  connect4 history --json`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

var statsCmd = &cobra.Command{
	Use:   "stats <name>",
	Short: "Show one player's record",
	Long: `Display a player's wins and losses, plus the ties and the last game
found in the history.

Examples:
  connect4 stats Alice
  connect4 stats "Ann Lee" --json`,
	Args: cobra.ExactArgs(1),
	Run:  runStats,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of games to show")
	historyCmd.Flags().BoolVar(&flagJSON, "json", false, "Print JSON instead of a table")
	statsCmd.Flags().BoolVar(&flagJSON, "json", false, "Print JSON instead of text")
}

func runHistory(_ *cobra.Command, _ []string) {
	e := mustSetup(true, false)
	defer e.Close()

	games, err := e.store.RecentGames(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		e.Close()
		os.Exit(1)
	}

	if flagJSON {
		printJSON(e, games)
		return
	}

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-8s  %-20s  %-20s  %-20s  %s\n", "Date", "Mode", "Player 1", "Player 2", "Result", "Moves")
	fmt.Printf("  %-16s  %-8s  %-20s  %-20s  %-20s  %s\n", "----", "----", "--------", "--------", "------", "-----")
	for _, g := range games {
		result := "tie"
		if g.Winner != "" {
			result = g.Winner + " won"
		}
		fmt.Printf("  %-16s  %-8s  %-20s  %-20s  %-20s  %d\n",
			g.CreatedAt.Local().Format("2006-01-02 15:04"), g.Mode, g.Player1, g.Player2, result, g.Moves)
	}
}

// statsView is the JSON form of a player's record.
type statsView struct {
	Name       string     `json:"name"`
	GamesWon   int        `json:"games_won"`
	GamesLost  int        `json:"games_lost"`
	Ties       int        `json:"ties"`
	WinRate    float64    `json:"win_rate"`
	LastPlayed *time.Time `json:"last_played,omitempty"`
}

func runStats(_ *cobra.Command, args []string) {
	e := mustSetup(true, false)
	defer e.Close()

	stats, err := e.store.PlayerStats(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving player: %v\n", err)
		e.Close()
		os.Exit(1)
	}
	if stats == nil {
		fmt.Fprintf(os.Stderr, "Error: no player named %q\n", args[0])
		e.Close()
		os.Exit(1)
	}

	p := stats.Player
	view := statsView{
		Name:      p.Name,
		GamesWon:  p.GamesWon,
		GamesLost: p.GamesLost,
		Ties:      stats.Ties,
		WinRate:   p.WinRate(),
	}
	if !stats.LastPlayed.IsZero() {
		view.LastPlayed = &stats.LastPlayed
	}

	if flagJSON {
		printJSON(e, view)
		return
	}

	fmt.Println(p.Name)
	fmt.Printf("  Won Games:   %d\n", p.GamesWon)
	fmt.Printf("  Lost Games:  %d\n", p.GamesLost)
	fmt.Printf("  Ties:        %d\n", stats.Ties)
	fmt.Printf("  Win rate:    %.0f%%\n", p.WinRate()*100)
	if view.LastPlayed != nil {
		fmt.Printf("  Last played: %s\n", view.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
}
