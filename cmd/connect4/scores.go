package main

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/connect4/internal/platform/tui"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagJSON        bool
)

var scoresCmd = &cobra.Command{
	Use:     "scores",
	Aliases: []string{"hof"},
	Short:   "Show the hall of fame",
	Long: `Display the players with the most wins.

Players are ranked by wins, then by fewest losses. Ties are not counted
and players without a decided game are not listed.

Examples:
  connect4 scores
  connect4 scores --limit 25
  connect4 scores --json
  connect4 scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 0, "Number of players to show (default from config)")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Show the interactive hall of fame")
	scoresCmd.Flags().BoolVar(&flagJSON, "json", false, "Print JSON instead of a table")
}

// hofEntry is the JSON form of a hall of fame row.
type hofEntry struct {
	Rank      int    `json:"rank"`
	Name      string `json:"name"`
	GamesWon  int    `json:"games_won"`
	GamesLost int    `json:"games_lost"`
}

func runScores(_ *cobra.Command, _ []string) {
	e := mustSetup(true, false)
	defer e.Close()

	limit := e.cfg.HallOfFame.Limit
	if flagScoresLimit > 0 {
		limit = flagScoresLimit
	}

	if flagScoresTUI {
		opts := e.options()
		opts.Config.HallOfFame.Limit = limit
		if err := tui.RunHallOfFame(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			e.Close()
			os.Exit(1)
		}
		return
	}

	ranking, err := e.store.HallOfFame(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving hall of fame: %v\n", err)
		e.Close()
		os.Exit(1)
	}

	if flagJSON {
		entries := make([]hofEntry, len(ranking))
		for i, p := range ranking {
			entries[i] = hofEntry{Rank: i + 1, Name: p.Name, GamesWon: p.GamesWon, GamesLost: p.GamesLost}
		}
		printJSON(e, entries)
		return
	}

	fmt.Println("Hall of Fame")
	fmt.Println()

	if len(ranking) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'connect4 play' to enter the hall of fame!")
		return
	}

	fmt.Printf("  %-4s  %-20s  %-6s  %s\n", "Rank", "Player", "Wins", "Losses")
	fmt.Printf("  %-4s  %-20s  %-6s  %s\n", "----", "------", "----", "------")
	for i, p := range ranking {
		fmt.Printf("  %-4d  %-20s  %-6d  %d\n", i+1, p.Name, p.GamesWon, p.GamesLost)
	}
}

// printJSON writes v to stdout as indented JSON.
func printJSON(e *env, v any) {
	enc := jsoniter.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		e.Close()
		os.Exit(1)
	}
}
