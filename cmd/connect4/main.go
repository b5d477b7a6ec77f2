// connect4 is Connect Four for the terminal, against the computer or a
// second player on the same keyboard, with a persistent hall of fame.
//
// Usage:
//
//	connect4                  - Start the main menu
//	connect4 menu             - Start the main menu
//	connect4 play             - Play directly, skipping the menu
//	connect4 scores           - Show the hall of fame
//	connect4 history          - Show recently finished games
//	connect4 stats <name>     - Show one player's record
//	connect4 serve            - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>       - Set database path (default: ~/.connect4/connect4.db)
//	--config <path>   - Load a custom config YAML
//	--seed <value>    - Set RNG seed for reproducible computer moves
//	--pace <name>     - Computer think delay: instant, normal, slow
//	--log-file <path> - Write logs to a file while the TUI runs
//	--debug           - Log debug details
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath  string
	flagConfig  string
	flagSeed    int64
	flagPace    string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connect4",
	Short: "Connect Four - Drop discs, connect four, win",
	Long: `Connect Four in your terminal. Play against the computer or a friend,
and climb the hall of fame.

Available commands:
  menu     - Interactive main menu (the default)
  play     - Start a game directly
  scores   - View the hall of fame
  history  - View recently finished games
  stats    - View one player's record
  serve    - Start SSH server for remote play

Examples:
  connect4
  connect4 play --p1 Alice
  connect4 play --vs human --p1 Alice --p2 Bob
  connect4 scores
  connect4 serve --ssh :2222`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to leaderboard database (default from config: ~/.connect4/connect4.db)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for the computer (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagPace, "pace", "", "Computer think delay preset: instant, normal, slow")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
