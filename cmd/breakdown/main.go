// breakdown is a terminal block breaker: a paddle, balls, a grid of blocks
// and falling upgrade coins, played locally or over SSH.
//
// Usage:
//
//	breakdown                      - Pick a difficulty and play
//	breakdown play                 - Play directly with --difficulty
//	breakdown presets              - List difficulty presets
//	breakdown scores [preset]      - Print high scores
//	breakdown scoreboard           - Browse high scores
//	breakdown serve                - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.breakdown/scores.db)
//	--config <path> - Custom breakdown.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakdown/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Breakdown - a block breaker for your terminal",
	Long: `Breakdown is a block breaker that runs in the terminal.

Knock out every block with the ball, catch the coins that fall out of the
green blocks for upgrades, and do not let the last ball hit the floor.

Available commands:
  play        - Play directly
  menu        - Pick a difficulty from a menu (default)
  presets     - Show difficulty presets
  scores      - Print high scores
  scoreboard  - Browse high scores
  serve       - Start SSH server for remote play

Examples:
  breakdown
  breakdown play --difficulty hard
  breakdown serve --ssh :2222 --metrics :9090
  breakdown scores fixed`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom breakdown config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(scoreboardCmd)
	rootCmd.AddCommand(serveCmd)
}
