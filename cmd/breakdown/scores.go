package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakdown/internal/config"
	"github.com/vovakirdan/breakdown/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [preset]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a difficulty preset, or for every
preset when none is given.

Examples:
  breakdown scores
  breakdown scores hard
  breakdown scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the scores of the given preset")
}

func runScores(_ *cobra.Command, args []string) error {
	presets := config.Presets
	if len(args) == 1 {
		preset, err := config.ParsePreset(args[0])
		if err != nil {
			return err
		}
		presets = []config.DifficultyPreset{preset}
	} else if flagClear {
		return fmt.Errorf("--clear needs a preset")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(string(presets[0])); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s\n", presets[0])
		return nil
	}

	for i, preset := range presets {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, preset); err != nil {
			return err
		}
	}
	return nil
}

func printScores(store *storage.Store, preset config.DifficultyPreset) error {
	scores, err := store.TopScores(string(preset), 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", preset)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("  No scores recorded yet.")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-12s  %-6s  %s\n", "Rank", "Score", "Player", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %-6s  %s\n", "----", "-----", "------", "------", "----")

	for i, entry := range scores {
		result := "lost"
		if entry.Won {
			result = "won"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-12s  %-6s  %s\n", i+1, entry.Score, entry.Player, result, dateStr)
	}

	stats, err := store.Stats(string(preset))
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Won: %d  Average: %.0f\n",
		stats.HighScore, stats.Sessions, stats.Wins, stats.AvgScore)
	return nil
}
