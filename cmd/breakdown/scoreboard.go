package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakdown/internal/platform/tui"
	"github.com/vovakirdan/breakdown/internal/storage"
)

var scoreboardCmd = &cobra.Command{
	Use:   "scoreboard",
	Short: "Browse high scores in a table",
	Long: `Open an interactive table of high scores.

Tab and Shift+Tab switch between difficulty presets, arrows scroll.`,
	Args: cobra.NoArgs,
	RunE: runScoreboard,
}

func runScoreboard(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	rt := runtimeConfig()
	_, err = tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
	return err
}
