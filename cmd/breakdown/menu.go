package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakdown/internal/config"
	"github.com/vovakirdan/breakdown/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty from a menu and play",
	Long: `Start breakdown in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to play and Tab to open
the scoreboard. Quitting a game returns to the menu.

Examples:
  breakdown menu
  breakdown menu --fps 30
  breakdown menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addSessionFlags(menuCmd.Flags())
	addSessionFlags(rootCmd.Flags())
}

func runMenu(cmd *cobra.Command, _ []string) error {
	initial, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	// Fail fast on a bad config before the alt screen opens
	base, err := config.LoadBreakdown(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	player, err := openAudio(cmd, base.Audio)
	if err != nil {
		return err
	}
	defer player.Close()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	rt := runtimeConfig()
	for {
		result, err := tui.RunMenu(store, rt, initial)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}

		// Update config with any size changes
		rt = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
			if sbErr != nil {
				return fmt.Errorf("scoreboard: %w", sbErr)
			}
			if !goBack {
				return nil
			}
			continue
		}

		initial = result.Preset
		cfg := base
		config.ApplyBreakdownPreset(&cfg, result.Preset)

		// Fresh seed per game unless one was pinned
		session := rt
		if flagSeed == 0 {
			session.Seed = time.Now().UnixNano()
		}

		logger.Info("starting session", "preset", result.Preset)
		if err := tui.Run(tui.Options{
			Config:  cfg,
			Preset:  result.Preset,
			Runtime: session,
			Store:   store,
			Audio:   player,
			Logger:  logger,
			Player:  playerName(),
		}); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
