package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakdown/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long:  `Shows the tuning each difficulty preset applies on top of the loaded config.`,
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func runPresets(_ *cobra.Command, _ []string) error {
	fmt.Println("Difficulty presets:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-7s  %5s  %6s  %5s  %8s  %s\n", "Preset", "Lives", "Paddle", "Ball", "Upgrades", "Progression")
	fmt.Printf("  %-7s  %5s  %6s  %5s  %8s  %s\n", "------", "-----", "------", "----", "--------", "-----------")

	for _, preset := range config.Presets {
		cfg, err := loadConfig(preset)
		if err != nil {
			return err
		}
		progression := "off"
		if cfg.Difficulty.Enabled {
			progression = fmt.Sprintf("from %.0f%%", cfg.Difficulty.InitialLevel*100)
		}
		fmt.Printf("  %-7s  %5d  %6.0f  %5.0f  %8d  %s\n",
			preset, cfg.Gameplay.Lives, cfg.Paddle.Width, cfg.Ball.Speed, cfg.Blocks.UpgradePicks, progression)
	}

	fmt.Println()
	fmt.Println("Run 'breakdown play --difficulty <preset>' to play.")
	return nil
}
