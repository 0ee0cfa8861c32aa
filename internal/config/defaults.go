package config

import (
	_ "embed"
)

//go:embed defaults/breakdown.yaml
var defaultBreakdownYAML []byte

// DefaultBreakdownConfig returns the classic Breakdown tuning.
func DefaultBreakdownConfig() BreakdownConfig {
	return BreakdownConfig{
		Scale: ScaleConfig{
			Base:           0.8,
			ReferenceWidth: 800,
		},
		Paddle: PaddleConfig{
			Width:   150,
			Height:  20,
			Speed:   750,
			OffsetY: 50,
		},
		Ball: BallConfig{
			Size:         20,
			Speed:        400,
			BounceJitter: 0.2,
		},
		Blocks: BlocksConfig{
			Columns:      15,
			Rows:         6,
			Size:         40,
			Padding:      5,
			StartY:       50,
			Lives:        2,
			UpgradePicks: 53,
		},
		Upgrades: UpgradesConfig{
			FallStep:   1,
			MagnetStep: 2,
		},
		Gameplay: GameplayConfig{
			Lives:         3,
			ScorePerBlock: 10,
		},
		HUD: HUDConfig{
			HeaderX:       5,
			HeaderY:       25,
			FontSize:      24,
			TitleFontSize: 32,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.4,
			SampleRate: 44100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 900, // Every block of the classic grid
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakdownYAML
}
