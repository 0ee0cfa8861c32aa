package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigDir is the directory under the user's home searched for configs.
const ConfigDir = ".breakdown"

// LoadBreakdown loads Breakdown configuration.
// Search order: customPath -> ~/.breakdown/configs/breakdown.yaml -> ./configs/breakdown.yaml -> embedded default
func LoadBreakdown(customPath string) (BreakdownConfig, error) {
	// Unset keys keep their classic values.
	cfg := DefaultBreakdownConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakdown.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "breakdown.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBreakdownYAML, &cfg); err != nil {
		return DefaultBreakdownConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing or broken files are skipped.
func tryLoad(path string) (BreakdownConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BreakdownConfig{}, false
	}
	cfg := DefaultBreakdownConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakdownConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return BreakdownConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ConfigDir, "configs", filename)
}

// ApplyBreakdownPreset modifies the config based on a difficulty preset.
func ApplyBreakdownPreset(cfg *BreakdownConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 200
		cfg.Ball.Speed = 320
		cfg.Blocks.UpgradePicks = 65
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 110
		cfg.Ball.Speed = 480
		cfg.Blocks.UpgradePicks = 30
	}
}
