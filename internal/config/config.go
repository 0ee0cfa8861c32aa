// Package config provides YAML-based game configuration loading and
// difficulty management for breakdown.
package config

import "fmt"

// BreakdownConfig contains all tuning values for the block breaker.
// Sizes and speeds are in unscaled world units; the game multiplies them by
// the display scale at session reset.
type BreakdownConfig struct {
	Scale      ScaleConfig      `yaml:"scale"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Blocks     BlocksConfig     `yaml:"blocks"`
	Upgrades   UpgradesConfig   `yaml:"upgrades"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	HUD        HUDConfig        `yaml:"hud"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ScaleConfig defines how the display scale is derived from screen width.
type ScaleConfig struct {
	Base           float64 `yaml:"base"`            // Constant multiplier applied on top of the screen scale
	ReferenceWidth float64 `yaml:"reference_width"` // Screen width at which the screen scale is 1.0
}

// PaddleConfig defines the player paddle.
type PaddleConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Speed   float64 `yaml:"speed"`    // Units per second
	OffsetY float64 `yaml:"offset_y"` // Distance from the bottom of the screen to the paddle top
}

// BallConfig defines balls.
type BallConfig struct {
	Size         float64 `yaml:"size"`
	Speed        float64 `yaml:"speed"`         // Units per second
	BounceJitter float64 `yaml:"bounce_jitter"` // Upper bound of the random x nudge on paddle bounces
}

// BlocksConfig defines the block grid.
type BlocksConfig struct {
	Columns      int     `yaml:"columns"`
	Rows         int     `yaml:"rows"`
	Size         float64 `yaml:"size"`
	Padding      float64 `yaml:"padding"`
	StartY       float64 `yaml:"start_y"`
	Lives        int     `yaml:"lives"`
	UpgradePicks int     `yaml:"upgrade_picks"` // Random picks turned into upgrade blocks (duplicates allowed)
}

// UpgradesConfig defines falling coin motion.
type UpgradesConfig struct {
	FallStep   float64 `yaml:"fall_step"`   // Units per frame without magnet
	MagnetStep float64 `yaml:"magnet_step"` // Units per frame toward the paddle with magnet
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives         int `yaml:"lives"`
	ScorePerBlock int `yaml:"score_per_block"`
}

// HUDConfig defines text placement.
type HUDConfig struct {
	HeaderX       float64 `yaml:"header_x"`
	HeaderY       float64 `yaml:"header_y"`
	FontSize      float64 `yaml:"font_size"`
	TitleFontSize float64 `yaml:"title_font_size"`
}

// AudioConfig defines sound effect synthesis.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // Linear gain 0.0-1.0
	SampleRate int     `yaml:"sample_rate"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to ball speed at max difficulty
}

// Validate reports the first value that would make the game unplayable.
func (c BreakdownConfig) Validate() error {
	switch {
	case c.Scale.Base <= 0:
		return fmt.Errorf("scale.base must be positive, got %v", c.Scale.Base)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("paddle size must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height)
	case c.Ball.Size <= 0:
		return fmt.Errorf("ball.size must be positive, got %v", c.Ball.Size)
	case c.Blocks.Size <= 0:
		return fmt.Errorf("blocks.size must be positive, got %v", c.Blocks.Size)
	case c.Blocks.Columns <= 0 || c.Blocks.Rows <= 0:
		return fmt.Errorf("blocks grid must be at least 1x1, got %dx%d", c.Blocks.Columns, c.Blocks.Rows)
	case c.Blocks.Lives <= 0:
		return fmt.Errorf("blocks.lives must be positive, got %d", c.Blocks.Lives)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // Classic tuning, no progression
)

// Presets lists every preset in display order.
var Presets = []DifficultyPreset{DifficultyFixed, DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset converts a CLI value to a preset. An empty string selects
// the fixed classic tuning.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyFixed:
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
