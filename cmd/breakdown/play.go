package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/breakdown/internal/audio"
	"github.com/vovakirdan/breakdown/internal/config"
	"github.com/vovakirdan/breakdown/internal/platform/tui"
)

var (
	flagDifficulty string
	flagSound      bool
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play breakdown",
	Long: `Start a breakdown session at the chosen difficulty.

Controls:
  Left/A, Right/D  - Move paddle
  Space/Enter      - Start, launch a new ball, continue
  Ctrl+S           - Save a text screenshot
  Esc/Q/Ctrl+C     - Quit

Difficulty options:
  fixed  - Classic tuning, no progression (default)
  easy   - Wider paddle, slower ball, more upgrades; speeds up with score
  normal - Classic tuning starting at 30% difficulty
  hard   - Narrow paddle, fast ball, fewer upgrades, starts at 70%

Examples:
  breakdown play
  breakdown play --difficulty easy
  breakdown play --sound=false
  breakdown play --config ./my-breakdown.yaml --log-file breakdown.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// addSessionFlags registers the flags shared by commands that run a local game.
func addSessionFlags(fs *pflag.FlagSet) {
	fs.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: fixed, easy, normal, hard")
	fs.BoolVar(&flagSound, "sound", true, "Play sound effects (overrides audio.enabled)")
	fs.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func init() {
	addSessionFlags(playCmd.Flags())
}

// openAudio starts the speaker unless sound is off in the config or on
// the command line.
func openAudio(cmd *cobra.Command, cfg config.AudioConfig) (audio.Player, error) {
	if cmd.Flags().Changed("sound") {
		cfg.Enabled = flagSound
	}
	player, err := audio.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("sound: %w (run with --sound=false to play silently)", err)
	}
	return player, nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(preset)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	player, err := openAudio(cmd, cfg.Audio)
	if err != nil {
		return err
	}
	defer player.Close()

	// Open score storage, the game still works without it
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting session", "preset", preset, "seed", flagSeed)
	if err := tui.Run(tui.Options{
		Config:  cfg,
		Preset:  preset,
		Runtime: runtimeConfig(),
		Store:   store,
		Audio:   player,
		Logger:  logger,
		Player:  playerName(),
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
