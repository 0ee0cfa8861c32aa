package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/breakdown/internal/config"
	"github.com/vovakirdan/breakdown/internal/core"
	"github.com/vovakirdan/breakdown/internal/storage"
)

// loadConfig reads the tuning from --config or the search path and
// applies the preset.
func loadConfig(preset config.DifficultyPreset) (config.BreakdownConfig, error) {
	cfg, err := config.LoadBreakdown(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyBreakdownPreset(&cfg, preset)
	return cfg, nil
}

// newLogger logs to path, or discards output when path is empty so the
// alt screen is left alone.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakdown",
	})
	return logger, func() { f.Close() }, nil
}

// openStore opens the scores database. Failures are reported and the
// game runs without high scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the session to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// playerName is the name stored with local scores.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
