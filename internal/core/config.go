package core

// World units covered by one terminal cell. Terminal cells are roughly
// twice as tall as they are wide, so an 80x24 terminal maps to an
// 800x480 playfield.
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// WorldSize returns the playfield size in world units.
func (c RuntimeConfig) WorldSize() (w, h float64) {
	return float64(c.ScreenW) * CellWidth, float64(c.ScreenH) * CellHeight
}

// GameState is the summary the platform needs after each frame.
type GameState struct {
	Score    int    // Current score
	Lives    int    // Remaining lives
	Phase    string // Name of the current state machine state
	GameOver bool   // Lost all lives
	Won      bool   // Cleared every block
}

// Finished reports whether the session reached an end screen.
func (s GameState) Finished() bool {
	return s.GameOver || s.Won
}
