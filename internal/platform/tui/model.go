package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakdown/internal/audio"
	"github.com/vovakirdan/breakdown/internal/config"
	"github.com/vovakirdan/breakdown/internal/core"
	"github.com/vovakirdan/breakdown/internal/games/breakdown"
	"github.com/vovakirdan/breakdown/internal/storage"
)

// Options configures a game model.
type Options struct {
	Config  config.BreakdownConfig  // Tuning with the preset already applied
	Preset  config.DifficultyPreset // Key for stored scores
	Runtime core.RuntimeConfig
	Store   *storage.Store // May be nil
	Audio   audio.Player   // May be nil
	Logger  *log.Logger    // May be nil
	Metrics *Metrics       // May be nil
	Player  string         // Name stored with scores

	// ScreenshotDir defaults to ~/.breakdown/screenshots.
	ScreenshotDir string

	// Embedded models report Back instead of quitting the program.
	Embedded bool
}

// Model is the Bubble Tea model running one breakdown session.
type Model struct {
	game       *breakdown.Game
	screen     *core.Screen
	frame      breakdown.Frame
	opts       Options
	keys       KeyMap
	input      *InputState
	lastTick   time.Time
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the score was saved for the current end screen
}

// NewModel creates a model sized to opts.Runtime.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	if opts.Audio == nil {
		opts.Audio = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Preset == "" {
		opts.Preset = config.DifficultyFixed
	}

	w, h := opts.Runtime.WorldSize()
	game := breakdown.New(opts.Config, w, h, breakdown.WithSeed(opts.Runtime.Seed))

	return Model{
		game:      game,
		screen:    core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		opts:      opts,
		keys:      DefaultKeyMap(),
		input:     NewInputState(),
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Back) && m.opts.Embedded:
		m.backToMenu = true
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.input.Press(action, time.Now())
	}
	return m, nil
}

// handleResize keeps the cell buffer and the playfield in step with the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(m.opts.Runtime.WorldSize())
	return m, nil
}

// handleTick advances the simulation by the wall time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDT(m.lastTick, now, m.opts.Runtime.TickRate)
	m.lastTick = now

	m.frame = m.game.Advance(dt, m.input.Frame(now))
	m.opts.Metrics.Frame()
	for _, s := range m.frame.Sounds {
		m.opts.Audio.Play(s)
	}

	m.gameState = m.game.State()
	if m.gameState.Finished() {
		if !m.scoreSaved {
			m.finish()
			m.scoreSaved = true
		}
	} else {
		m.scoreSaved = false
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// finish records a session that reached an end screen.
func (m Model) finish() {
	st := m.gameState
	m.opts.Logger.Info("game finished",
		"preset", m.opts.Preset,
		"player", m.opts.Player,
		"score", st.Score,
		"won", st.Won,
	)
	m.opts.Metrics.GameFinished(string(m.opts.Preset), st.Won, st.Score)

	if m.opts.Store == nil || st.Score <= 0 {
		return
	}
	_, err := m.opts.Store.SaveScore(storage.Result{
		Preset: string(m.opts.Preset),
		Player: m.opts.Player,
		Score:  st.Score,
		Won:    st.Won,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() {
	m.screen.Clear()
	DrawFrame(m.screen, m.frame)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.opts.Logger.Warn("could not save screenshot", "error", err)
			return
		}
		dir = filepath.Join(home, config.ConfigDir, "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("breakdown_%s_%s.txt", m.opts.Preset, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the last frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	if TooSmall(m.screen) {
		DrawTooSmall(m.screen)
	} else {
		DrawFrame(m.screen, m.frame)
	}
	return RenderScreen(m.screen)
}

// Game returns the running session.
func (m Model) Game() *breakdown.Game {
	return m.game
}

// GameState returns the summary after the last frame.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for one session and blocks until it quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
