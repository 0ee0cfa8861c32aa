// Package breakdown implements the block breaker simulation: paddle and
// ball motion, rectangle bounce resolution, block destruction, falling
// upgrades and the menu/play/win/lose state machine. It never touches a
// terminal or a clock; hosts call Advance once per frame and replay the
// returned Frame.
package breakdown

import (
	"fmt"

	"github.com/vovakirdan/breakdown/internal/config"
	"github.com/vovakirdan/breakdown/internal/core"
)

// State is a state of the game's finite machine.
type State int

const (
	StateMenu           State = iota // Title screen, waiting for confirm
	StateGame                        // Ball in play
	StateLaunchNewBall               // Ball lost, waiting for confirm
	StateLevelCompleted              // Every block destroyed
	StateGameOver                    // No lives left
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateGame:
		return "game"
	case StateLaunchNewBall:
		return "launch"
	case StateLevelCompleted:
		return "completed"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Title texts.
const (
	MenuText    = "Press SPACE to start"
	WinText     = "You WIN!"
	GameOverFmt = "GAME OVER - Score: %d"
)

// Game owns every entity of one session.
type Game struct {
	cfg        config.BreakdownConfig
	rng        Rand
	font       core.Font
	difficulty *config.DifficultyManager

	screenW, screenH float64
	scale            Scale

	state    State
	paddle   *Paddle
	balls    []*Ball
	blocks   []*Block
	upgrades *Upgrades
	score    int
	lives    int
	tick     int
}

// Option configures a Game.
type Option func(*Game)

// WithRand injects the random source.
func WithRand(r Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithSeed uses a SimpleRNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.rng = NewSimpleRNG(seed) }
}

// WithFont sets the text measurer used for centering.
func WithFont(f core.Font) Option {
	return func(g *Game) { g.font = f }
}

// New creates a session in the Menu state for a screen of the given size
// in world units.
func New(cfg config.BreakdownConfig, screenW, screenH float64, opts ...Option) *Game {
	g := &Game{
		cfg:        cfg,
		rng:        NewSimpleRNG(1),
		font:       core.CellFont{},
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		screenW:    screenW,
		screenH:    screenH,
		scale:      NewScale(cfg.Scale.Base, cfg.Scale.ReferenceWidth, screenW),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset()
	return g
}

// Resize records a new screen size. The scale and the grid follow on the
// next session reset; the paddle is kept inside the new bounds right away.
func (g *Game) Resize(screenW, screenH float64) {
	g.screenW, g.screenH = screenW, screenH
	g.paddle.Rect.Y = screenH - g.cfg.Paddle.OffsetY
	g.paddle.Rect.X = core.ClampF(g.paddle.Rect.X, 0, max(screenW-g.paddle.Rect.W, 0))
}

// Reset starts a fresh session: score and lives restored, scale recomputed,
// paddle recentered, one ball next to it, a new grid and no upgrades.
// The state is left unchanged.
func (g *Game) Reset() {
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.tick = 0
	g.scale.Update(g.screenW)
	g.paddle = g.newPaddle()
	g.balls = []*Ball{g.newBallNextToPaddle(false)}
	g.blocks = GenerateBlocks(g.cfg.Blocks, g.cfg.Blocks.Size*g.scale.Total, g.screenW, g.rng)
	g.upgrades = NewUpgrades(g.cfg.Upgrades)
}

func (g *Game) newPaddle() *Paddle {
	t := g.scale.Total
	return NewPaddle(g.cfg.Paddle.Width*t, g.cfg.Paddle.Height*t, g.cfg.Paddle.Speed*t,
		g.cfg.Paddle.OffsetY, g.screenW, g.screenH)
}

func (g *Game) ballSize() float64 {
	return g.cfg.Ball.Size * g.scale.Total
}

func (g *Game) ballSpeed() float64 {
	return g.difficulty.Speed(g.cfg.Ball.Speed*g.scale.Total, g.score, g.tick)
}

// newBallNextToPaddle places a ball centered above the paddle.
func (g *Game) newBallNextToPaddle(super bool) *Ball {
	size := g.ballSize()
	p := g.paddle.Rect
	pos := p.Point().Add(core.V2(p.W*0.5-size*0.5, -p.H))
	return NewBall(pos, size, g.ballSpeed(), super, g.rng)
}

// Advance runs one frame: dt seconds of simulation under the given held
// keys. It returns the draw commands and sounds for the frame.
func (g *Game) Advance(dt float64, in core.InputFrame) Frame {
	if dt < 0 {
		dt = 0
	}
	g.tick++

	var f Frame
	switch g.state {
	case StateMenu:
		g.stateMenu(in, &f)
	case StateGame:
		g.stateGame(dt, in, &f)
	case StateLaunchNewBall:
		g.stateLaunchNewBall(dt, in, &f)
	case StateLevelCompleted:
		g.stateLevelCompleted(in, &f)
	case StateGameOver:
		g.stateGameOver(in, &f)
	}
	return f
}

func (g *Game) stateMenu(in core.InputFrame, f *Frame) {
	g.drawTitle(f, MenuText)
	if in.Has(core.ActionConfirm) {
		g.state = StateGame
	}
}

func (g *Game) stateGame(dt float64, in core.InputFrame, f *Frame) {
	g.paddle.Update(dt, in, g.screenW)
	for _, b := range g.balls {
		b.Update(dt, g.screenW)
	}

	for _, b := range g.balls {
		if b.Bounce(g.paddle.Rect, g.cfg.Ball.BounceJitter, g.rng) {
			f.Play(core.SoundHitPlayer)
		}
		// Blocks killed earlier in the frame still deflect until the purge.
		for _, blk := range g.blocks {
			if !b.Bounce(blk.Rect, 0, g.rng) {
				continue
			}
			f.Play(core.SoundHitBlock)
			if blk.Hit(b.Super) {
				g.score += g.cfg.Gameplay.ScorePerBlock
				if blk.Type == BlockUpgrade {
					g.upgrades.Spawn(blk.Rect, g.rng)
				}
			}
		}
	}

	before := len(g.balls)
	g.balls = keepBalls(g.balls, g.screenH)
	if before > 0 && len(g.balls) == 0 {
		g.lives--
		f.Play(core.SoundHitFloor)
		g.state = StateLaunchNewBall
		if g.lives <= 0 {
			g.state = StateGameOver
		}
		g.upgrades.Reset()
	}

	g.blocks = keepBlocks(g.blocks)
	if len(g.blocks) == 0 && g.state != StateGameOver {
		g.state = StateLevelCompleted
	}

	g.upgrades.Update(g.paddle.Rect, g.screenH)
	g.activateUpgrades()
	g.drawGame(f)
}

func keepBalls(balls []*Ball, screenH float64) []*Ball {
	kept := balls[:0]
	for _, b := range balls {
		if b.Rect.Y < screenH {
			kept = append(kept, b)
		}
	}
	clear(balls[len(kept):])
	return kept
}

func keepBlocks(blocks []*Block) []*Block {
	kept := blocks[:0]
	for _, b := range blocks {
		if b.Alive() {
			kept = append(kept, b)
		}
	}
	clear(blocks[len(kept):])
	return kept
}

// activateUpgrades applies every queued upgrade once.
func (g *Game) activateUpgrades() {
	for _, kind := range g.upgrades.TakeActivated() {
		switch kind {
		case UpgradeAddBall:
			g.balls = append(g.balls, g.newBallNextToPaddle(false))
		case UpgradeExtraLife:
			g.lives++
		case UpgradeSuperBall:
			g.balls = append(g.balls, g.newBallNextToPaddle(true))
		case UpgradeBallMultiplier:
			clones := make([]*Ball, 0, len(g.balls))
			for _, b := range g.balls {
				clones = append(clones, b.Clone(g.rng))
			}
			g.balls = append(g.balls, clones...)
		case UpgradeSpaceInvader:
			g.upgrades.SpaceInvaderActive = true
		case UpgradeMagnet:
			g.upgrades.MagnetActive = true
		}
	}
}

func (g *Game) stateLaunchNewBall(dt float64, in core.InputFrame, f *Frame) {
	g.paddle.Update(dt, in, g.screenW)
	if in.Has(core.ActionConfirm) {
		g.state = StateGame
		g.balls = append(g.balls, g.newBallNextToPaddle(false))
	}
	g.drawGame(f)
}

func (g *Game) stateLevelCompleted(in core.InputFrame, f *Frame) {
	g.drawTitle(f, WinText)
	if in.Has(core.ActionConfirm) {
		g.state = StateMenu
		g.Reset()
	}
}

func (g *Game) stateGameOver(in core.InputFrame, f *Frame) {
	g.drawTitle(f, fmt.Sprintf(GameOverFmt, g.score))
	if in.Has(core.ActionConfirm) {
		g.state = StateMenu
		g.Reset()
	}
}

// drawTitle centers text on the screen.
func (g *Game) drawTitle(f *Frame, text string) {
	size := g.cfg.HUD.TitleFontSize
	w, h := g.font.Measure(text, size)
	pos := core.V2(g.screenW*0.5-w*0.5, g.screenH*0.5-h*0.5)
	f.DrawText(text, pos, size, core.ColorBlack)
}

// drawGame draws paddle, blocks, balls, coins and the HUD, in that order.
func (g *Game) drawGame(f *Frame) {
	f.DrawRect(g.paddle.Rect, g.paddle.Color())
	for _, b := range g.blocks {
		f.DrawRect(b.Rect, b.Color())
	}
	for _, b := range g.balls {
		f.DrawRect(b.Rect, b.Color())
	}
	for _, c := range g.upgrades.Falling {
		f.DrawRect(c.Rect, c.Kind.Color())
	}

	size := g.cfg.HUD.FontSize * g.scale.Total
	y := g.cfg.HUD.HeaderY * g.scale.Total
	score := fmt.Sprintf("score: %d", g.score)
	w, _ := g.font.Measure(score, size)
	f.DrawText(score, core.V2(g.screenW*0.5-w*0.5, y), size, core.ColorBlack)
	f.DrawText(fmt.Sprintf("lives: %d", g.lives), core.V2(g.cfg.HUD.HeaderX, y), size, core.ColorBlack)
}

// Phase returns the current state of the finite machine.
func (g *Game) Phase() State {
	return g.state
}

// State returns the summary the host needs after a frame.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Phase:    g.state.String(),
		GameOver: g.state == StateGameOver,
		Won:      g.state == StateLevelCompleted,
	}
}

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Paddle returns the paddle.
func (g *Game) Paddle() *Paddle { return g.paddle }

// Balls returns the active balls.
func (g *Game) Balls() []*Ball { return g.balls }

// Blocks returns the remaining blocks.
func (g *Game) Blocks() []*Block { return g.blocks }

// Upgrades returns the upgrade system.
func (g *Game) Upgrades() *Upgrades { return g.upgrades }

// Scale returns the display scale of the current session.
func (g *Game) Scale() Scale { return g.scale }

// ScreenSize returns the screen size in world units.
func (g *Game) ScreenSize() (w, h float64) { return g.screenW, g.screenH }
