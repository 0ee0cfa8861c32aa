package breakdown

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/vovakirdan/breakdown/internal/config"
	"github.com/vovakirdan/breakdown/internal/core"
)

var (
	noInput      = core.NewInputFrame()
	confirmInput = core.NewInputFrame(core.ActionConfirm)
)

func TestNewGame(t *testing.T) {
	g, _ := newTestGame(t)

	if g.Phase() != StateMenu {
		t.Errorf("Phase() = %v, expected menu", g.Phase())
	}
	if g.Score() != 0 || g.Lives() != 3 {
		t.Errorf("score = %d, lives = %d, expected 0 and 3", g.Score(), g.Lives())
	}
	if len(g.Balls()) != 1 || len(g.Blocks()) != 90 {
		t.Errorf("balls = %d, blocks = %d, expected 1 and 90", len(g.Balls()), len(g.Blocks()))
	}
	if !near(g.Scale().Total, 0.8) {
		t.Errorf("Scale().Total = %v, expected 0.8", g.Scale().Total)
	}

	p := g.Paddle().Rect
	if !near(p.X, 340) || !near(p.Y, 550) || !near(p.W, 120) || !near(p.H, 16) {
		t.Errorf("paddle = %+v, expected (340, 550, 120, 16)", p)
	}
	b := g.Balls()[0].Rect
	if !near(b.X, 392) || !near(b.Y, 534) || !near(b.W, 16) {
		t.Errorf("ball = %+v, expected 16x16 at (392, 534)", b)
	}
	if !near(g.Balls()[0].Speed, 320) {
		t.Errorf("ball speed = %v, expected 320", g.Balls()[0].Speed)
	}
}

func TestMenuConfirmOnlyChangesState(t *testing.T) {
	g, _ := newTestGame(t)
	before := g.Snapshot()

	f := g.Advance(1.0/60, confirmInput)

	if g.Phase() != StateGame {
		t.Fatalf("Phase() = %v, expected game", g.Phase())
	}
	after := g.Snapshot()
	after.State = before.State
	after.Tick = before.Tick
	if !reflect.DeepEqual(before, after) {
		t.Errorf("menu confirm mutated entities:\nbefore %+v\nafter  %+v", before, after)
	}
	if texts := f.Texts(); len(texts) != 1 || texts[0] != MenuText {
		t.Errorf("menu frame texts = %v, expected [%q]", texts, MenuText)
	}
}

func TestMenuWaitsForConfirm(t *testing.T) {
	g, _ := newTestGame(t)
	for range 10 {
		g.Advance(1.0/60, core.NewInputFrame(core.ActionLeft))
	}
	if g.Phase() != StateMenu {
		t.Errorf("Phase() = %v, expected menu", g.Phase())
	}
	if !near(g.Paddle().Rect.X, 340) {
		t.Errorf("paddle moved in menu: X = %v", g.Paddle().Rect.X)
	}
}

func TestSuperBallDestroysBlock(t *testing.T) {
	g, _ := newTestGame(t)
	g.state = StateGame

	// Bottom-left block of the grid at (122.5, 235).
	target := g.blocks[75]
	placeBall(g, 130.5, 259, core.V2(0, -1), true)

	f := g.Advance(0, noInput)

	if g.Score() != 10 {
		t.Errorf("Score() = %d, expected 10", g.Score())
	}
	if len(g.Blocks()) != 89 {
		t.Errorf("len(Blocks()) = %d, expected 89", len(g.Blocks()))
	}
	for _, b := range g.Blocks() {
		if b == target {
			t.Error("destroyed block still in the collection")
		}
	}
	if g.Phase() != StateGame {
		t.Errorf("Phase() = %v, expected game", g.Phase())
	}
	if !hasSound(f, core.SoundHitBlock) {
		t.Errorf("sounds = %v, expected hit_block", f.Sounds)
	}
	if g.Balls()[0].Vel.Y <= 0 {
		t.Errorf("ball should bounce down, Vel.Y = %v", g.Balls()[0].Vel.Y)
	}
}

func TestRegularBallDamagesBlock(t *testing.T) {
	g, _ := newTestGame(t)
	g.state = StateGame
	target := g.blocks[75]
	placeBall(g, 130.5, 259, core.V2(0, -1), false)

	g.Advance(0, noInput)

	if target.Lives != 1 {
		t.Errorf("block lives = %d, expected 1", target.Lives)
	}
	if g.Score() != 0 || len(g.Blocks()) != 90 {
		t.Errorf("score = %d, blocks = %d, expected 0 and 90", g.Score(), len(g.Blocks()))
	}
	if target.Color() != core.ColorOrange {
		t.Errorf("damaged block color = %v, expected orange", target.Color())
	}
}

func TestScoreOncePerDestroyedBlock(t *testing.T) {
	g, _ := newTestGame(t)
	g.state = StateGame

	target := g.blocks[75]
	target.Lives = 1
	size := g.ballSize()
	speed := g.ballSpeed()
	// Two balls hit the same block in one frame.
	g.balls = []*Ball{
		{Rect: core.NewRect(125, 259, size, size), Vel: core.V2(0, -1), Speed: speed},
		{Rect: core.NewRect(136, 259, size, size), Vel: core.V2(0, -1), Speed: speed},
	}

	g.Advance(0, noInput)

	if g.Score() != 10 {
		t.Errorf("Score() = %d, expected 10", g.Score())
	}
	if len(g.Blocks()) != 89 {
		t.Errorf("len(Blocks()) = %d, expected 89", len(g.Blocks()))
	}
	for i, b := range g.Balls() {
		if b.Vel.Y <= 0 {
			t.Errorf("ball %d did not bounce off the dying block", i)
		}
	}
}

func TestUpgradeBlockDropsCoin(t *testing.T) {
	g, rng := newTestGame(t)
	g.state = StateGame
	target := g.blocks[75]
	target.Type = BlockUpgrade
	rng.ints = []int{int(UpgradeExtraLife)}
	placeBall(g, 130.5, 259, core.V2(0, -1), true)

	g.Advance(0, noInput)

	coins := g.Upgrades().Falling
	if len(coins) != 1 {
		t.Fatalf("falling coins = %d, expected 1", len(coins))
	}
	if coins[0].Kind != UpgradeExtraLife {
		t.Errorf("coin kind = %v, expected ExtraLife", coins[0].Kind)
	}
	// Spawned at the block and moved one step this frame.
	if !near(coins[0].Rect.X, target.Rect.X) || !near(coins[0].Rect.Y, target.Rect.Y+1) {
		t.Errorf("coin at (%v, %v), expected under block origin", coins[0].Rect.X, coins[0].Rect.Y)
	}
}

func TestLastBallLostGameOver(t *testing.T) {
	g, _ := newTestGame(t)
	g.state = StateGame
	g.lives = 1
	placeBall(g, 400, testH+1, core.V2(0, 1), false)

	f := g.Advance(0, noInput)

	if g.Lives() != 0 {
		t.Errorf("Lives() = %d, expected 0", g.Lives())
	}
	if g.Phase() != StateGameOver {
		t.Errorf("Phase() = %v, expected gameover", g.Phase())
	}
	if !g.State().GameOver || !g.State().Finished() {
		t.Errorf("State() = %+v, expected game over", g.State())
	}
	if !hasSound(f, core.SoundHitFloor) {
		t.Errorf("sounds = %v, expected hit_floor", f.Sounds)
	}
}

func TestBallLostLaunchNewBall(t *testing.T) {
	g, _ := newTestGame(t)
	g.state = StateGame
	g.upgrades.MagnetActive = true
	g.upgrades.SpaceInvaderActive = true
	g.upgrades.SpawnKind(core.NewRect(10, 10, 32, 32), UpgradeAddBall)
	placeBall(g, 400, testH+1, core.V2(0, 1), false)

	g.Advance(0, noInput)

	if g.Phase() != StateLaunchNewBall || g.Lives() != 2 {
		t.Fatalf("phase = %v, lives = %d, expected launch and 2", g.Phase(), g.Lives())
	}
	if len(g.Balls()) != 0 {
		t.Errorf("len(Balls()) = %d, expected 0", len(g.Balls()))
	}
	u := g.Upgrades()
	if u.MagnetActive || u.SpaceInvaderActive || len(u.Falling) != 0 {
		t.Errorf("upgrades not cleared after losing a life: %+v", u)
	}

	// Paddle still moves while waiting.
	g.Advance(0.1, core.NewInputFrame(core.ActionRight))
	if !near(g.Paddle().Rect.X, 340+60) {
		t.Errorf("paddle X = %v, expected 400", g.Paddle().Rect.X)
	}

	g.Advance(0, confirmInput)
	if g.Phase() != StateGame {
		t.Errorf("Phase() = %v, expected game", g.Phase())
	}
	if len(g.Balls()) != 1 {
		t.Fatalf("len(Balls()) = %d, expected 1", len(g.Balls()))
	}
	if b := g.Balls()[0].Rect; !near(b.X, 400+60-8) || !near(b.Y, 534) {
		t.Errorf("new ball at (%v, %v), expected above paddle", b.X, b.Y)
	}
}

func TestOneOfSeveralBallsLost(t *testing.T) {
	g, _ := newTestGame(t)
	g.state = StateGame
	size, speed := g.ballSize(), g.ballSpeed()
	g.balls = []*Ball{
		{Rect: core.NewRect(400, testH+5, size, size), Vel: core.V2(0, 1), Speed: speed},
		{Rect: core.NewRect(400, 400, size, size), Vel: core.V2(0, 1), Speed: speed},
	}

	g.Advance(0, noInput)

	if len(g.Balls()) != 1 || g.Lives() != 3 || g.Phase() != StateGame {
		t.Errorf("balls = %d, lives = %d, phase = %v; expected 1, 3, game",
			len(g.Balls()), g.Lives(), g.Phase())
	}
}

func TestLevelCompleted(t *testing.T) {
	g, _ := newTestGame(t)
	g.state = StateGame
	g.blocks = []*Block{NewBlock(core.V2(100, 100), 32, 1, BlockRegular)}
	placeBall(g, 108, 124, core.V2(0, -1), false)

	g.Advance(0, noInput)

	if g.Phase() != StateLevelCompleted {
		t.Errorf("Phase() = %v, expected completed", g.Phase())
	}
	if g.Lives() != 3 || !g.State().Won {
		t.Errorf("State() = %+v, expected a win with 3 lives", g.State())
	}
}

func TestGameOverBeatsLevelCompleted(t *testing.T) {
	g, _ := newTestGame(t)
	g.state = StateGame
	g.lives = 1
	// Last block straddles the bottom edge; the bounce pushes the ball off.
	g.blocks = []*Block{NewBlock(core.V2(100, 590), 32, 1, BlockRegular)}
	placeBall(g, 108, 615, core.V2(0, -1), false)

	g.Advance(0, noInput)

	if len(g.Blocks()) != 0 {
		t.Fatalf("len(Blocks()) = %d, expected 0", len(g.Blocks()))
	}
	if g.Phase() != StateGameOver {
		t.Errorf("Phase() = %v, expected gameover", g.Phase())
	}
}

func TestBallMultiplier(t *testing.T) {
	g, rng := newTestGame(t)
	g.state = StateGame
	size, speed := g.ballSize(), g.ballSpeed()
	src := []*Ball{
		{Rect: core.NewRect(200, 300, size, size), Vel: core.V2(0, 1), Speed: speed, Super: true},
		{Rect: core.NewRect(600, 300, size, size), Vel: core.V2(0, 1), Speed: speed},
	}
	g.balls = append([]*Ball(nil), src...)
	g.upgrades.SpawnKind(core.NewRect(350, 540, 32, 32), UpgradeBallMultiplier)
	rng.floats = []float64{0.1, 0.9}
	rng.fi = 0

	g.Advance(0, noInput)

	balls := g.Balls()
	if len(balls) != 4 {
		t.Fatalf("len(Balls()) = %d, expected 4", len(balls))
	}
	for i := range 2 {
		orig, clone := balls[i], balls[i+2]
		if orig != src[i] {
			t.Errorf("ball %d replaced, expected originals kept in place", i)
		}
		if clone.Super != orig.Super {
			t.Errorf("clone %d super = %v, expected %v", i, clone.Super, orig.Super)
		}
		if clone.Rect != orig.Rect || clone.Speed != orig.Speed {
			t.Errorf("clone %d = %+v, expected footprint and speed of %+v", i, clone, orig)
		}
		if clone.Vel == orig.Vel {
			t.Errorf("clone %d shares its source direction %+v", i, orig.Vel)
		}
	}
	if balls[2].Vel == balls[3].Vel {
		t.Error("clones should get independent directions")
	}
}

func TestActivateUpgrades(t *testing.T) {
	tests := []struct {
		kind  UpgradeKind
		check func(g *Game) error
	}{
		{UpgradeAddBall, func(g *Game) error {
			if len(g.balls) != 2 || g.balls[1].Super {
				return fmt.Errorf("balls = %d, expected a second normal ball", len(g.balls))
			}
			return nil
		}},
		{UpgradeSuperBall, func(g *Game) error {
			if len(g.balls) != 2 || !g.balls[1].Super {
				return fmt.Errorf("balls = %d, expected a second super ball", len(g.balls))
			}
			return nil
		}},
		{UpgradeExtraLife, func(g *Game) error {
			if g.lives != 4 {
				return fmt.Errorf("lives = %d, expected 4", g.lives)
			}
			return nil
		}},
		{UpgradeMagnet, func(g *Game) error {
			if !g.upgrades.MagnetActive {
				return fmt.Errorf("magnet flag not set")
			}
			return nil
		}},
		{UpgradeSpaceInvader, func(g *Game) error {
			if !g.upgrades.SpaceInvaderActive {
				return fmt.Errorf("space invader flag not set")
			}
			return nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			g, _ := newTestGame(t)
			g.state = StateGame
			placeBall(g, 400, 300, core.V2(0, 1), false)
			g.upgrades.SpawnKind(core.NewRect(350, 540, 32, 32), tt.kind)

			g.Advance(0, noInput)

			if err := tt.check(g); err != nil {
				t.Error(err)
			}
			if len(g.upgrades.Activated) != 0 {
				t.Errorf("activation queue not cleared: %v", g.upgrades.Activated)
			}
		})
	}
}

func TestEndScreensResetToMenu(t *testing.T) {
	for _, state := range []State{StateGameOver, StateLevelCompleted} {
		t.Run(state.String(), func(t *testing.T) {
			g, _ := newTestGame(t)
			g.state = state
			g.score = 30
			g.lives = 0
			g.blocks = g.blocks[:5]
			g.balls = nil
			g.paddle.Rect.X = 0
			g.upgrades.MagnetActive = true

			f := g.Advance(0, noInput)
			want := WinText
			if state == StateGameOver {
				want = "GAME OVER - Score: 30"
			}
			if texts := f.Texts(); len(texts) != 1 || texts[0] != want {
				t.Errorf("texts = %v, expected [%q]", texts, want)
			}
			if g.Phase() != state {
				t.Fatalf("Phase() = %v, expected to wait on %v", g.Phase(), state)
			}

			g.Advance(0, confirmInput)

			if g.Phase() != StateMenu {
				t.Errorf("Phase() = %v, expected menu", g.Phase())
			}
			if g.Score() != 0 || g.Lives() != 3 {
				t.Errorf("score = %d, lives = %d, expected 0 and 3", g.Score(), g.Lives())
			}
			if len(g.Blocks()) != 90 || len(g.Balls()) != 1 {
				t.Errorf("blocks = %d, balls = %d, expected 90 and 1", len(g.Blocks()), len(g.Balls()))
			}
			if !near(g.Paddle().Rect.X, 340) {
				t.Errorf("paddle X = %v, expected recentered at 340", g.Paddle().Rect.X)
			}
			if g.Upgrades().MagnetActive {
				t.Error("magnet should be cleared by reset")
			}
		})
	}
}

func TestPaddleUpdate(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		input core.InputFrame
		want  float64
	}{
		{"left", 340, core.NewInputFrame(core.ActionLeft), 340 - 60},
		{"right", 340, core.NewInputFrame(core.ActionRight), 340 + 60},
		{"both cancel", 340, core.NewInputFrame(core.ActionLeft, core.ActionRight), 340},
		{"none", 340, core.NewInputFrame(), 340},
		{"clamp left", 20, core.NewInputFrame(core.ActionLeft), 0},
		{"clamp right", 660, core.NewInputFrame(core.ActionRight), testW - 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Paddle{Rect: core.NewRect(tt.x, 550, 120, 16), Speed: 600}
			p.Update(0.1, tt.input, testW)
			if !near(p.Rect.X, tt.want) {
				t.Errorf("X = %v, expected %v", p.Rect.X, tt.want)
			}
		})
	}
}

func TestPaddleBounceSound(t *testing.T) {
	g, _ := newTestGame(t)
	g.state = StateGame
	placeBall(g, 392, 545, core.V2(0, 1), false)

	f := g.Advance(0, noInput)

	if !hasSound(f, core.SoundHitPlayer) {
		t.Errorf("sounds = %v, expected hit_player", f.Sounds)
	}
	if b := g.Balls()[0]; b.Vel.Y >= 0 || b.Rect.Bottom() > g.Paddle().Rect.Y+eps {
		t.Errorf("ball = %+v, expected pushed above paddle heading up", b)
	}
}

func TestGameDrawOrder(t *testing.T) {
	g, _ := newTestGame(t)
	g.state = StateGame
	g.upgrades.SpawnKind(core.NewRect(10, 10, 32, 32), UpgradeMagnet)

	f := g.Advance(0, noInput)

	// paddle, 90 blocks, 1 ball, 1 coin, 2 HUD labels
	if len(f.Commands) != 1+90+1+1+2 {
		t.Fatalf("len(Commands) = %d, expected 95", len(f.Commands))
	}
	if f.Commands[0].Rect != g.Paddle().Rect || f.Commands[0].Color != core.ColorBlue {
		t.Errorf("first command = %+v, expected the paddle", f.Commands[0])
	}
	if f.Commands[92].Color != core.ColorPink {
		t.Errorf("coin command color = %v, expected pink", f.Commands[92].Color)
	}
	texts := f.Texts()
	if len(texts) != 2 || texts[0] != "score: 0" || texts[1] != "lives: 3" {
		t.Errorf("texts = %v, expected score then lives", texts)
	}

	// "score: 0" is 8 cells wide with the cell font.
	score := f.Commands[93]
	if !near(score.Pos.X, testW*0.5-40) || !near(score.Pos.Y, 20) {
		t.Errorf("score label at %+v, expected centered at y=20", score.Pos)
	}
	if !near(score.Size, 24*0.8) {
		t.Errorf("score font size = %v, expected scaled 19.2", score.Size)
	}
}

func TestResizeAppliesOnReset(t *testing.T) {
	g, _ := newTestGame(t)
	g.Resize(1600, 600)

	if !near(g.Scale().Total, 0.8) {
		t.Errorf("scale changed before reset: %v", g.Scale().Total)
	}

	g.Reset()

	if !near(g.Scale().Total, 1.6) {
		t.Errorf("Scale().Total = %v, expected 1.6", g.Scale().Total)
	}
	if b := g.Blocks()[0]; !near(b.Rect.W, 64) {
		t.Errorf("block size = %v, expected 64", b.Rect.W)
	}
	if p := g.Paddle().Rect; !near(p.W, 240) || !near(p.X, 800-120) {
		t.Errorf("paddle = %+v, expected 240 wide and centered", p)
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		base, ref, width float64
		want             float64
	}{
		{0.8, 800, 800, 0.8},
		{0.8, 800, 1600, 1.6},
		{0.8, 800, 400, 0.4},
		{1.0, 0, 1234, 1.0},
	}
	for _, tt := range tests {
		s := NewScale(tt.base, tt.ref, tt.width)
		if !near(s.Total, tt.want) {
			t.Errorf("NewScale(%v, %v, %v).Total = %v, expected %v", tt.base, tt.ref, tt.width, s.Total, tt.want)
		}
	}
}

// scriptedInputs is a fixed session: start, then sweep the paddle.
func scriptedInputs(n int) []core.InputFrame {
	inputs := make([]core.InputFrame, n)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0 || i%120 == 0:
			inputs[i].Set(core.ActionConfirm)
		case i%40 < 20:
			inputs[i].Set(core.ActionLeft)
		default:
			inputs[i].Set(core.ActionRight)
		}
	}
	return inputs
}

func TestGameDeterminism(t *testing.T) {
	inputs := scriptedInputs(600)
	run := func() Snapshot {
		g := New(testConfig(), testW, testH, WithSeed(12345))
		for _, in := range inputs {
			g.Advance(1.0/60, in)
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: score %d vs %d, tick %d vs %d", snap1.Score, snap2.Score, snap1.Tick, snap2.Tick)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	cfg := config.DefaultBreakdownConfig()
	inputs := scriptedInputs(400)

	g1 := New(cfg, testW, testH, WithSeed(7))
	for _, in := range inputs[:200] {
		g1.Advance(1.0/60, in)
	}

	g2 := New(cfg, testW, testH, WithSeed(99))
	g2.ApplySnapshot(g1.Snapshot())
	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Hash() != s2.Hash() {
		t.Fatalf("restored snapshot hash %d, expected %d", s2.Hash(), s1.Hash())
	}

	for _, in := range inputs[200:] {
		g1.Advance(1.0/60, in)
		g2.Advance(1.0/60, in)
	}
	s1, s2 = g1.Snapshot(), g2.Snapshot()
	if s1.Hash() != s2.Hash() {
		t.Errorf("sessions diverged after restore: %d vs %d", s1.Hash(), s2.Hash())
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateMenu, "menu"},
		{StateGame, "game"},
		{StateLaunchNewBall, "launch"},
		{StateLevelCompleted, "completed"},
		{StateGameOver, "gameover"},
		{State(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, expected %q", tt.state, got, tt.want)
		}
	}
}
