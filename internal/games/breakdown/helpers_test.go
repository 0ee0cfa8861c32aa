package breakdown

import (
	"math"
	"testing"

	"github.com/vovakirdan/breakdown/internal/config"
	"github.com/vovakirdan/breakdown/internal/core"
)

// scriptedRand replays fixed values, cycling when exhausted.
// Without values it returns 0.5 and 0.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 || n <= 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)] % n
	r.ii++
	return v
}

const (
	testW = 800.0
	testH = 600.0
	eps   = 1e-9
)

// testConfig is the classic tuning without upgrade blocks.
func testConfig() config.BreakdownConfig {
	cfg := config.DefaultBreakdownConfig()
	cfg.Blocks.UpgradePicks = 0
	return cfg
}

// newTestGame returns a game on an 800x600 world (scale 0.8) with a
// scripted random source.
func newTestGame(t *testing.T) (*Game, *scriptedRand) {
	t.Helper()
	rng := &scriptedRand{}
	g := New(testConfig(), testW, testH, WithRand(rng))
	return g, rng
}

// placeBall replaces every ball with one of the given footprint and direction.
func placeBall(g *Game, x, y float64, vel core.Vec2, super bool) *Ball {
	size := g.ballSize()
	b := &Ball{
		Rect:  core.NewRect(x, y, size, size),
		Vel:   vel.Normalize(),
		Speed: g.ballSpeed(),
		Super: super,
	}
	g.balls = []*Ball{b}
	return b
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func hasSound(f Frame, s core.Sound) bool {
	for _, got := range f.Sounds {
		if got == s {
			return true
		}
	}
	return false
}
