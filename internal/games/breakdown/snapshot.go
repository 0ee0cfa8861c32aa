package breakdown

import "math"

// Snapshot contains the complete session state for replay and determinism
// checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick    int
	State   State
	Score   int
	Lives   int
	Scale   float64
	ScreenW float64
	ScreenH float64

	PaddleX float64
	PaddleY float64
	PaddleW float64
	PaddleH float64

	// Each ball is 7 floats: X, Y, Size, VX, VY, Speed, Super
	BallData []float64

	// Each block is 5 floats: X, Y, Size, Lives, Type
	BlockData []float64

	// Each coin is 5 floats: X, Y, W, H, Kind
	CoinData []float64

	MagnetActive       bool
	SpaceInvaderActive bool

	// RNG state, zero when the game runs on an injected source
	RNGState uint64
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    g.tick,
		State:   g.state,
		Score:   g.score,
		Lives:   g.lives,
		Scale:   g.scale.Total,
		ScreenW: g.screenW,
		ScreenH: g.screenH,

		PaddleX: g.paddle.Rect.X,
		PaddleY: g.paddle.Rect.Y,
		PaddleW: g.paddle.Rect.W,
		PaddleH: g.paddle.Rect.H,

		BallData:  make([]float64, 0, len(g.balls)*7),
		BlockData: make([]float64, 0, len(g.blocks)*5),
		CoinData:  make([]float64, 0, len(g.upgrades.Falling)*5),

		MagnetActive:       g.upgrades.MagnetActive,
		SpaceInvaderActive: g.upgrades.SpaceInvaderActive,
	}

	for _, b := range g.balls {
		snap.BallData = append(snap.BallData,
			b.Rect.X, b.Rect.Y, b.Rect.W, b.Vel.X, b.Vel.Y, b.Speed, boolFloat(b.Super))
	}
	for _, b := range g.blocks {
		snap.BlockData = append(snap.BlockData,
			b.Rect.X, b.Rect.Y, b.Rect.W, float64(b.Lives), float64(b.Type))
	}
	for _, c := range g.upgrades.Falling {
		snap.CoinData = append(snap.CoinData,
			c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H, float64(c.Kind))
	}
	if r, ok := g.rng.(*SimpleRNG); ok {
		snap.RNGState = r.State()
	}
	return snap
}

// ApplySnapshot restores session state from a snapshot.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tick = snap.Tick
	g.state = snap.State
	g.score = snap.Score
	g.lives = snap.Lives
	g.screenW, g.screenH = snap.ScreenW, snap.ScreenH
	g.scale.Total = snap.Scale
	if g.scale.Base != 0 {
		g.scale.ScreenScale = snap.Scale / g.scale.Base
	}

	g.paddle.Rect.X = snap.PaddleX
	g.paddle.Rect.Y = snap.PaddleY
	g.paddle.Rect.W = snap.PaddleW
	g.paddle.Rect.H = snap.PaddleH

	g.balls = make([]*Ball, 0, len(snap.BallData)/7)
	for i := 0; i+6 < len(snap.BallData); i += 7 {
		d := snap.BallData[i : i+7]
		b := &Ball{Speed: d[5], Super: d[6] == 1}
		b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H = d[0], d[1], d[2], d[2]
		b.Vel.X, b.Vel.Y = d[3], d[4]
		g.balls = append(g.balls, b)
	}

	g.blocks = make([]*Block, 0, len(snap.BlockData)/5)
	for i := 0; i+4 < len(snap.BlockData); i += 5 {
		d := snap.BlockData[i : i+5]
		blk := &Block{Lives: int(d[3]), Type: BlockType(d[4])}
		blk.Rect.X, blk.Rect.Y, blk.Rect.W, blk.Rect.H = d[0], d[1], d[2], d[2]
		g.blocks = append(g.blocks, blk)
	}

	g.upgrades.Reset()
	for i := 0; i+4 < len(snap.CoinData); i += 5 {
		d := snap.CoinData[i : i+5]
		c := &Coin{Kind: UpgradeKind(d[4])}
		c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H = d[0], d[1], d[2], d[3]
		g.upgrades.Falling = append(g.upgrades.Falling, c)
	}
	g.upgrades.MagnetActive = snap.MagnetActive
	g.upgrades.SpaceInvaderActive = snap.SpaceInvaderActive

	if r, ok := g.rng.(*SimpleRNG); ok && snap.RNGState != 0 {
		r.SetState(snap.RNGState)
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Scale)
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleY)

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.BlockData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.CoinData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + uint64(boolFloat(snap.MagnetActive))
	h = h*31 + uint64(boolFloat(snap.SpaceInvaderActive))
	h = h*31 + snap.RNGState

	return h
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
