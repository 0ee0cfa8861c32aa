package breakdown

import (
	"github.com/vovakirdan/breakdown/internal/config"
	"github.com/vovakirdan/breakdown/internal/core"
)

// UpgradeKind represents the effect granted by a collected coin.
type UpgradeKind int

const (
	UpgradeMagnet         UpgradeKind = iota // Coins steer toward the paddle
	UpgradeBallMultiplier                    // Clone every ball
	UpgradeAddBall                           // One more ball at the paddle
	UpgradeSuperBall                         // One super ball at the paddle
	UpgradeExtraLife                         // One more life
	UpgradeSpaceInvader                      // Sets the space invader flag
	UpgradeCount                             // Sentinel for counting kinds
)

// String returns the name of the upgrade kind.
func (k UpgradeKind) String() string {
	switch k {
	case UpgradeMagnet:
		return "Magnet"
	case UpgradeBallMultiplier:
		return "BallMultiplier"
	case UpgradeAddBall:
		return "AddBall"
	case UpgradeSuperBall:
		return "SuperBall"
	case UpgradeExtraLife:
		return "ExtraLife"
	case UpgradeSpaceInvader:
		return "SpaceInvader"
	default:
		return "?"
	}
}

// Color returns the draw color of a coin of this kind.
func (k UpgradeKind) Color() core.Color {
	switch k {
	case UpgradeMagnet:
		return core.ColorPink
	case UpgradeBallMultiplier:
		return core.ColorSkyBlue
	case UpgradeAddBall:
		return core.ColorPurple
	case UpgradeSuperBall:
		return core.ColorViolet
	case UpgradeExtraLife:
		return core.ColorGold
	case UpgradeSpaceInvader:
		return core.ColorBlack
	default:
		return core.ColorDefault
	}
}

// Coin is a falling upgrade.
type Coin struct {
	Rect core.Rect
	Kind UpgradeKind
}

// Upgrades owns falling coins, the queue of collected kinds and the
// persistent effect flags.
type Upgrades struct {
	Falling            []*Coin
	Activated          []UpgradeKind
	MagnetActive       bool
	SpaceInvaderActive bool

	fallStep   float64
	magnetStep float64
}

// NewUpgrades creates an empty upgrade system.
func NewUpgrades(cfg config.UpgradesConfig) *Upgrades {
	return &Upgrades{
		fallStep:   cfg.FallStep,
		magnetStep: cfg.MagnetStep,
	}
}

// Spawn drops a coin of a uniformly random kind at the origin rectangle.
func (u *Upgrades) Spawn(origin core.Rect, rng Rand) {
	u.SpawnKind(origin, UpgradeKind(rng.Intn(int(UpgradeCount))))
}

// SpawnKind drops a coin of the given kind at the origin rectangle.
func (u *Upgrades) SpawnKind(origin core.Rect, kind UpgradeKind) {
	u.Falling = append(u.Falling, &Coin{Rect: origin, Kind: kind})
}

// Update moves every coin, queues the kind of every coin touching the
// paddle and drops collected coins along with those below the screen.
func (u *Upgrades) Update(paddle core.Rect, screenH float64) {
	target := paddle.Center()
	for _, c := range u.Falling {
		if u.MagnetActive {
			dir := target.Sub(c.Rect.Center()).Normalize()
			c.Rect.X += dir.X * u.magnetStep
			c.Rect.Y += dir.Y * u.magnetStep
		} else {
			c.Rect.Y += u.fallStep
		}
	}

	kept := u.Falling[:0]
	for _, c := range u.Falling {
		switch {
		case c.Rect.Intersects(paddle):
			u.Activated = append(u.Activated, c.Kind)
		case c.Rect.Y >= screenH:
			// Fell off the screen
		default:
			kept = append(kept, c)
		}
	}
	clear(u.Falling[len(kept):])
	u.Falling = kept
}

// TakeActivated returns the queued kinds and empties the queue.
func (u *Upgrades) TakeActivated() []UpgradeKind {
	kinds := u.Activated
	u.Activated = nil
	return kinds
}

// Reset drops every coin, the queue and both persistent flags.
func (u *Upgrades) Reset() {
	u.Falling = nil
	u.Activated = nil
	u.MagnetActive = false
	u.SpaceInvaderActive = false
}
