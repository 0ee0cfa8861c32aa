package breakdown

import (
	"testing"

	"github.com/vovakirdan/breakdown/internal/config"
	"github.com/vovakirdan/breakdown/internal/core"
)

func newTestUpgrades() *Upgrades {
	return NewUpgrades(config.UpgradesConfig{FallStep: 1, MagnetStep: 2})
}

var testPaddle = core.NewRect(340, 550, 120, 16)

func TestUpgradeSpawnKinds(t *testing.T) {
	u := newTestUpgrades()
	rng := &scriptedRand{ints: []int{0, 1, 2, 3, 4, 5}}
	origin := core.NewRect(10, 20, 32, 32)

	for range int(UpgradeCount) {
		u.Spawn(origin, rng)
	}

	want := []UpgradeKind{
		UpgradeMagnet, UpgradeBallMultiplier, UpgradeAddBall,
		UpgradeSuperBall, UpgradeExtraLife, UpgradeSpaceInvader,
	}
	for i, c := range u.Falling {
		if c.Kind != want[i] {
			t.Errorf("coin %d kind = %v, expected %v", i, c.Kind, want[i])
		}
		if c.Rect != origin {
			t.Errorf("coin %d rect = %+v, expected block rect", i, c.Rect)
		}
	}
}

func TestUpgradesFall(t *testing.T) {
	u := newTestUpgrades()
	u.SpawnKind(core.NewRect(100, 100, 32, 32), UpgradeAddBall)

	u.Update(testPaddle, testH)

	c := u.Falling[0]
	if c.Rect.X != 100 || c.Rect.Y != 101 {
		t.Errorf("coin at (%v, %v), expected (100, 101)", c.Rect.X, c.Rect.Y)
	}
}

func TestUpgradesMagnet(t *testing.T) {
	u := newTestUpgrades()
	u.MagnetActive = true
	// Coin center (400, 300) sits straight above the paddle center (400, 558).
	u.SpawnKind(core.NewRect(384, 284, 32, 32), UpgradeAddBall)

	u.Update(testPaddle, testH)

	c := u.Falling[0]
	if !near(c.Rect.X, 384) || !near(c.Rect.Y, 286) {
		t.Errorf("coin at (%v, %v), expected (384, 286)", c.Rect.X, c.Rect.Y)
	}

	// Sideways pull.
	u.Falling = nil
	u.SpawnKind(core.NewRect(0, 550, 32, 16), UpgradeAddBall)
	u.Update(testPaddle, testH)
	if c := u.Falling[0]; !near(c.Rect.X, 2) || !near(c.Rect.Y, 550) {
		t.Errorf("coin at (%v, %v), expected (2, 550)", c.Rect.X, c.Rect.Y)
	}
}

func TestUpgradesCollectAllOverlapping(t *testing.T) {
	u := newTestUpgrades()
	u.SpawnKind(core.NewRect(350, 540, 32, 32), UpgradeExtraLife)
	u.SpawnKind(core.NewRect(420, 540, 32, 32), UpgradeMagnet)
	u.SpawnKind(core.NewRect(10, 10, 32, 32), UpgradeAddBall)

	u.Update(testPaddle, testH)

	if len(u.Activated) != 2 {
		t.Fatalf("activated = %v, expected both overlapping coins", u.Activated)
	}
	if u.Activated[0] != UpgradeExtraLife || u.Activated[1] != UpgradeMagnet {
		t.Errorf("activated = %v, expected [ExtraLife Magnet]", u.Activated)
	}
	if len(u.Falling) != 1 || u.Falling[0].Kind != UpgradeAddBall {
		t.Errorf("falling = %d coins, expected only the uncollected one", len(u.Falling))
	}

	kinds := u.TakeActivated()
	if len(kinds) != 2 || len(u.Activated) != 0 {
		t.Errorf("TakeActivated returned %v and left %v", kinds, u.Activated)
	}
}

func TestUpgradesDropOffScreen(t *testing.T) {
	u := newTestUpgrades()
	u.SpawnKind(core.NewRect(10, testH-1, 32, 32), UpgradeAddBall)
	u.SpawnKind(core.NewRect(10, testH-2, 32, 32), UpgradeAddBall)

	u.Update(testPaddle, testH)

	if len(u.Falling) != 1 {
		t.Errorf("falling = %d coins, expected 1 after one left the screen", len(u.Falling))
	}
	if len(u.Activated) != 0 {
		t.Errorf("activated = %v, expected none", u.Activated)
	}
}

func TestUpgradesReset(t *testing.T) {
	u := newTestUpgrades()
	u.SpawnKind(core.NewRect(10, 10, 32, 32), UpgradeAddBall)
	u.Activated = []UpgradeKind{UpgradeExtraLife}
	u.MagnetActive = true
	u.SpaceInvaderActive = true

	u.Reset()

	if len(u.Falling) != 0 || len(u.Activated) != 0 || u.MagnetActive || u.SpaceInvaderActive {
		t.Errorf("Reset left state behind: %+v", u)
	}
}

func TestUpgradeKindColor(t *testing.T) {
	seen := make(map[core.Color]UpgradeKind)
	for k := UpgradeKind(0); k < UpgradeCount; k++ {
		c := k.Color()
		if other, dup := seen[c]; dup {
			t.Errorf("%v and %v share color %v", k, other, c)
		}
		seen[c] = k
	}
}
