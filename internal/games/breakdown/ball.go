package breakdown

import (
	"math"

	"github.com/vovakirdan/breakdown/internal/core"
)

// Ball is a square projectile with a unit-length direction.
type Ball struct {
	Rect  core.Rect
	Vel   core.Vec2 // Unit direction
	Speed float64   // Units per second
	Super bool      // Destroys any block in one hit
}

// NewBall creates a ball at pos heading downward at a random angle.
func NewBall(pos core.Vec2, size, speed float64, super bool, rng Rand) *Ball {
	b := &Ball{
		Rect:  core.NewRect(pos.X, pos.Y, size, size),
		Speed: speed,
		Super: super,
	}
	b.RandomDirection(rng)
	return b
}

// RandomDirection points the ball downward with a uniformly random x lean.
func (b *Ball) RandomDirection(rng Rand) {
	b.Vel = core.V2(uniform(rng, -1, 1), 1).Normalize()
}

// Clone returns a ball with the same footprint, speed and variant and a
// fresh random direction.
func (b *Ball) Clone(rng Rand) *Ball {
	return NewBall(b.Rect.Point(), b.Rect.W, b.Speed, b.Super, rng)
}

// Update integrates position and applies the side and top wall rules.
// There is no bottom wall.
func (b *Ball) Update(dt, screenW float64) {
	b.Rect.X += b.Vel.X * dt * b.Speed
	b.Rect.Y += b.Vel.Y * dt * b.Speed

	if b.Rect.X < 0 {
		b.Vel.X = 1
	}
	if b.Rect.Right() > screenW {
		b.Vel.X = -1
	}
	if b.Rect.Y < 0 {
		b.Vel.Y = 1
	}
	b.Vel = b.Vel.Normalize()
}

// Bounce resolves a collision with a static body. The overlap rectangle
// picks the axis: wider than tall bounces on y, otherwise on x. The ball is
// pushed out of the body and its velocity on that axis points away from it.
// jitter > 0 nudges x by a random amount in [0, jitter) on y bounces.
// Returns false and changes nothing when the rectangles do not overlap.
func (b *Ball) Bounce(body core.Rect, jitter float64, rng Rand) bool {
	overlap, ok := b.Rect.Intersect(body)
	if !ok {
		return false
	}

	to := body.Center().Sub(b.Rect.Center()).Signum()

	if overlap.W > overlap.H {
		sy := awaySign(to.Y, b.Vel.Y)
		b.Rect.Y -= sy * overlap.H
		b.Vel.Y = -sy * math.Abs(b.Vel.Y)
		if jitter > 0 {
			b.Vel.X += uniform(rng, 0, jitter)
		}
	} else {
		sx := awaySign(to.X, b.Vel.X)
		b.Rect.X -= sx * overlap.W
		b.Vel.X = -sx * math.Abs(b.Vel.X)
	}
	b.Vel = b.Vel.Normalize()
	return true
}

// awaySign returns the side of the body relative to the ball on one axis.
// Centers aligned on that axis fall back to the direction of travel, so the
// ball always reverses instead of stalling.
func awaySign(centerSign, vel float64) float64 {
	if centerSign != 0 {
		return centerSign
	}
	if s := core.Sign(vel); s != 0 {
		return s
	}
	return 1
}

// Color returns the draw color of the ball.
func (b *Ball) Color() core.Color {
	if b.Super {
		return core.ColorGold
	}
	return core.ColorBlue
}
