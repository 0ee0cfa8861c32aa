package breakdown

import "github.com/vovakirdan/breakdown/internal/core"

// Paddle is the player-controlled horizontal bar.
type Paddle struct {
	Rect  core.Rect
	Speed float64 // Units per second
}

// NewPaddle creates a paddle centered horizontally, offsetY units above the
// bottom of the screen.
func NewPaddle(w, h, speed, offsetY, screenW, screenH float64) *Paddle {
	return &Paddle{
		Rect:  core.NewRect(screenW*0.5-w*0.5, screenH-offsetY, w, h),
		Speed: speed,
	}
}

// Update moves the paddle by the held direction keys and clamps it to the
// screen. Holding both keys cancels out.
func (p *Paddle) Update(dt float64, in core.InputFrame, screenW float64) {
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	var move float64
	switch {
	case left && !right:
		move = -1
	case right && !left:
		move = 1
	}
	p.Rect.X += move * dt * p.Speed

	if p.Rect.X <= 0 {
		p.Rect.X = 0
	}
	if p.Rect.Right() >= screenW {
		p.Rect.X = screenW - p.Rect.W
	}
}

// Color returns the draw color of the paddle.
func (p *Paddle) Color() core.Color {
	return core.ColorBlue
}
