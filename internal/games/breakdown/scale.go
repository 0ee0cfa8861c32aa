package breakdown

// Scale converts unscaled tuning values into display units. Total is the
// product of the constant base multiplier and the ratio of the current
// screen width to the reference width.
type Scale struct {
	Base           float64
	ReferenceWidth float64
	ScreenScale    float64
	Total          float64
}

// NewScale computes a scale for the given screen width.
func NewScale(base, referenceWidth, screenW float64) Scale {
	s := Scale{Base: base, ReferenceWidth: referenceWidth}
	s.Update(screenW)
	return s
}

// Update recomputes the scale after the screen width changed.
func (s *Scale) Update(screenW float64) {
	if s.ReferenceWidth > 0 {
		s.ScreenScale = screenW / s.ReferenceWidth
	} else {
		s.ScreenScale = 1
	}
	s.Total = s.Base * s.ScreenScale
}
