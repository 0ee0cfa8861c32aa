package core

import "unicode/utf8"

// Font measures text in world units.
type Font interface {
	Measure(text string, size float64) (w, h float64)
}

// CellFont measures text laid out on a terminal grid: every rune takes one
// cell and a line is one cell tall regardless of the requested size.
type CellFont struct{}

// Measure implements Font.
func (CellFont) Measure(text string, _ float64) (w, h float64) {
	return float64(utf8.RuneCountInString(text)) * CellWidth, CellHeight
}
