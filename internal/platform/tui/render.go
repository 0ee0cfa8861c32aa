package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/breakdown/internal/core"
	"github.com/vovakirdan/breakdown/internal/games/breakdown"
)

// Glyphs used when replaying rectangles onto cells.
const (
	glyphFill = '█'
	glyphEdge = '▌' // Right edge of wide rects, keeps neighbouring blocks apart
)

// Smallest terminal the playfield is drawn on.
const (
	minCols = 40
	minRows = 12
)

// Playfield background.
var background = lipgloss.Color("255")

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle().Background(background),
	core.ColorRed:     fg("1"),
	core.ColorGreen:   fg("2"),
	core.ColorYellow:  fg("3"),
	core.ColorBlue:    fg("4"),
	core.ColorMagenta: fg("5"),
	core.ColorCyan:    fg("6"),
	core.ColorWhite:   fg("7"),
	core.ColorOrange:  fg("208"),
	core.ColorGray:    fg("245"),
	core.ColorGold:    fg("220"),
	core.ColorPink:    fg("218"),
	core.ColorSkyBlue: fg("117"),
	core.ColorPurple:  fg("93"),
	core.ColorViolet:  fg("177"),
	core.ColorBlack:   fg("16"),
}

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code)).Background(background)
}

// DrawFrame replays the frame's render commands onto s in order.
// World coordinates are converted with core.CellWidth and core.CellHeight.
func DrawFrame(s *core.Screen, f breakdown.Frame) {
	for _, cmd := range f.Commands {
		switch cmd.Kind {
		case breakdown.CommandRect:
			drawRect(s, cmd.Rect, cmd.Color)
		case breakdown.CommandText:
			x := int(math.Round(cmd.Pos.X / core.CellWidth))
			y := int(math.Round(cmd.Pos.Y / core.CellHeight))
			s.DrawText(x, y, cmd.Text, cmd.Color)
		}
	}
}

// drawRect fills the cells covered by r. Every rect covers at least one cell.
func drawRect(s *core.Screen, r core.Rect, c core.Color) {
	x0, x1 := cellSpan(r.X, r.Right(), core.CellWidth)
	y0, y1 := cellSpan(r.Y, r.Bottom(), core.CellHeight)
	w := x1 - x0
	s.FillRect(x0, y0, w, y1-y0, glyphFill, c)
	if w >= 3 {
		s.FillRect(x1-1, y0, 1, y1-y0, glyphEdge, c)
	}
}

func cellSpan(lo, hi, cell float64) (int, int) {
	a := int(math.Round(lo / cell))
	b := int(math.Round(hi / cell))
	if b <= a {
		b = a + 1
	}
	return a, b
}

// TooSmall reports whether s is below the minimum playable size.
func TooSmall(s *core.Screen) bool {
	return s.Width() < minCols || s.Height() < minRows
}

// DrawTooSmall draws a boxed notice asking for a bigger terminal.
func DrawTooSmall(s *core.Screen) {
	msg := fmt.Sprintf("need %dx%d", minCols, minRows)
	boxW := core.Clamp(len(msg)+4, 3, s.Width())
	boxH := core.Clamp(3, 1, s.Height())
	top := (s.Height() - boxH) / 2
	s.DrawBox((s.Width()-boxW)/2, top, boxW, boxH, core.ColorGray)
	s.DrawTextCentered(top+boxH/2, msg, core.ColorRed)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
