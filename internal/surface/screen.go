package surface

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/litescript/skychart/internal/catalog"
	"github.com/litescript/skychart/internal/projection"
	"github.com/litescript/skychart/internal/render"
)

// Screen executes drawing commands against a live tcell screen. The host
// owns the screen lifecycle and calls Present after each pass.
type Screen struct {
	screen tcell.Screen
}

// NewScreen wraps an initialized tcell screen.
func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// Clear erases the screen.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Stroke draws a polyline with Bresenham segments.
func (s *Screen) Stroke(points []projection.ScreenPoint, width, opacity float64, color catalog.RGB) {
	glyph := glyphLine
	if width > 1.5 {
		glyph = glyphLineWide
	}
	style := tcell.StyleDefault.Foreground(tcellColor(color, opacity))

	for i := 1; i < len(points); i++ {
		s.line(
			s.col(points[i-1].X), int(math.Round(points[i-1].Y)),
			s.col(points[i].X), int(math.Round(points[i].Y)),
			glyph, style,
		)
	}
}

// Marker plots one star glyph.
func (s *Screen) Marker(p projection.ScreenPoint, size, opacity float64, color catalog.RGB) {
	glyph := glyphStarDim
	switch {
	case size >= 2.5:
		glyph = glyphStarBright
	case size >= 1.8:
		glyph = glyphStarMedium
	}
	style := tcell.StyleDefault.Foreground(tcellColor(color, opacity))
	s.screen.SetContent(s.col(p.X), int(math.Round(p.Y)), glyph, nil, style)
}

// col maps a projected X coordinate onto a screen column, correcting for the
// cell aspect ratio.
func (s *Screen) col(x float64) int {
	w, _ := s.screen.Size()
	cx := float64(w) / 2
	return int(math.Round(cx + (x-cx)/cellAspect))
}

func (s *Screen) line(x0, y0, x1, y1 int, r rune, style tcell.Style) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		s.screen.SetContent(x0, y0, r, nil, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func tcellColor(c catalog.RGB, opacity float64) tcell.Color {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return tcell.NewRGBColor(
		int32(channel(c.R*opacity)),
		int32(channel(c.G*opacity)),
		int32(channel(c.B*opacity)),
	)
}

// Ensure both backends satisfy the renderer contract.
var (
	_ render.Backend = (*CellGrid)(nil)
	_ render.Backend = (*Screen)(nil)
)
