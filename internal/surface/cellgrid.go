package surface

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/skychart/internal/catalog"
	"github.com/litescript/skychart/internal/projection"
)

// Marker glyphs by size (brighter stars get more prominent symbols).
const (
	glyphStarBright = '✶'
	glyphStarMedium = '✸'
	glyphStarDim    = '·'
	glyphLine       = '·'
	glyphLineWide   = '•'
)

// Terminal cells are roughly twice as tall as they are wide. Stretching X
// displacement around the viewport center keeps the horizon disk round.
const cellAspect = 0.5

// CellGrid is a rune/color raster the renderer can draw into; String renders
// it as lipgloss-styled terminal output. One cell is one pixel.
type CellGrid struct {
	width  int
	height int
	cells  [][]rune
	colors [][]string
}

// NewCellGrid allocates a grid. Zero or negative dimensions produce an empty
// grid that swallows all drawing.
func NewCellGrid(width, height int) *CellGrid {
	g := &CellGrid{}
	g.Resize(width, height)
	return g
}

// Resize reallocates the grid. Contents are discarded; the next pass clears
// and redraws everything anyway.
func (g *CellGrid) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g.width = width
	g.height = height
	g.cells = make([][]rune, height)
	g.colors = make([][]string, height)
	for y := 0; y < height; y++ {
		g.cells[y] = make([]rune, width)
		g.colors[y] = make([]string, width)
	}
	g.Clear()
}

// Size returns the grid dimensions.
func (g *CellGrid) Size() (int, int) {
	return g.width, g.height
}

// Clear blanks the whole grid.
func (g *CellGrid) Clear() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.cells[y][x] = ' '
			g.colors[y][x] = ""
		}
	}
}

// Stroke draws a polyline cell by cell with Bresenham segments.
func (g *CellGrid) Stroke(points []projection.ScreenPoint, width, opacity float64, color catalog.RGB) {
	glyph := glyphLine
	if width > 1.5 {
		glyph = glyphLineWide
	}
	hex := hexColor(color, opacity)

	for i := 1; i < len(points); i++ {
		g.line(
			g.col(points[i-1].X), int(math.Round(points[i-1].Y)),
			g.col(points[i].X), int(math.Round(points[i].Y)),
			glyph, hex,
		)
	}
}

// Marker plots one star glyph sized by the marker size.
func (g *CellGrid) Marker(p projection.ScreenPoint, size, opacity float64, color catalog.RGB) {
	glyph := glyphStarDim
	switch {
	case size >= 2.5:
		glyph = glyphStarBright
	case size >= 1.8:
		glyph = glyphStarMedium
	}
	g.set(g.col(p.X), int(math.Round(p.Y)), glyph, hexColor(color, opacity))
}

// col maps a projected X coordinate onto a grid column, correcting for the
// cell aspect ratio.
func (g *CellGrid) col(x float64) int {
	cx := float64(g.width) / 2
	return int(math.Round(cx + (x-cx)/cellAspect))
}

// String renders the grid as styled terminal lines.
func (g *CellGrid) String() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			r := g.cells[y][x]
			hex := g.colors[y][x]
			if hex == "" {
				b.WriteRune(r)
				continue
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
			b.WriteString(style.Render(string(r)))
		}
		if y < g.height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Plain renders the grid without styling, for headless output and tests.
func (g *CellGrid) Plain() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteRune(g.cells[y][x])
		}
		if y < g.height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// At returns the rune at a cell, or space when out of bounds.
func (g *CellGrid) At(x, y int) rune {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return ' '
	}
	return g.cells[y][x]
}

func (g *CellGrid) set(x, y int, r rune, hex string) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y][x] = r
	g.colors[y][x] = hex
}

// line draws a segment using Bresenham's algorithm.
func (g *CellGrid) line(x0, y0, x1, y1 int, r rune, hex string) {
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
		g.set(x0, y0, r, hex)
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

// hexColor folds opacity into the color by dimming, since terminal cells
// have no real alpha channel.
func hexColor(c catalog.RGB, opacity float64) string {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return fmt.Sprintf("#%02X%02X%02X",
		channel(c.R*opacity), channel(c.G*opacity), channel(c.B*opacity))
}

func channel(v float64) int {
	i := int(v * 255)
	if i < 0 {
		return 0
	}
	if i > 255 {
		return 255
	}
	return i
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
