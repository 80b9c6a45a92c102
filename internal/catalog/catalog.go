// Package catalog holds the read-only star and constellation data the chart renders.
package catalog

import (
	"github.com/litescript/skychart/internal/astro"
)

// Kind tags a feature's geometry. Only points (stars) and multi-line-strings
// (constellation line groups) are recognized; anything else is ignored.
type Kind string

const (
	KindPoint     Kind = "point"
	KindMultiLine Kind = "multi-line-string"
)

// RGB is a normalized 0-1 color, matching the upstream catalog converter.
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// clamp01 forces a channel into 0-1.
func clamp01(v float64) float64 {
	switch {
	case v != v: // NaN
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Sanitize returns the color with all channels clamped to 0-1.
func (c RGB) Sanitize() RGB {
	return RGB{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// White is the default star color when the catalog carries none.
var White = RGB{R: 1, G: 0.95, B: 0.9}

// Star is a point feature: one catalog star.
type Star struct {
	Name      string
	Position  astro.EquatorialPoint
	Magnitude float64 // apparent visual magnitude, lower = brighter
	Color     RGB
}

// LineFeature is one constellation's line segment group: an ordered set of
// polylines. Polylines are independent of each other and of other features;
// visibility breaks inside one must never connect across them.
type LineFeature struct {
	Name  string
	Lines [][]astro.EquatorialPoint
}

// Collection is the full catalog for a render session. It is loaded once and
// treated as immutable from then on.
type Collection struct {
	Stars []Star
	Lines []LineFeature
}

// VertexCount returns the total number of line vertices, used for sizing
// per-frame buffers.
func (c *Collection) VertexCount() int {
	n := 0
	for _, f := range c.Lines {
		for _, line := range f.Lines {
			n += len(line)
		}
	}
	return n
}

// sanitizeStar forces a decoded star into catalog invariants.
func sanitizeStar(s Star) Star {
	s.Position = s.Position.Sanitize()
	s.Color = s.Color.Sanitize()
	if s.Color == (RGB{}) {
		s.Color = White
	}
	if s.Magnitude != s.Magnitude { // NaN magnitude: treat as dim
		s.Magnitude = 6
	}
	return s
}

// sanitizeLines forces every vertex of a line feature into catalog range.
func sanitizeLines(f LineFeature) LineFeature {
	for i, line := range f.Lines {
		for j, p := range line {
			f.Lines[i][j] = p.Sanitize()
		}
	}
	return f
}
