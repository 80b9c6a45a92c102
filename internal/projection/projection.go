// Package projection maps equatorial coordinates onto a 2D viewport.
//
// The chart uses a stereographic azimuthal projection centered on the
// reference declination: the hemisphere around the view center maps onto a
// disk inscribed in the viewport, and the horizon is the disk's rim. The
// mapping is continuous across the RA 0/360 boundary and finite at both
// celestial poles, which is what makes constellation lines safe to stroke
// without special casing.
package projection

import (
	"math"

	"github.com/litescript/skychart/internal/astro"
)

// ScreenPoint is a projected viewport position. When Visible is false the
// point lies below the simulated horizon (or the viewport is unusable) and
// X/Y must not be used for drawing decisions.
type ScreenPoint struct {
	X       float64
	Y       float64
	Visible bool
}

// ViewState is the full set of per-frame view parameters. It is passed by
// value; the projector and renderer own no mutable shared state.
type ViewState struct {
	WidthPx  int
	HeightPx int
	Rotation float64 // additive RA offset in radians (sky turning over time)
	RefDec   float64 // declination at the center of the disk, in radians
	Opacity  float64 // 0-1, blended into stroke/marker alpha
	Visible  bool    // global layer toggle; false skips rendering entirely
}

// Usable reports whether the viewport can address any pixels at all.
func (v ViewState) Usable() bool {
	return v.WidthPx > 0 && v.HeightPx > 0
}

// Project maps an equatorial position to a screen point for the given view.
//
// The rotation is added to right ascension before projecting. A point is
// visible iff its angular distance from the view center is under 90°, i.e.
// it sits in the projected hemisphere. Out-of-range declination is clamped
// and non-finite coordinates are sanitized, so any finite input produces a
// finite result without panicking.
func Project(raDeg, decDeg float64, view ViewState) ScreenPoint {
	if !view.Usable() {
		return ScreenPoint{}
	}

	p := astro.EquatorialPoint{RADeg: raDeg, DecDeg: decDeg}.Sanitize()

	ra := astro.DegToRad(p.RADeg) + view.Rotation
	dec := astro.DegToRad(p.DecDeg)

	sinDec, cosDec := math.Sincos(dec)
	sinRef, cosRef := math.Sincos(view.RefDec)
	sinRA, cosRA := math.Sincos(ra)

	// Cosine of the angular distance from the view center.
	cosC := sinRef*sinDec + cosRef*cosDec*cosRA

	// Disk radius: the 90° horizon circle maps to r = 2*scale, so the
	// inscribed disk spans the smaller viewport dimension.
	w := float64(view.WidthPx)
	h := float64(view.HeightPx)
	scale := math.Min(w, h) / 4

	// Stereographic mapping. The denominator only approaches zero at the
	// antipode of the view center, which is far below the horizon; clamp it
	// so even that case stays finite.
	denom := 1 + cosC
	if denom < 1e-9 {
		denom = 1e-9
	}
	k := 2 * scale / denom

	x := k * cosDec * sinRA
	y := k * (cosRef*sinDec - sinRef*cosDec*cosRA)

	return ScreenPoint{
		X:       w/2 + x,
		Y:       h/2 - y,
		Visible: cosC > 0,
	}
}

// ProjectPoint is a convenience wrapper over Project for catalog points.
func ProjectPoint(p astro.EquatorialPoint, view ViewState) ScreenPoint {
	return Project(p.RADeg, p.DecDeg, view)
}
