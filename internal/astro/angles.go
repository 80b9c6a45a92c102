// Package astro provides angle math and equatorial coordinate handling for the sky chart.
package astro

import (
	"math"
)

// EquatorialPoint is a position on the celestial sphere.
type EquatorialPoint struct {
	RADeg  float64 // Right Ascension in degrees (0-360)
	DecDeg float64 // Declination in degrees (-90 to +90)
}

// Sanitize returns the point with coordinates forced into catalog range:
// RA wrapped to [0,360), declination clamped to [-90,90]. Non-finite
// components become 0 so a malformed catalog entry cannot poison a frame.
func (p EquatorialPoint) Sanitize() EquatorialPoint {
	return EquatorialPoint{
		RADeg:  NormalizeRA(p.RADeg),
		DecDeg: ClampDec(p.DecDeg),
	}
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeRA wraps a right ascension to [0, 360). Non-finite input maps to 0.
func NormalizeRA(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// WrapAngle180 wraps an angle to the (-180, 180] range.
func WrapAngle180(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}

// ClampDec clamps a declination to [-90, 90]. Non-finite input maps to 0.
func ClampDec(deg float64) float64 {
	switch {
	case math.IsNaN(deg) || math.IsInf(deg, 0):
		return 0
	case deg > 90:
		return 90
	case deg < -90:
		return -90
	}
	return deg
}
