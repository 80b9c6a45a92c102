package astro

import (
	"math"
	"time"
)

// RotationAt returns the sky rotation angle in radians for a given UTC time
// and observer longitude. Feeding this into the view state makes the chart
// turn with the sky: the rotation is the local sidereal angle, so an object
// whose RA equals the current sidereal time sits on the projection meridian.
func RotationAt(t time.Time, lonDeg float64) float64 {
	lst := GreenwichSiderealAngle(t) + lonDeg

	// Normalize to 0-360
	lst = math.Mod(lst, 360)
	if lst < 0 {
		lst += 360
	}

	return DegToRad(lst)
}

// GreenwichSiderealAngle calculates GMST in degrees for a given UTC time.
// Uses the IAU formula based on Julian Date.
func GreenwichSiderealAngle(t time.Time) float64 {
	jd := JulianDate(t)

	// Julian centuries since J2000.0
	T := (jd - 2451545.0) / 36525.0

	// GMST in degrees (IAU 1982 formula)
	gmst := 280.46061837 +
		360.98564736629*(jd-2451545.0) +
		0.000387933*T*T -
		T*T*T/38710000.0

	// Normalize to 0-360
	gmst = math.Mod(gmst, 360)
	if gmst < 0 {
		gmst += 360
	}

	return gmst
}

// JulianDate calculates the Julian Date for a given time.
func JulianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	// Time of day as fraction
	h := float64(t.Hour())
	min := float64(t.Minute())
	sec := float64(t.Second())
	ns := float64(t.Nanosecond())

	dayFrac := (h + min/60 + sec/3600 + ns/3600e9) / 24.0

	// Adjust for January/February (treat as months 13/14 of previous year)
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	jd := math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5

	return jd
}
