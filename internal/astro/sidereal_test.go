package astro

import (
	"math"
	"testing"
	"time"
)

func TestJulianDate(t *testing.T) {
	tests := []struct {
		name     string
		time     time.Time
		expected float64
	}{
		{
			name:     "J2000 epoch",
			time:     time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			expected: 2451545.0,
		},
		{
			name:     "start of 2024",
			time:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: 2460310.5,
		},
		{
			name:     "mid 2023",
			time:     time.Date(2023, 6, 15, 18, 0, 0, 0, time.UTC),
			expected: 2460111.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JulianDate(tt.time)
			if math.Abs(got-tt.expected) > 1e-6 {
				t.Errorf("JulianDate(%v) = %f, want %f", tt.time, got, tt.expected)
			}
		})
	}
}

func TestGreenwichSiderealAngle(t *testing.T) {
	// At the J2000 epoch GMST is the formula's leading constant.
	got := GreenwichSiderealAngle(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))
	if math.Abs(got-280.46061837) > 1e-4 {
		t.Errorf("GMST at J2000 = %f, want 280.46061837", got)
	}

	// Always normalized to [0, 360).
	times := []time.Time{
		time.Date(1990, 3, 10, 4, 30, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2050, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, tm := range times {
		g := GreenwichSiderealAngle(tm)
		if g < 0 || g >= 360 {
			t.Errorf("GMST(%v) = %f, out of [0, 360)", tm, g)
		}
	}
}

func TestGreenwichSiderealAngle_SiderealDay(t *testing.T) {
	// One sidereal day later the angle comes back around: after 24h solar
	// the sky has turned ~360.9856 degrees.
	t0 := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	t1 := t0.Add(24 * time.Hour)

	g0 := GreenwichSiderealAngle(t0)
	g1 := GreenwichSiderealAngle(t1)

	diff := math.Mod(g1-g0+360, 360)
	if math.Abs(diff-0.98564736629) > 1e-4 {
		t.Errorf("GMST advance over 24h = %f°, want ~0.9856°", diff)
	}
}

func TestRotationAt(t *testing.T) {
	tm := time.Date(2024, 6, 1, 3, 15, 0, 0, time.UTC)

	r := RotationAt(tm, 0)
	if r < 0 || r >= 2*math.Pi {
		t.Errorf("RotationAt = %f, out of [0, 2π)", r)
	}

	// Moving the observer 90° east advances the rotation by π/2.
	east := RotationAt(tm, 90)
	diff := math.Mod(east-r+2*math.Pi, 2*math.Pi)
	if math.Abs(diff-math.Pi/2) > 1e-9 {
		t.Errorf("longitude offset = %f rad, want π/2", diff)
	}
}
