package astro

import (
	"math"
	"testing"
)

func TestDegToRad(t *testing.T) {
	tests := []struct {
		deg float64
		rad float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{360, 2 * math.Pi},
		{-90, -math.Pi / 2},
	}

	for _, tt := range tests {
		got := DegToRad(tt.deg)
		if math.Abs(got-tt.rad) > 1e-10 {
			t.Errorf("DegToRad(%v) = %v, want %v", tt.deg, got, tt.rad)
		}
	}
}

func TestRadToDeg(t *testing.T) {
	tests := []struct {
		rad float64
		deg float64
	}{
		{0, 0},
		{math.Pi / 2, 90},
		{math.Pi, 180},
		{2 * math.Pi, 360},
	}

	for _, tt := range tests {
		got := RadToDeg(tt.rad)
		if math.Abs(got-tt.deg) > 1e-10 {
			t.Errorf("RadToDeg(%v) = %v, want %v", tt.rad, got, tt.deg)
		}
	}
}

func TestNormalizeRA(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0, 0},
		{359.9, 359.9},
		{360, 0},
		{370, 10},
		{-10, 350},
		{-370, 350},
		{720, 0},
	}

	for _, tt := range tests {
		got := NormalizeRA(tt.input)
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("NormalizeRA(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeRA_NonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := NormalizeRA(v); got != 0 {
			t.Errorf("NormalizeRA(%v) = %v, want 0", v, got)
		}
	}
}

func TestWrapAngle180(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{181, -179},
		{350, -10},
		{-190, 170},
		{540, 180},
	}

	for _, tt := range tests {
		got := WrapAngle180(tt.input)
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("WrapAngle180(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestClampDec(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0, 0},
		{45, 45},
		{90, 90},
		{-90, -90},
		{90.1, 90},
		{-95, -90},
		{1000, 90},
	}

	for _, tt := range tests {
		got := ClampDec(tt.input)
		if got != tt.expected {
			t.Errorf("ClampDec(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := ClampDec(v); got != 0 {
			t.Errorf("ClampDec(%v) = %v, want 0", v, got)
		}
	}
}

func TestEquatorialPoint_Sanitize(t *testing.T) {
	p := EquatorialPoint{RADeg: 365, DecDeg: 95}.Sanitize()
	if p.RADeg != 5 || p.DecDeg != 90 {
		t.Errorf("Sanitize() = %+v, want {5 90}", p)
	}

	p = EquatorialPoint{RADeg: math.NaN(), DecDeg: math.Inf(-1)}.Sanitize()
	if p.RADeg != 0 || p.DecDeg != 0 {
		t.Errorf("Sanitize() of non-finite = %+v, want {0 0}", p)
	}
}
