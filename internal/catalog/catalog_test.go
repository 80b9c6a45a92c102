package catalog

import (
	"math"
	"testing"

	"github.com/litescript/skychart/internal/astro"
)

func TestRGB_Sanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    RGB
		expected RGB
	}{
		{"in range", RGB{R: 0.5, G: 0.6, B: 0.7}, RGB{R: 0.5, G: 0.6, B: 0.7}},
		{"above one", RGB{R: 1.5, G: 2, B: 0.5}, RGB{R: 1, G: 1, B: 0.5}},
		{"negative", RGB{R: -0.1, G: 0.5, B: -2}, RGB{R: 0, G: 0.5, B: 0}},
		{"nan", RGB{R: math.NaN(), G: 0.5, B: 0.5}, RGB{R: 0, G: 0.5, B: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.Sanitize(); got != tt.expected {
				t.Errorf("Sanitize() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSanitizeStar(t *testing.T) {
	s := sanitizeStar(Star{
		Name:      "test",
		Position:  astro.EquatorialPoint{RADeg: 370, DecDeg: -95},
		Magnitude: 1.5,
	})
	if s.Position.RADeg != 10 || s.Position.DecDeg != -90 {
		t.Errorf("position = %+v, want {10 -90}", s.Position)
	}
	if s.Color != White {
		t.Errorf("zero color = %+v, want White fallback", s.Color)
	}

	s = sanitizeStar(Star{Magnitude: math.NaN()})
	if s.Magnitude != 6 {
		t.Errorf("NaN magnitude = %v, want 6", s.Magnitude)
	}
}

func TestCollection_VertexCount(t *testing.T) {
	col := &Collection{
		Lines: []LineFeature{
			{Name: "a", Lines: [][]astro.EquatorialPoint{
				make([]astro.EquatorialPoint, 3),
				make([]astro.EquatorialPoint, 2),
			}},
			{Name: "b", Lines: [][]astro.EquatorialPoint{
				make([]astro.EquatorialPoint, 4),
			}},
		},
	}
	if got := col.VertexCount(); got != 9 {
		t.Errorf("VertexCount() = %d, want 9", got)
	}
}

func TestDefault(t *testing.T) {
	col := Default()
	if len(col.Stars) == 0 {
		t.Fatal("default catalog has no stars")
	}
	if len(col.Lines) == 0 {
		t.Fatal("default catalog has no constellation lines")
	}

	// Every embedded value must already satisfy the catalog invariants.
	for _, s := range col.Stars {
		if s.Position.RADeg < 0 || s.Position.RADeg >= 360 {
			t.Errorf("star %q RA out of range: %v", s.Name, s.Position.RADeg)
		}
		if s.Position.DecDeg < -90 || s.Position.DecDeg > 90 {
			t.Errorf("star %q dec out of range: %v", s.Name, s.Position.DecDeg)
		}
		if s.Color == (RGB{}) {
			t.Errorf("star %q has no color", s.Name)
		}
	}
	for _, f := range col.Lines {
		if f.Name == "" {
			t.Error("constellation feature with empty name")
		}
		for _, line := range f.Lines {
			if len(line) < 2 {
				t.Errorf("constellation %q has a polyline of %d points", f.Name, len(line))
			}
			for _, p := range line {
				if p.DecDeg < -90 || p.DecDeg > 90 {
					t.Errorf("constellation %q vertex dec out of range: %v", f.Name, p.DecDeg)
				}
			}
		}
	}
}
