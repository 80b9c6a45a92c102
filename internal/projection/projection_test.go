package projection

import (
	"math"
	"testing"

	"github.com/litescript/skychart/internal/astro"
)

func testView() ViewState {
	return ViewState{
		WidthPx:  800,
		HeightPx: 600,
		Rotation: 0,
		RefDec:   astro.DegToRad(45),
		Opacity:  1,
		Visible:  true,
	}
}

func TestProject_Center(t *testing.T) {
	// A point at the reference declination with zero hour angle lands on the
	// exact viewport center and is visible.
	p := Project(0, 45, testView())
	if !p.Visible {
		t.Fatal("center point should be visible")
	}
	if math.Abs(p.X-400) > 1e-9 || math.Abs(p.Y-300) > 1e-9 {
		t.Errorf("center point = (%f, %f), want (400, 300)", p.X, p.Y)
	}
}

func TestProject_Deterministic(t *testing.T) {
	view := testView()
	view.Rotation = 1.234

	a := Project(83.82, -5.39, view)
	b := Project(83.82, -5.39, view)
	if a != b {
		t.Errorf("same input gave %+v then %+v", a, b)
	}
}

func TestProject_RAWrapContinuity(t *testing.T) {
	view := testView()

	a := Project(359.999, 30, view)
	b := Project(0.001, 30, view)

	if a.Visible != b.Visible {
		t.Fatalf("visibility differs across RA wrap: %v vs %v", a.Visible, b.Visible)
	}
	if math.Abs(a.X-b.X) > 0.1 || math.Abs(a.Y-b.Y) > 0.1 {
		t.Errorf("discontinuity across RA wrap: (%f, %f) vs (%f, %f)", a.X, a.Y, b.X, b.Y)
	}
}

func TestProject_PoleStability(t *testing.T) {
	view := testView()

	// All RA values collapse at the celestial pole: same pixel, finite.
	first := Project(0, 90, view)
	for _, ra := range []float64{0, 45, 123.4, 270, 359.9} {
		p := Project(ra, 90, view)
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			t.Fatalf("pole at ra=%v is non-finite: %+v", ra, p)
		}
		if math.Abs(p.X-first.X) > 1e-6 || math.Abs(p.Y-first.Y) > 1e-6 {
			t.Errorf("pole at ra=%v moved: (%f, %f) vs (%f, %f)", ra, p.X, p.Y, first.X, first.Y)
		}
	}

	// The south pole is below the horizon for a northern view but still finite.
	p := Project(180, -90, view)
	if p.Visible {
		t.Error("south pole should not be visible with refDec=45°")
	}
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		t.Errorf("south pole is non-finite: %+v", p)
	}
}

func TestProject_Horizon(t *testing.T) {
	view := testView()

	tests := []struct {
		name    string
		ra, dec float64
		visible bool
	}{
		{"view center", 0, 45, true},
		{"north pole", 0, 90, true},
		{"near horizon, above", 0, -44, true},
		{"below horizon", 0, -46, false},
		{"antipode", 180, -45, false},
		{"deep south", 10, -89.9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Project(tt.ra, tt.dec, view)
			if p.Visible != tt.visible {
				t.Errorf("Project(%v, %v).Visible = %v, want %v", tt.ra, tt.dec, p.Visible, tt.visible)
			}
		})
	}
}

func TestProject_RotationShiftsRA(t *testing.T) {
	view := testView()
	rotated := view
	rotated.Rotation = astro.DegToRad(20)

	a := Project(10, 30, rotated)
	b := Project(30, 30, view)

	if math.Abs(a.X-b.X) > 1e-6 || math.Abs(a.Y-b.Y) > 1e-6 {
		t.Errorf("rotation by 20° != RA shift by 20°: (%f, %f) vs (%f, %f)", a.X, a.Y, b.X, b.Y)
	}
}

func TestProject_UnusableViewport(t *testing.T) {
	views := []ViewState{
		{WidthPx: 0, HeightPx: 600},
		{WidthPx: 800, HeightPx: 0},
		{WidthPx: -1, HeightPx: -1},
	}

	for _, view := range views {
		p := Project(0, 45, view)
		if p.Visible {
			t.Errorf("viewport %dx%d produced a visible point", view.WidthPx, view.HeightPx)
		}
		if p.X != 0 || p.Y != 0 {
			t.Errorf("viewport %dx%d produced coordinates %+v", view.WidthPx, view.HeightPx, p)
		}
	}
}

func TestProject_SanitizesInput(t *testing.T) {
	view := testView()

	// Declination beyond the poles clamps instead of wrapping around.
	clamped := Project(0, 95, view)
	pole := Project(0, 90, view)
	if clamped != pole {
		t.Errorf("dec=95 projected to %+v, dec=90 to %+v", clamped, pole)
	}

	// Non-finite input never produces non-finite output.
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		p := Project(bad, bad, view)
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			t.Errorf("Project(%v, %v) = %+v, want finite", bad, bad, p)
		}
	}
}

func TestProject_VisiblePointsBounded(t *testing.T) {
	// Every visible point lies within the horizon disk, whose radius is half
	// the smaller viewport dimension.
	view := testView()
	maxR := math.Min(float64(view.WidthPx), float64(view.HeightPx)) / 2

	for ra := 0.0; ra < 360; ra += 15 {
		for dec := -90.0; dec <= 90; dec += 15 {
			p := Project(ra, dec, view)
			if !p.Visible {
				continue
			}
			dx := p.X - 400
			dy := p.Y - 300
			if r := math.Hypot(dx, dy); r > maxR+1e-6 {
				t.Errorf("visible point (%v, %v) at radius %f > %f", ra, dec, r, maxR)
			}
		}
	}
}

func TestViewState_Usable(t *testing.T) {
	tests := []struct {
		w, h   int
		usable bool
	}{
		{800, 600, true},
		{1, 1, true},
		{0, 600, false},
		{800, 0, false},
		{0, 0, false},
		{-5, 10, false},
	}

	for _, tt := range tests {
		v := ViewState{WidthPx: tt.w, HeightPx: tt.h}
		if got := v.Usable(); got != tt.usable {
			t.Errorf("ViewState{%d, %d}.Usable() = %v, want %v", tt.w, tt.h, got, tt.usable)
		}
	}
}

func TestProjectPoint(t *testing.T) {
	view := testView()
	p := astro.EquatorialPoint{RADeg: 0, DecDeg: 45}
	if got := ProjectPoint(p, view); got != Project(0, 45, view) {
		t.Errorf("ProjectPoint disagrees with Project: %+v", got)
	}
}
