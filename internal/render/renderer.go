package render

import (
	"math"
)

// Render executes one full-frame pass: clear, then stroke every visibility
// run and plot every visible star. There is no incremental diffing; the
// frame is redrawn whole on every call.
//
// If style.Visible is false the surface is cleared and nothing is drawn:
// a cheap disabled state, not an error.
func Render(b Backend, frame Frame, style Style) {
	b.Clear()
	if !style.Visible {
		return
	}

	opacity := clampOpacity(style.Opacity)

	for _, pl := range frame.Lines {
		strokeRuns(b, pl, style, opacity)
	}

	for _, s := range frame.Stars {
		if !s.Point.Visible {
			continue
		}
		b.Marker(s.Point, MarkerSize(s.Magnitude, style), opacity, s.Color)
	}
}

// strokeRuns walks one polyline, starting a new stroke on each
// invisible-to-visible transition and committing it when the run ends. A run
// of a single point cannot form a line and produces no stroke at all.
func strokeRuns(b Backend, pl ProjectedLine, style Style, opacity float64) {
	run := pl.Points[:0:0]
	flush := func() {
		if len(run) >= 2 {
			b.Stroke(run, style.StrokeWidth, opacity, style.LineColor)
		}
		run = run[:0]
	}

	for _, p := range pl.Points {
		if p.Visible {
			run = append(run, p)
		} else {
			flush()
		}
	}
	flush()
}

// BuildCommands runs a pass against a Recorder and returns the command list.
// This is the headless variant of Render for hosts that execute commands
// through their own backend.
func BuildCommands(frame Frame, style Style) []Command {
	var rec Recorder
	Render(&rec, frame, style)
	return rec.Commands
}

// MarkerSize maps a star magnitude onto a marker size in pixels. Brighter
// stars (lower magnitude) get larger markers; the scale is the style's base
// size at magnitude 2 and never drops below one pixel.
func MarkerSize(mag float64, style Style) float64 {
	size := style.MarkerSize * (1 + (2-mag)*0.25)
	return math.Max(size, 1)
}

func clampOpacity(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
