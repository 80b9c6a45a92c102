// Package render turns projected catalog geometry into drawing commands.
//
// The renderer never touches a drawing surface directly: it emits a list of
// stroke and marker commands that a backend executes. That keeps the
// projection and culling logic testable without any terminal attached.
package render

import (
	"github.com/litescript/skychart/internal/catalog"
	"github.com/litescript/skychart/internal/projection"
)

// CommandKind tags a drawing command.
type CommandKind string

const (
	KindStroke CommandKind = "stroke"
	KindMarker CommandKind = "marker"
)

// Command is one drawing operation. Stroke commands carry at least two
// points, all visible; marker commands carry exactly one visible point.
type Command struct {
	Kind    CommandKind
	Points  []projection.ScreenPoint
	Width   float64 // stroke width in pixels
	Size    float64 // marker size in pixels
	Opacity float64 // 0-1 alpha
	Color   catalog.RGB
}

// Style holds the per-frame drawing parameters.
type Style struct {
	Opacity     float64 // blended into stroke/marker alpha
	StrokeWidth float64 // line thickness in pixels
	MarkerSize  float64 // base marker size in pixels; scaled by magnitude
	LineColor   catalog.RGB
	Visible     bool // global on/off; false skips rendering entirely
}

// DefaultStyle returns the stock chart styling.
func DefaultStyle() Style {
	return Style{
		Opacity:     1,
		StrokeWidth: 1,
		MarkerSize:  2,
		LineColor:   catalog.RGB{R: 0.55, G: 0.6, B: 0.9},
		Visible:     true,
	}
}

// Backend executes drawing commands against some surface.
type Backend interface {
	// Clear erases the whole surface; called once per frame before drawing.
	Clear()
	// Stroke draws one connected polyline of visible points. The slice is
	// reused between calls; backends must copy it if they retain it.
	Stroke(points []projection.ScreenPoint, width, opacity float64, color catalog.RGB)
	// Marker plots one visible point.
	Marker(p projection.ScreenPoint, size, opacity float64, color catalog.RGB)
}

// Recorder is a headless backend that captures commands, for tests and the
// JSON command dump.
type Recorder struct {
	Cleared  int
	Commands []Command
}

func (r *Recorder) Clear() {
	r.Cleared++
	r.Commands = r.Commands[:0]
}

func (r *Recorder) Stroke(points []projection.ScreenPoint, width, opacity float64, color catalog.RGB) {
	pts := make([]projection.ScreenPoint, len(points))
	copy(pts, points)
	r.Commands = append(r.Commands, Command{
		Kind:    KindStroke,
		Points:  pts,
		Width:   width,
		Opacity: opacity,
		Color:   color,
	})
}

func (r *Recorder) Marker(p projection.ScreenPoint, size, opacity float64, color catalog.RGB) {
	r.Commands = append(r.Commands, Command{
		Kind:    KindMarker,
		Points:  []projection.ScreenPoint{p},
		Size:    size,
		Opacity: opacity,
		Color:   color,
	})
}
