package render

import (
	"github.com/litescript/skychart/internal/catalog"
	"github.com/litescript/skychart/internal/projection"
)

// ProjectedLine is one catalog polyline after projection. Points keep the
// input order and length; visibility filtering is the renderer's job so that
// a polyline's visible sub-runs become separate strokes.
type ProjectedLine struct {
	Feature string
	Points  []projection.ScreenPoint
}

// ProjectedStar is one catalog star after projection.
type ProjectedStar struct {
	Name      string
	Point     projection.ScreenPoint
	Magnitude float64
	Color     catalog.RGB
}

// Frame is the projected geometry for one render pass. It exists only within
// the pass and is rebuilt from scratch every time the view changes.
type Frame struct {
	Lines []ProjectedLine
	Stars []ProjectedStar
}

// ProjectCollection projects every catalog vertex for the given view. It does
// not filter or merge features, and it is side-effect-free: calling it again
// with a different view is how live rotation works.
func ProjectCollection(col *catalog.Collection, view projection.ViewState) Frame {
	if col == nil {
		return Frame{}
	}

	frame := Frame{
		Stars: make([]ProjectedStar, 0, len(col.Stars)),
	}

	for _, f := range col.Lines {
		for _, poly := range f.Lines {
			pl := ProjectedLine{
				Feature: f.Name,
				Points:  make([]projection.ScreenPoint, len(poly)),
			}
			for i, p := range poly {
				pl.Points[i] = projection.ProjectPoint(p, view)
			}
			frame.Lines = append(frame.Lines, pl)
		}
	}

	for _, s := range col.Stars {
		frame.Stars = append(frame.Stars, ProjectedStar{
			Name:      s.Name,
			Point:     projection.ProjectPoint(s.Position, view),
			Magnitude: s.Magnitude,
			Color:     s.Color,
		})
	}

	return frame
}
