package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/litescript/skychart/internal/projection"
)

// CommandExport is the JSON-serializable form of one drawing command.
type CommandExport struct {
	Kind    string        `json:"kind"`
	Points  []PointExport `json:"points"`
	Width   float64       `json:"width,omitempty"`
	Size    float64       `json:"size,omitempty"`
	Opacity float64       `json:"opacity"`
	Color   ColorExport   `json:"color"`
}

// PointExport is a JSON-friendly screen point. Only visible points appear in
// commands, so the visibility flag is not exported.
type PointExport struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ColorExport is a JSON-friendly color.
type ColorExport struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// FrameExport is a full command-list dump for one render pass.
type FrameExport struct {
	WidthPx  int             `json:"width_px"`
	HeightPx int             `json:"height_px"`
	Commands []CommandExport `json:"commands"`
}

// ExportFrame converts a command list into its exportable form.
func ExportFrame(view projection.ViewState, commands []Command) *FrameExport {
	export := &FrameExport{
		WidthPx:  view.WidthPx,
		HeightPx: view.HeightPx,
		Commands: make([]CommandExport, 0, len(commands)),
	}

	for _, cmd := range commands {
		ce := CommandExport{
			Kind:    string(cmd.Kind),
			Points:  make([]PointExport, 0, len(cmd.Points)),
			Width:   cmd.Width,
			Size:    cmd.Size,
			Opacity: cmd.Opacity,
			Color:   ColorExport{R: cmd.Color.R, G: cmd.Color.G, B: cmd.Color.B},
		}
		for _, p := range cmd.Points {
			ce.Points = append(ce.Points, PointExport{X: p.X, Y: p.Y})
		}
		export.Commands = append(export.Commands, ce)
	}

	return export
}

// WriteJSON writes the export as indented JSON.
func (e *FrameExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("encode frame export: %w", err)
	}
	return nil
}
