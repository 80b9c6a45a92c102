package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/litescript/skychart/internal/astro"
)

// JSON structures matching the catalog files.
//
// Stars come from the SIMBAD converter as a flat array; constellation lines
// arrive as a GeoJSON-style feature collection with MultiLineString geometry
// in [ra, dec] degree pairs.

type jsonStar struct {
	Name      string   `json:"name"`
	RA        *float64 `json:"ra"`
	Dec       *float64 `json:"dec"`
	Magnitude *float64 `json:"magnitude"`
	Color     *RGB     `json:"color"`
}

type jsonFeatureCollection struct {
	Features []jsonFeature `json:"features"`
}

type jsonFeature struct {
	ID         string            `json:"id"`
	Geometry   jsonGeometry      `json:"geometry"`
	Properties map[string]string `json:"properties"`
}

type jsonGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// DecodeStars parses the star catalog JSON. Records with missing coordinates
// are skipped; out-of-range values are clamped rather than rejected so one
// malformed entry cannot take down the whole catalog.
func DecodeStars(data []byte) ([]Star, error) {
	var raw []jsonStar
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal star catalog: %w", err)
	}

	stars := make([]Star, 0, len(raw))
	for _, r := range raw {
		if r.RA == nil || r.Dec == nil {
			continue
		}
		s := Star{Name: r.Name}
		s.Position.RADeg = *r.RA
		s.Position.DecDeg = *r.Dec
		if r.Magnitude != nil {
			s.Magnitude = *r.Magnitude
		} else {
			s.Magnitude = 6
		}
		if r.Color != nil {
			s.Color = *r.Color
		}
		stars = append(stars, sanitizeStar(s))
	}
	return stars, nil
}

// DecodeLines parses a constellation feature collection. Features whose
// geometry kind is not MultiLineString are ignored, not errors.
func DecodeLines(data []byte) ([]LineFeature, error) {
	var raw jsonFeatureCollection
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal constellation catalog: %w", err)
	}

	features := make([]LineFeature, 0, len(raw.Features))
	for _, f := range raw.Features {
		if Kind(normalizeGeometryType(f.Geometry.Type)) != KindMultiLine {
			continue
		}

		var coords [][][2]float64
		if err := json.Unmarshal(f.Geometry.Coordinates, &coords); err != nil {
			// Malformed geometry: drop the feature, keep the catalog.
			continue
		}

		feature := LineFeature{Name: featureName(f)}
		for _, line := range coords {
			poly := make([]astro.EquatorialPoint, 0, len(line))
			for _, pair := range line {
				poly = append(poly, astro.EquatorialPoint{RADeg: pair[0], DecDeg: pair[1]})
			}
			feature.Lines = append(feature.Lines, poly)
		}
		features = append(features, sanitizeLines(feature))
	}
	return features, nil
}

// LoadStars reads and decodes a star catalog file.
func LoadStars(path string) ([]Star, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read star catalog: %w", err)
	}
	return DecodeStars(data)
}

// LoadLines reads and decodes a constellation catalog file.
func LoadLines(path string) ([]LineFeature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read constellation catalog: %w", err)
	}
	return DecodeLines(data)
}

// normalizeGeometryType maps the GeoJSON spelling onto our kind tags.
func normalizeGeometryType(t string) string {
	switch t {
	case "MultiLineString", "multi-line-string":
		return string(KindMultiLine)
	case "Point", "point":
		return string(KindPoint)
	}
	return t
}

func featureName(f jsonFeature) string {
	if f.Properties != nil {
		if n, ok := f.Properties["name"]; ok && n != "" {
			return n
		}
	}
	return f.ID
}
