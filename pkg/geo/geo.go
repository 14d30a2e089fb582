// Package geo holds the service's geometry representation. Geometries arrive
// as GeoJSON (either an object or a pre-serialized string) and are kept as
// validated GeoJSON so stores and downstream sync targets can pass them
// through without a GIS dependency.
package geo

import (
	"bytes"
	"encoding/json"
	"fmt"

	dErrors "farmgate/pkg/domain-errors"
)

// Geometry is a validated GeoJSON geometry.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// FromJSON converts raw geometry input into a Geometry. The input may be a
// GeoJSON object or a JSON string containing serialized GeoJSON. Both forms
// must carry "type" and "coordinates".
func FromJSON(raw json.RawMessage) (*Geometry, error) {
	if len(raw) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "invalid geometry data: empty input")
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		// Pre-serialized string form: unwrap, then parse the inner document.
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return nil, invalid(raw, err)
		}
		trimmed = []byte(inner)
	}

	var g Geometry
	if err := json.Unmarshal(trimmed, &g); err != nil {
		return nil, invalid(raw, err)
	}
	if g.Type == "" {
		return nil, dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("invalid geometry data %q: missing 'type' field", compact(raw)))
	}
	if len(g.Coordinates) == 0 || string(bytes.TrimSpace(g.Coordinates)) == "null" {
		return nil, dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("invalid geometry data %q: missing 'coordinates' field", compact(raw)))
	}
	return &g, nil
}

// Point builds a GeoJSON point. Coordinates are (longitude, latitude).
func Point(lon, lat float64) *Geometry {
	coords, _ := json.Marshal([2]float64{lon, lat})
	return &Geometry{Type: "Point", Coordinates: coords}
}

// GeoJSON renders the geometry back to its canonical JSON form.
func (g *Geometry) GeoJSON() string {
	out, err := json.Marshal(g)
	if err != nil {
		return ""
	}
	return string(out)
}

func invalid(raw json.RawMessage, err error) error {
	return dErrors.Wrap(err, dErrors.CodeValidation,
		fmt.Sprintf("invalid geometry data %q: %v", compact(raw), err))
}

func compact(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		s := string(raw)
		if len(s) > 80 {
			s = s[:80] + "..."
		}
		return s
	}
	s := buf.String()
	if len(s) > 80 {
		s = s[:80] + "..."
	}
	return s
}
