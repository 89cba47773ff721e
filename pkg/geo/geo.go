// Package geo translates between the GeoJSON strings produced by the
// database's spatial functions and the lat/lng pairs the API serves.
// PostGIS emits [lon, lat]; the map frontend wants [lat, lon]. Keeping the
// reorder in one place keeps coordinate-order bugs in one place too.
package geo

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedGeometry is returned when a geometry string cannot be parsed
// into the expected structure.
var ErrMalformedGeometry = errors.New("malformed geometry")

// LatLng marshals to a [lat, lon] JSON array.
type LatLng [2]float64

// Bounds is ((minLat, minLon), (maxLat, maxLon)), south-west then north-east.
type Bounds [2]LatLng

var geometryTypes = map[string]struct{}{
	"Point":           {},
	"LineString":      {},
	"Polygon":         {},
	"MultiPoint":      {},
	"MultiLineString": {},
	"MultiPolygon":    {},
}

// Geometry is a structural GeoJSON geometry. Coordinates are kept raw so they
// round-trip through responses without depth-specific decoding.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// PointToLatLng parses a point geometry serialized by ST_AsGeoJSON and
// returns the coordinate pair reordered to (lat, lon). Empty input yields nil
// without error, matching a NULL geometry column.
func PointToLatLng(s string) (*LatLng, error) {
	if s == "" {
		return nil, nil
	}
	var pt struct {
		Coordinates []float64 `json:"coordinates"`
	}
	if err := json.Unmarshal([]byte(s), &pt); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedGeometry, err)
	}
	if len(pt.Coordinates) != 2 {
		return nil, fmt.Errorf("%w: expected 2 coordinates, got %d", ErrMalformedGeometry, len(pt.Coordinates))
	}
	lon, lat := pt.Coordinates[0], pt.Coordinates[1]
	return &LatLng{lat, lon}, nil
}

// BoundsFromExtents builds display bounds from the four extent scalars. A
// partial bounding box is meaningless, so any missing input yields nil.
func BoundsFromExtents(minLat, minLon, maxLat, maxLon *float64) *Bounds {
	if minLat == nil || minLon == nil || maxLat == nil || maxLon == nil {
		return nil
	}
	return &Bounds{{*minLat, *minLon}, {*maxLat, *maxLon}}
}

// Parse decodes a generic geometry string into a Geometry. Empty input yields
// nil without error.
func Parse(s string) (*Geometry, error) {
	if s == "" {
		return nil, nil
	}
	var g Geometry
	if err := json.Unmarshal([]byte(s), &g); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedGeometry, err)
	}
	if _, ok := geometryTypes[g.Type]; !ok {
		return nil, fmt.Errorf("%w: unsupported type %q", ErrMalformedGeometry, g.Type)
	}
	if len(g.Coordinates) == 0 {
		return nil, fmt.Errorf("%w: missing coordinates", ErrMalformedGeometry)
	}
	return &g, nil
}
