package sampler

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/munilab/transit-sampler-go/internal/spatial"
)

// Boundary is a closed polygon over the surface, immutable after
// construction. The bounding box is derived once so rejection sampling can
// draw candidates cheaply before the point-in-polygon test.
type Boundary struct {
	vertices []spatial.Point

	minLat, minLon float64
	maxLat, maxLon float64
}

// NewBoundary builds a boundary from ordered polygon vertices
func NewBoundary(vertices []spatial.Point) (*Boundary, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("boundary needs at least 3 vertices, got %d", len(vertices))
	}

	b := &Boundary{vertices: make([]spatial.Point, len(vertices))}
	copy(b.vertices, vertices)
	b.minLat, b.minLon, b.maxLat, b.maxLon = spatial.BoundingBox(b.vertices)
	return b, nil
}

// LoadBoundary reads polygon vertices from a JSON file containing an array
// of [lat, lon] pairs
func LoadBoundary(path string) (*Boundary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read boundary file: %w", err)
	}

	var pairs [][2]float64
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("failed to parse boundary file: %w", err)
	}

	vertices := make([]spatial.Point, len(pairs))
	for i, p := range pairs {
		vertices[i] = spatial.Point{Lat: p[0], Lon: p[1]}
	}
	return NewBoundary(vertices)
}

// Contains reports whether the point lies inside the polygon. Points outside
// the bounding box are rejected without running the ray cast.
func (b *Boundary) Contains(p spatial.Point) bool {
	if p.Lat < b.minLat || p.Lat > b.maxLat || p.Lon < b.minLon || p.Lon > b.maxLon {
		return false
	}
	return spatial.PointInPolygon(p, b.vertices)
}

// BBox returns (minLat, minLon, maxLat, maxLon)
func (b *Boundary) BBox() (float64, float64, float64, float64) {
	return b.minLat, b.minLon, b.maxLat, b.maxLon
}

// Area returns the polygon area in square meters
func (b *Boundary) Area() float64 {
	return spatial.PolygonArea(b.vertices)
}

// AcceptanceRate estimates the fraction of bounding-box draws that land
// inside the polygon, i.e. the expected efficiency of rejection sampling
func (b *Boundary) AcceptanceRate() float64 {
	boxArea := spatial.BoundingBoxArea(b.minLat, b.minLon, b.maxLat, b.maxLon)
	if boxArea == 0 {
		return 0
	}
	return b.Area() / boxArea
}

// GeoJSON renders the boundary as a GeoJSON Polygon feature. Coordinates
// follow the GeoJSON convention of [lon, lat]. This replaces the original
// diagnostic perimeter plot.
func (b *Boundary) GeoJSON() map[string]interface{} {
	ring := make([][2]float64, 0, len(b.vertices)+1)
	for _, v := range b.vertices {
		ring = append(ring, [2]float64{v.Lon, v.Lat})
	}
	// close the ring
	ring = append(ring, ring[0])

	return map[string]interface{}{
		"type": "Feature",
		"geometry": map[string]interface{}{
			"type":        "Polygon",
			"coordinates": [][][2]float64{ring},
		},
		"properties": map[string]interface{}{
			"vertices":        len(b.vertices),
			"area_m2":         b.Area(),
			"acceptance_rate": b.AcceptanceRate(),
		},
	}
}
