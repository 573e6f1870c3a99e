package spatial

import (
	"math"
)

// Point represents a 2D point with latitude and longitude
type Point struct {
	Lat float64
	Lon float64
}

// Valid reports whether both components are finite and within the
// conventional latitude/longitude ranges
func (p Point) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) {
		return false
	}
	if math.IsNaN(p.Lon) || math.IsInf(p.Lon, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// BoundingBox calculates the bounding box of a set of points
// Returns (minLat, minLon, maxLat, maxLon)
func BoundingBox(points []Point) (float64, float64, float64, float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}

	minLat, maxLat := points[0].Lat, points[0].Lat
	minLon, maxLon := points[0].Lon, points[0].Lon

	for _, p := range points[1:] {
		if p.Lat < minLat {
			minLat = p.Lat
		}
		if p.Lat > maxLat {
			maxLat = p.Lat
		}
		if p.Lon < minLon {
			minLon = p.Lon
		}
		if p.Lon > maxLon {
			maxLon = p.Lon
		}
	}

	return minLat, minLon, maxLat, maxLon
}

// BoundingBoxArea calculates the area of a bounding box in square meters
func BoundingBoxArea(minLat, minLon, maxLat, maxLon float64) float64 {
	width := HaversineDistance(minLat, minLon, minLat, maxLon)
	height := HaversineDistance(minLat, minLon, maxLat, minLon)
	return width * height
}

// PolygonArea calculates the area of a polygon from its ordered vertices
// (clockwise or counter-clockwise). Returns area in square meters.
func PolygonArea(points []Point) float64 {
	if len(points) < 3 {
		return 0
	}

	// Shoelace formula; adequate for city-scale polygons where the
	// surface is close to flat
	var sum float64
	for i := 0; i < len(points); i++ {
		j := (i + 1) % len(points)
		sum += (points[j].Lon - points[i].Lon) * (points[j].Lat + points[i].Lat)
	}

	latRad := points[0].Lat * math.Pi / 180
	metersPerDegreeLat := 111320.0
	metersPerDegreeLon := 111320.0 * math.Cos(latRad)

	return math.Abs(sum) * metersPerDegreeLat * metersPerDegreeLon / 2.0
}

// PointInPolygon checks if a point is inside a polygon using ray casting.
// Works for arbitrary simple polygons, convex or not.
func PointInPolygon(point Point, polygon []Point) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	j := len(polygon) - 1

	for i := 0; i < len(polygon); i++ {
		if ((polygon[i].Lat > point.Lat) != (polygon[j].Lat > point.Lat)) &&
			(point.Lon < (polygon[j].Lon-polygon[i].Lon)*(point.Lat-polygon[i].Lat)/(polygon[j].Lat-polygon[i].Lat)+polygon[i].Lon) {
			inside = !inside
		}
		j = i
	}

	return inside
}
