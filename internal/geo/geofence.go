// Package geo implements the geometric core of geofence evaluation.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// DefaultBoundaryEpsilon absorbs floating point noise at the fence boundary.
// A point exactly on the circle counts as inside.
const DefaultBoundaryEpsilon = 1.0 // meters

// Circle is a geofence expressed as a center point and a radius in meters.
type Circle struct {
	Center orb.Point // orb convention: {longitude, latitude}.
	Radius float64   // meters
}

// NewCircle builds a circle from latitude/longitude in degrees.
func NewCircle(lat, lon, radiusMeters float64) Circle {
	return Circle{
		Center: orb.Point{lon, lat},
		Radius: radiusMeters,
	}
}

// Contains reports whether the point lies inside the circle, treating the
// boundary (within epsilon meters) as inside.
func (c Circle) Contains(p orb.Point, epsilon float64) bool {
	return haversineDistance(c.Center, p) <= c.Radius+epsilon
}

// Inside reports whether a coordinate pair falls within the circle using the
// default boundary epsilon.
func (c Circle) Inside(lat, lon float64) bool {
	return c.Contains(orb.Point{lon, lat}, DefaultBoundaryEpsilon)
}

// Distance returns the great-circle distance in meters from the circle's
// center to the given coordinate.
func (c Circle) Distance(lat, lon float64) float64 {
	return haversineDistance(c.Center, orb.Point{lon, lat})
}

// ValidCoordinate reports whether a latitude/longitude pair is on the globe.
func ValidCoordinate(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// haversineDistance calculates the distance between two points in meters
func haversineDistance(p1, point2 orb.Point) float64 {
	const earthRadiusM = 6371000.0

	lat1Rad := p1[1] * math.Pi / 180
	lng1Rad := p1[0] * math.Pi / 180
	lat2Rad := point2[1] * math.Pi / 180
	lng2Rad := point2[0] * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}
