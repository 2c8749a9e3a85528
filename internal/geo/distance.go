// Package geo computes great-circle distances between geographic
// coordinates. The check-in use case relies on it to enforce the maximum
// allowed distance between a user and a gym.
package geo

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// DistanceKm returns the great-circle surface distance between two
// coordinates in kilometers using the haversine formula. The result is
// symmetric in its arguments and zero for identical coordinates.
func DistanceKm(from, to Coordinate) float64 {
	toRad := func(d float64) float64 { return d * math.Pi / 180 }

	dLat := toRad(to.Latitude - from.Latitude)
	dLon := toRad(to.Longitude - from.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(from.Latitude))*math.Cos(toRad(to.Latitude))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
