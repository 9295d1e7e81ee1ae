// Package geo computes great-circle distances between coordinates.
package geo

import "math"

const earthRadiusKm = 6371.0

// Point is a WGS84 coordinate pair in degrees.
type Point struct {
	Lat float64
	Lng float64
}

// DistanceKm returns the haversine great-circle distance between two points
// in kilometers. Symmetric, zero for equal points.
func DistanceKm(a, b Point) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	x := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(x))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
