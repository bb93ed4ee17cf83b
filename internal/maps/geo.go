// README: Pure geographic helpers; straight-line fallback when the Directions
// API is unavailable.
package maps

import "math"

const earthRadiusKm = 6371.0

// roadFactor approximates road distance from a straight line on Brazilian
// intercity routes.
const roadFactor = 1.3

// HaversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// FallbackRoadKm estimates road distance from coordinates when no Directions
// result is available.
func FallbackRoadKm(lat1, lng1, lat2, lng2 float64) float64 {
	return HaversineKm(lat1, lng1, lat2, lng2) * roadFactor
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
