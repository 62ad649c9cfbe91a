package domain

import "math"

const (
	earthRadiusKm = 6371

	// Service-area reference point (Kuopio) and radius for the out-of-scope
	// roof-clearing order feature.
	ReferenceLat    = 62.8933
	ReferenceLon    = 27.6783
	ServiceRadiusKm = 80
)

// DistanceKm returns the great-circle distance between two WGS-84
// coordinates using the Haversine formula.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// DistanceFromReferenceKm returns the distance from the service reference point.
func DistanceFromReferenceKm(lat, lon float64) float64 {
	return DistanceKm(ReferenceLat, ReferenceLon, lat, lon)
}

// IsWithinServiceArea reports whether a point lies inside the service radius.
func IsWithinServiceArea(lat, lon float64) bool {
	return DistanceFromReferenceKm(lat, lon) <= ServiceRadiusKm
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
