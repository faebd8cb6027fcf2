package geo

import (
	"math"

	"github.com/storescout/storescout/model"
)

// earthRadiusKm is the mean Earth radius
const earthRadiusKm = 6371.0

// DistanceKm computes the great-circle distance between two coordinates
// using the haversine formula. The intermediate term is clamped to [0, 1]
// before the square root: floating-point drift can push it fractionally
// above 1 for identical or near-antipodal points, which would turn the
// result into NaN. Pure and safe for concurrent use.
func DistanceKm(a, b model.Coordinate) float64 {
	if a == b {
		return 0
	}

	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(radians(a.Latitude))*math.Cos(radians(b.Latitude))*sinLon*sinLon
	if h < 0 {
		h = 0
	} else if h > 1 {
		h = 1
	}

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
