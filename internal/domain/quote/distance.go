package quote

import (
	"math"

	"github.com/hxxtsxxh/EcoShip/internal/domain/entities"
)

const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance between two points in
// kilometers. It is symmetric and returns 0 for identical points.
func Haversine(a, b entities.GeoPoint) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lon1 := a.Longitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	lon2 := b.Longitude * math.Pi / 180

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	return earthRadiusKm * 2 * math.Asin(math.Sqrt(h))
}
