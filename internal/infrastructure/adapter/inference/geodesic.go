package inference

import (
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	"github.com/tidwall/geodesic"
)

// Geodesic measures distances along the WGS-84 ellipsoid
type Geodesic struct {
	ellipsoid *geodesic.Ellipsoid
}

// NewGeodesic creates a calculator on the WGS-84 ellipsoid
func NewGeodesic() *Geodesic {
	return &Geodesic{ellipsoid: geodesic.WGS84}
}

// DistanceKm returns the inverse geodesic distance between two points.
// Points are put in a fixed order first so the result is bit-for-bit symmetric.
func (g *Geodesic) DistanceKm(from, to entity.Location) float64 {
	if from == to {
		return 0
	}
	if less(to, from) {
		from, to = to, from
	}

	var meters float64
	g.ellipsoid.Inverse(from.Latitude, from.Longitude, to.Latitude, to.Longitude, &meters, nil, nil)
	return meters / 1000
}

func less(a, b entity.Location) bool {
	if a.Latitude != b.Latitude {
		return a.Latitude < b.Latitude
	}
	return a.Longitude < b.Longitude
}
