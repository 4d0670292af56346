package inference

import (
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
)

// DistanceCalculator computes the WGS-84 geodesic distance between two points in kilometers
type DistanceCalculator interface {
	DistanceKm(from, to entity.Location) float64
}
