package random

import (
	"math/rand/v2"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/port/core"
)

// MathRandom draws from the runtime's auto-seeded generator, which is safe for concurrent use
type MathRandom struct{}

// NewMathRandom creates a new random source
func NewMathRandom() core.RandomSource {
	return MathRandom{}
}

// IntN returns a value in [0, n)
func (MathRandom) IntN(n int) int {
	return rand.IntN(n)
}
