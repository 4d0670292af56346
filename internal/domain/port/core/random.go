package core

// RandomSource draws the operands of verification challenges
type RandomSource interface {
	// IntN returns a value in [0, n)
	IntN(n int) int
}
