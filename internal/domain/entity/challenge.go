package entity

import (
	"fmt"
)

// Bounds of each challenge operand, inclusive
const (
	ChallengeMin = 1
	ChallengeMax = 10
)

// Challenge is the arithmetic human-verification question of one session
type Challenge struct {
	Num1 int `json:"num1"`
	Num2 int `json:"num2"`
}

// NewChallenge draws two operands in [ChallengeMin, ChallengeMax].
// intN must return a value in [0, n).
func NewChallenge(intN func(n int) int) Challenge {
	span := ChallengeMax - ChallengeMin + 1
	return Challenge{
		Num1: ChallengeMin + intN(span),
		Num2: ChallengeMin + intN(span),
	}
}

// Answer returns the expected sum
func (c Challenge) Answer() int {
	return c.Num1 + c.Num2
}

// Question returns the prompt shown next to the answer field
func (c Challenge) Question() string {
	return fmt.Sprintf("What is %d + %d?", c.Num1, c.Num2)
}

// Accepts reports whether answer solves the challenge. A missing answer never does.
func (c Challenge) Accepts(answer *int) bool {
	return answer != nil && *answer == c.Answer()
}
