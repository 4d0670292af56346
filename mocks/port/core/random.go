package core

import (
	"github.com/stretchr/testify/mock"
)

// MockRandomSource is a testify mock of coreport.RandomSource
type MockRandomSource struct {
	mock.Mock
}

func (m *MockRandomSource) IntN(n int) int {
	args := m.Called(n)
	return args.Int(0)
}

// SequenceRandom returns its values in order, wrapping around
type SequenceRandom struct {
	Values []int
	next   int
}

func (s *SequenceRandom) IntN(n int) int {
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v % n
}
