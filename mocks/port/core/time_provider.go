package core

import (
	"time"

	coreport "github.com/amirhossein-jamali/fraud-screening/internal/domain/port/core"
	"github.com/stretchr/testify/mock"
)

// MockTimeProvider is a testify mock of coreport.TimeProvider
type MockTimeProvider struct {
	mock.Mock
}

func (m *MockTimeProvider) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

func (m *MockTimeProvider) Since(t time.Time) coreport.Duration {
	args := m.Called(t)
	return args.Get(0).(coreport.Duration)
}
