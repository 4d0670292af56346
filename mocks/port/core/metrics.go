package core

import (
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/fraud-screening/internal/domain/port/core"
	"github.com/stretchr/testify/mock"
)

// MockPredictionMetrics is a testify mock of coreport.PredictionMetrics
type MockPredictionMetrics struct {
	mock.Mock
}

// NewMockPredictionMetrics creates a MockPredictionMetrics that accepts any observation
func NewMockPredictionMetrics() *MockPredictionMetrics {
	m := new(MockPredictionMetrics)
	m.On("ObserveVerdict", mock.Anything, mock.Anything).Maybe()
	m.On("ObserveRejection", mock.Anything).Maybe()
	m.On("ObserveUnseenCategory", mock.Anything).Maybe()
	return m
}

func (m *MockPredictionMetrics) ObserveVerdict(verdict entity.Verdict, latency coreport.Duration) {
	m.Called(verdict, latency)
}

func (m *MockPredictionMetrics) ObserveRejection(code int) {
	m.Called(code)
}

func (m *MockPredictionMetrics) ObserveUnseenCategory(column entity.CategoricalColumn) {
	m.Called(column)
}
