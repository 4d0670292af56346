package inference

import (
	"context"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockClassifier is a testify mock of inference.Classifier
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Predict(ctx context.Context, features entity.FeatureVector) (int, error) {
	args := m.Called(ctx, features)
	return args.Int(0), args.Error(1)
}

func (m *MockClassifier) Name() string {
	args := m.Called()
	return args.String(0)
}

// MockCategoricalEncoder is a testify mock of inference.CategoricalEncoder
type MockCategoricalEncoder struct {
	mock.Mock
}

func (m *MockCategoricalEncoder) Encode(column entity.CategoricalColumn, value string) (int, bool) {
	args := m.Called(column, value)
	return args.Int(0), args.Bool(1)
}

// MockDistanceCalculator is a testify mock of inference.DistanceCalculator
type MockDistanceCalculator struct {
	mock.Mock
}

func (m *MockDistanceCalculator) DistanceKm(from, to entity.Location) float64 {
	args := m.Called(from, to)
	return args.Get(0).(float64)
}
