package usecase

import (
	"context"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/port/usecase"
	"github.com/stretchr/testify/mock"
)

// MockChallengeUseCase is a testify mock of usecase.ChallengeUseCase
type MockChallengeUseCase struct {
	mock.Mock
}

func (m *MockChallengeUseCase) Current(ctx context.Context, sessionID string) (entity.Challenge, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(entity.Challenge), args.Error(1)
}

func (m *MockChallengeUseCase) Regenerate(ctx context.Context, sessionID string) (entity.Challenge, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(entity.Challenge), args.Error(1)
}

// MockPredictionUseCase is a testify mock of usecase.PredictionUseCase
type MockPredictionUseCase struct {
	mock.Mock
}

func (m *MockPredictionUseCase) Predict(
	ctx context.Context,
	sessionID string,
	req entity.TransactionRequest,
	proof entity.VerificationProof,
) (*usecase.PredictionResult, error) {
	args := m.Called(ctx, sessionID, req, proof)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.PredictionResult), args.Error(1)
}
