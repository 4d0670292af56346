package persistence

import (
	"context"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/port/persistence"
	"github.com/stretchr/testify/mock"
)

// MockChallengeStore is a testify mock of persistence.ChallengeStore
type MockChallengeStore struct {
	mock.Mock
}

func (m *MockChallengeStore) Get(ctx context.Context, sessionID string) (entity.Challenge, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(entity.Challenge), args.Error(1)
}

func (m *MockChallengeStore) Save(ctx context.Context, sessionID string, challenge entity.Challenge) error {
	args := m.Called(ctx, sessionID, challenge)
	return args.Error(0)
}

// MockEncodingRepository is a testify mock of persistence.EncodingRepository
type MockEncodingRepository struct {
	mock.Mock
}

func (m *MockEncodingRepository) LoadVocabulary(ctx context.Context) (persistence.Vocabulary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(persistence.Vocabulary), args.Error(1)
}
