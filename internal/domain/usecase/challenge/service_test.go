package challenge

import (
	"context"
	"errors"
	"testing"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fraud-screening/internal/domain/error"
	mcore "github.com/amirhossein-jamali/fraud-screening/mocks/port/core"
	mpers "github.com/amirhossein-jamali/fraud-screening/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	ctx := context.Background()
	sessionID := "session-1"

	t.Run("Existing session returns stored challenge", func(t *testing.T) {
		store := new(mpers.MockChallengeStore)
		random := new(mcore.MockRandomSource)
		stored := entity.Challenge{Num1: 2, Num2: 9}
		store.On("Get", ctx, sessionID).Return(stored, nil)

		svc := NewChallengeService(store, random, mcore.NewMockLogger())
		got, err := svc.Current(ctx, sessionID)

		require.NoError(t, err)
		assert.Equal(t, stored, got)
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
		random.AssertNotCalled(t, "IntN", mock.Anything)
	})

	t.Run("Unknown session starts with a fresh challenge", func(t *testing.T) {
		store := new(mpers.MockChallengeStore)
		random := &mcore.SequenceRandom{Values: []int{4, 6}}
		expected := entity.Challenge{Num1: 5, Num2: 7}
		store.On("Get", ctx, sessionID).Return(entity.Challenge{}, errs.ErrSessionNotFound)
		store.On("Save", ctx, sessionID, expected).Return(nil)

		svc := NewChallengeService(store, random, mcore.NewMockLogger())
		got, err := svc.Current(ctx, sessionID)

		require.NoError(t, err)
		assert.Equal(t, expected, got)
		store.AssertExpectations(t)
	})

	t.Run("Store failure is propagated", func(t *testing.T) {
		store := new(mpers.MockChallengeStore)
		storeErr := errors.New("redis down")
		store.On("Get", ctx, sessionID).Return(entity.Challenge{}, storeErr)

		svc := NewChallengeService(store, new(mcore.MockRandomSource), mcore.NewMockLogger())
		_, err := svc.Current(ctx, sessionID)

		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("Empty session id is rejected", func(t *testing.T) {
		store := new(mpers.MockChallengeStore)
		svc := NewChallengeService(store, new(mcore.MockRandomSource), mcore.NewMockLogger())

		_, err := svc.Current(ctx, "")

		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
		store.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestRegenerate(t *testing.T) {
	ctx := context.Background()
	sessionID := "session-2"

	t.Run("Stores operands within bounds", func(t *testing.T) {
		store := new(mpers.MockChallengeStore)
		random := new(mcore.MockRandomSource)
		random.On("IntN", 10).Return(9).Once()
		random.On("IntN", 10).Return(0).Once()
		store.On("Save", ctx, sessionID, entity.Challenge{Num1: 10, Num2: 1}).Return(nil)

		svc := NewChallengeService(store, random, mcore.NewMockLogger())
		got, err := svc.Regenerate(ctx, sessionID)

		require.NoError(t, err)
		assert.Equal(t, 11, got.Answer())
		random.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("Save failure", func(t *testing.T) {
		store := new(mpers.MockChallengeStore)
		store.On("Save", ctx, sessionID, mock.Anything).Return(errors.New("write failed"))

		svc := NewChallengeService(store, &mcore.SequenceRandom{Values: []int{1}}, mcore.NewMockLogger())
		_, err := svc.Regenerate(ctx, sessionID)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to store challenge")
	})
}
