package challenge

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fraud-screening/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fraud-screening/internal/domain/port/core"
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/port/persistence"
)

// Service hands out and rotates the verification challenge of each session
type Service struct {
	store  persistence.ChallengeStore
	random coreport.RandomSource
	logger coreport.Logger
}

// NewChallengeService creates a new challenge service
func NewChallengeService(
	store persistence.ChallengeStore,
	random coreport.RandomSource,
	logger coreport.Logger,
) *Service {
	return &Service{
		store:  store,
		random: random,
		logger: logger,
	}
}

// Current returns the challenge of the session. An unknown session is started
// with a fresh challenge.
func (s *Service) Current(ctx context.Context, sessionID string) (entity.Challenge, error) {
	if sessionID == "" {
		return entity.Challenge{}, errs.ErrSessionNotFound
	}

	challenge, err := s.store.Get(ctx, sessionID)
	if err == nil {
		return challenge, nil
	}
	if !errors.Is(err, errs.ErrSessionNotFound) {
		return entity.Challenge{}, fmt.Errorf("failed to load challenge: %w", err)
	}

	s.logger.Debug("Starting new session", map[string]any{
		"session_id": sessionID,
	})
	return s.Regenerate(ctx, sessionID)
}

// Regenerate draws a new challenge for the session and stores it
func (s *Service) Regenerate(ctx context.Context, sessionID string) (entity.Challenge, error) {
	if sessionID == "" {
		return entity.Challenge{}, errs.ErrSessionNotFound
	}

	challenge := entity.NewChallenge(s.random.IntN)
	if err := s.store.Save(ctx, sessionID, challenge); err != nil {
		s.logger.Error("Failed to store challenge", map[string]any{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return entity.Challenge{}, fmt.Errorf("failed to store challenge: %w", err)
	}

	return challenge, nil
}
