package usecase

import (
	"context"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
)

// ChallengeUseCase manages the per-session verification challenge
type ChallengeUseCase interface {
	// Current returns the session's challenge, starting the session when it is unknown
	Current(ctx context.Context, sessionID string) (entity.Challenge, error)

	// Regenerate replaces the session's challenge with a fresh one
	Regenerate(ctx context.Context, sessionID string) (entity.Challenge, error)
}
