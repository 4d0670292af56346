package persistence

import (
	"context"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
)

// ChallengeStore keeps the verification challenge of each user session
type ChallengeStore interface {
	// Get returns the challenge of a session or errs.ErrSessionNotFound
	Get(ctx context.Context, sessionID string) (entity.Challenge, error)

	// Save stores or replaces the challenge of a session
	Save(ctx context.Context, sessionID string, challenge entity.Challenge) error
}
