package session

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fraud-screening/internal/domain/error"
	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps challenges in process memory; sessions expire after ttl of inactivity
type MemoryStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewMemoryStore creates an in-memory challenge store
func NewMemoryStore(ttl, cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: cache.New(ttl, cleanupInterval),
		ttl:   ttl,
	}
}

// Get returns the challenge of a session
func (s *MemoryStore) Get(_ context.Context, sessionID string) (entity.Challenge, error) {
	v, ok := s.cache.Get(sessionID)
	if !ok {
		return entity.Challenge{}, errs.ErrSessionNotFound
	}
	challenge, ok := v.(entity.Challenge)
	if !ok {
		s.cache.Delete(sessionID)
		return entity.Challenge{}, errs.ErrSessionNotFound
	}
	return challenge, nil
}

// Save stores the challenge and restarts the session's expiry
func (s *MemoryStore) Save(_ context.Context, sessionID string, challenge entity.Challenge) error {
	s.cache.Set(sessionID, challenge, s.ttl)
	return nil
}

// Len returns the number of unexpired sessions
func (s *MemoryStore) Len() int {
	return len(s.cache.Items())
}
