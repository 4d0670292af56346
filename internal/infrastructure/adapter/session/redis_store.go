package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fraud-screening/internal/domain/error"
	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces session keys in a shared Redis
const DefaultKeyPrefix = "fraud-screening:session:"

// RedisStore keeps challenges in Redis so several replicas can serve one session
type RedisStore struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed challenge store
func NewRedisStore(client redis.Cmdable, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) key(sessionID string) string {
	return s.prefix + sessionID
}

// Get returns the challenge of a session
func (s *RedisStore) Get(ctx context.Context, sessionID string) (entity.Challenge, error) {
	raw, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.Challenge{}, errs.ErrSessionNotFound
	}
	if err != nil {
		return entity.Challenge{}, fmt.Errorf("redis get: %w", err)
	}

	var challenge entity.Challenge
	if err := json.Unmarshal(raw, &challenge); err != nil {
		return entity.Challenge{}, fmt.Errorf("corrupt session %s: %w", sessionID, err)
	}
	return challenge, nil
}

// Save stores the challenge and restarts the session's expiry
func (s *RedisStore) Save(ctx context.Context, sessionID string, challenge entity.Challenge) error {
	data, err := json.Marshal(challenge)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
