package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Repository is the key-value surface the application layer uses for
// the product-lookup cache and auth sessions.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// ErrSessionNotFound is returned when a session key is missing or expired
var ErrSessionNotFound = errors.New("session not found")

const sessionPrefix = "auth:session:"

type store struct {
	client *goredis.Client
}

// NewRepository wraps a connected client. A nil client degrades to
// cache-off: reads miss and writes are dropped, sessions reject.
func NewRepository(client *goredis.Client) Repository {
	return &store{client: client}
}

func (s *store) Get(ctx context.Context, key string) (string, error) {
	if s.client == nil {
		return "", nil
	}
	return s.client.Get(ctx, key).Result()
}

func (s *store) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	if s.client == nil {
		return nil
	}
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *store) Delete(ctx context.Context, key string) error {
	if s.client == nil {
		return nil
	}
	return s.client.Del(ctx, key).Err()
}

func (s *store) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	if s.client == nil {
		return nil
	}
	return s.client.Set(ctx, sessionPrefix+sessionID, userID, ttl).Err()
}

func (s *store) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	if s.client == nil {
		return 0, ErrSessionNotFound
	}
	val, err := s.client.Get(ctx, sessionPrefix+sessionID).Uint64()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, ErrSessionNotFound
		}
		return 0, err
	}
	return val, nil
}

func (s *store) DeleteSession(ctx context.Context, sessionID string) error {
	if s.client == nil {
		return nil
	}
	return s.client.Del(ctx, sessionPrefix+sessionID).Err()
}
