package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mbastos/acervo/internal/config"
	"github.com/mbastos/acervo/internal/logger"
	"github.com/mbastos/acervo/models"
)

// Redis key prefix for session records.
const sessionKeyPrefix = "session:"

// redisSessionStore is the redis-backed implementation of [SessionStore].
// Session records are stored as JSON under a prefixed key with a TTL, so
// expiry is enforced by redis itself and a crashed process never leaks
// live sessions.
type redisSessionStore struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisSessionStore connects to redis and returns a [SessionStore]
// backed by it. Connectivity is verified with a ping before returning.
func NewRedisSessionStore(ctx context.Context, cfg config.Redis, logger *logger.Logger) (SessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Err(err).Str("func", "NewRedisSessionStore").Msg("error connecting redis (ping)")
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	logger.Info().Str("func", "NewRedisSessionStore").Msg("connected to redis successfully")

	return &redisSessionStore{
		client: client,
		logger: logger,
	}, nil
}

// Create implements [SessionStore].
func (s *redisSessionStore) Create(ctx context.Context, session models.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error marshaling session: %w", err)
	}

	if err := s.client.Set(ctx, sessionKeyPrefix+session.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("error storing session: %w", err)
	}

	return nil
}

// Get implements [SessionStore]. An absent or expired key reports
// [ErrSessionNotFound].
func (s *redisSessionStore) Get(ctx context.Context, id string) (models.Session, error) {
	payload, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("error loading session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return models.Session{}, fmt.Errorf("error unmarshaling session: %w", err)
	}

	return session, nil
}

// Delete implements [SessionStore]. Deleting an absent key succeeds, which
// makes logout idempotent.
func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}

	return nil
}
