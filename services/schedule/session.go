package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vaktplan/models"

	"github.com/go-redis/redis/v8"
)

// ErrSessionNotFound is returned for an unknown or expired session ID.
var ErrSessionNotFound = errors.New("schedule session not found or expired")

// SessionStore persists schedule sessions between round trips.
type SessionStore interface {
	Save(ctx context.Context, session *models.ScheduleSession) error
	Get(ctx context.Context, id string) (*models.ScheduleSession, error)
}

// RedisSessionStore keeps sessions as JSON blobs with a TTL.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func sessionKey(id string) string {
	return "vaktplan:session:" + id
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.ScheduleSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKey(session.ID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to cache schedule session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*models.ScheduleSession, error) {
	data, err := s.Client.Get(ctx, sessionKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read schedule session: %w", err)
	}
	var session models.ScheduleSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse schedule session: %w", err)
	}
	return &session, nil
}
