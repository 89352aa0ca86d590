package preferences

import (
	"context"
	"encoding/json"

	"slotwise/models"

	"github.com/go-redis/redis/v8"
)

const prefsKeyPrefix = "sched:prefs:"

// Store persists per-user scheduling preferences between requests.
type Store interface {
	Get(ctx context.Context, userID string) (*models.SchedulePreferences, error)
	Set(ctx context.Context, userID string, prefs *models.SchedulePreferences) error
	Clear(ctx context.Context, userID string) error
}

// RedisStore is the Redis-backed implementation. A user with no stored
// preferences gets the permissive zero value (no filters applied).
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, userID string) (*models.SchedulePreferences, error) {
	key := prefsKeyPrefix + userID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.SchedulePreferences{}, nil
	}
	if err != nil {
		return nil, err
	}
	var prefs models.SchedulePreferences
	if err := json.Unmarshal([]byte(data), &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (s *RedisStore) Set(ctx context.Context, userID string, prefs *models.SchedulePreferences) error {
	key := prefsKeyPrefix + userID
	b, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, 0).Err()
}

func (s *RedisStore) Clear(ctx context.Context, userID string) error {
	return s.client.Del(ctx, prefsKeyPrefix+userID).Err()
}
