package social

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// redisStateTTL keeps stale counters from lingering; the state is only
// meaningful for the current UTC day plus a grace window.
const redisStateTTL = 48 * time.Hour

// RedisStore persists quota state in Redis so multiple processes can share
// one daily budget.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a Redis-backed quota store under the given key.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = "memescan:social:quota"
	}
	return &RedisStore{client: client, key: key}
}

// Load reads the persisted state. A missing key is a fresh start.
func (rs *RedisStore) Load(ctx context.Context) (RateLimitState, error) {
	data, err := rs.client.Get(ctx, rs.key).Bytes()
	if err == redis.Nil {
		return RateLimitState{}, nil
	}
	if err != nil {
		return RateLimitState{}, fmt.Errorf("read quota key: %w", err)
	}

	var state RateLimitState
	if err := json.Unmarshal(data, &state); err != nil {
		return RateLimitState{}, nil
	}
	return state, nil
}

// Save writes the state with a TTL.
func (rs *RedisStore) Save(ctx context.Context, state RateLimitState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal quota state: %w", err)
	}
	if err := rs.client.Set(ctx, rs.key, data, redisStateTTL).Err(); err != nil {
		return fmt.Errorf("write quota key: %w", err)
	}
	return nil
}
