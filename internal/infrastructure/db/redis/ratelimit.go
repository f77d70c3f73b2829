package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateCounterStore is a Redis-backed fixed-window request counter, for
// deployments running more than one API replica behind one limit.
// Key format: ratelimit:<scope-qualified client key>
type RateCounterStore struct {
	client *redis.Client
}

// NewRateCounterStore creates a RateCounterStore wrapping the given client.
func NewRateCounterStore(client *redis.Client) *RateCounterStore {
	return &RateCounterStore{client: client}
}

// Incr atomically counts one request against key's window. The first
// increment starts the window by setting the key's expiry.
func (s *RateCounterStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	k := s.key(key)

	count, err := s.client.Incr(ctx, k).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("rate incr: %w", err)
	}

	if count == 1 {
		if err := s.client.PExpire(ctx, k, window).Err(); err != nil {
			return 0, 0, fmt.Errorf("rate expire: %w", err)
		}
		return count, window, nil
	}

	ttl, err := s.client.PTTL(ctx, k).Result()
	if err != nil || ttl < 0 {
		ttl = window
	}
	return count, ttl, nil
}

// Forgive undoes one counted request. A window driven below zero is
// removed so the TTL bookkeeping stays sane.
func (s *RateCounterStore) Forgive(ctx context.Context, key string) error {
	k := s.key(key)

	n, err := s.client.Decr(ctx, k).Result()
	if err != nil {
		return fmt.Errorf("rate decr: %w", err)
	}
	if n < 0 {
		return s.client.Del(ctx, k).Err()
	}
	return nil
}

func (s *RateCounterStore) key(key string) string {
	return "ratelimit:" + key
}
