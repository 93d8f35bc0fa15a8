package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	lockoutCountPrefix = "auth:lockout:count:"
	lockoutLockPrefix  = "auth:lockout:lock:"
	// countTTL bounds how long a failure streak is remembered. Redis key
	// expiry doubles as the eviction the in-memory sweep provides.
	countTTL = 24 * time.Hour
)

// RedisLockoutStore tracks failed attempts in Redis so the lockout holds
// across instances and restarts. Counters expire via TTL instead of an
// explicit sweep.
type RedisLockoutStore struct {
	rdb redis.Cmdable
}

// NewRedisLockoutStore creates a Redis-backed lockout store.
func NewRedisLockoutStore(rdb redis.Cmdable) *RedisLockoutStore {
	return &RedisLockoutStore{rdb: rdb}
}

// Check reads the lock key's remaining TTL. A missing key means not locked.
func (s *RedisLockoutStore) Check(ctx context.Context, key string) (bool, time.Duration, error) {
	ttl, err := s.rdb.PTTL(ctx, lockoutLockPrefix+key).Result()
	if err != nil {
		return false, 0, err
	}
	// PTTL returns a negative duration when the key does not exist or has
	// no expiry.
	if ttl <= 0 {
		return false, 0, nil
	}
	return true, ttl, nil
}

// Fail atomically increments the failure counter (INCR is the single
// read-modify-write, so racing requests cannot lose increments) and arms the
// lock once the count reaches MaxAttempts.
func (s *RedisLockoutStore) Fail(ctx context.Context, key string) (int, error) {
	countKey := lockoutCountPrefix + key
	count, err := s.rdb.Incr(ctx, countKey).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		s.rdb.Expire(ctx, countKey, countTTL)
	}
	if count >= MaxAttempts {
		if err := s.rdb.Set(ctx, lockoutLockPrefix+key, "1", LockDuration).Err(); err != nil {
			return int(count), err
		}
	}
	return int(count), nil
}

// Reset clears both keys after a successful login.
func (s *RedisLockoutStore) Reset(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, lockoutCountPrefix+key, lockoutLockPrefix+key).Err()
}
