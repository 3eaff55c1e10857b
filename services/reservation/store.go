// Package reservation provides the short-lived exclusive slot lock that
// prevents two clients from booking the same freelancer time window at once.
package reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultTTL bounds how long an abandoned reservation can hold a slot.
const DefaultTTL = 10 * time.Minute

// SlotStore is the mutual-exclusion primitive guarding booking creation.
//
// TryReserve atomically installs a reservation for key if no live one exists
// and reports whether the caller now holds the slot. Release drops the
// caller's reservation and is a no-op for missing or expired keys.
type SlotStore interface {
	TryReserve(ctx context.Context, key, holder string, ttl time.Duration) bool
	Release(ctx context.Context, key, holder string)
}

// SlotKey builds the normalized reservation key for a freelancer time window.
func SlotKey(freelancerID string, start, end time.Time) string {
	return fmt.Sprintf("slot:%s:%s-%s",
		freelancerID,
		start.UTC().Format(time.RFC3339),
		end.UTC().Format(time.RFC3339),
	)
}

// RedisSlotStore backs slot reservations with Redis SET NX EX, which gives
// set-if-absent and expiry in a single atomic command.
type RedisSlotStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisSlotStore returns a SlotStore backed by the given Redis client.
func NewRedisSlotStore(client *redis.Client, logger *zap.Logger) *RedisSlotStore {
	return &RedisSlotStore{client: client, logger: logger}
}

// TryReserve installs the reservation only if no live entry exists for key.
// If Redis is unreachable the reservation is denied rather than risking a
// double-booking (fail closed).
func (s *RedisSlotStore) TryReserve(ctx context.Context, key, holder string, ttl time.Duration) bool {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	ok, err := s.client.SetNX(ctx, key, holder, ttl).Result()
	if err != nil {
		s.logger.Error("slot reservation store unavailable, denying reservation",
			zap.String("key", key), zap.Error(err))
		return false
	}
	return ok
}

// Release deletes the reservation if it is still held by holder. Missing,
// expired or foreign reservations are left untouched.
func (s *RedisSlotStore) Release(ctx context.Context, key, holder string) {
	current, err := s.client.Get(ctx, key).Result()
	if err != nil {
		// Key already gone (or Redis unreachable); nothing to release.
		return
	}
	if current != holder {
		return
	}
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.Warn("failed to release slot reservation",
			zap.String("key", key), zap.Error(err))
	}
}
