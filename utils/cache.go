// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"laundr/config"

	"github.com/go-redis/redis/v8"
)

// SlotCacheClient is the dedicated Redis client for slot reservations.
var SlotCacheClient *redis.Client

// InitSlotCache initializes the Redis client backing the slot reservation
// store (using the DB number from AppConfig).
func InitSlotCache() {
	SlotCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSlotDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SlotCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Slot Cache): %v", err)
	}
}

// GetSlotCacheClient returns the Redis client for slot reservations.
func GetSlotCacheClient() *redis.Client {
	if SlotCacheClient == nil {
		InitSlotCache()
	}
	return SlotCacheClient
}
