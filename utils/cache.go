package utils

import (
	"context"
	"log"
	"time"

	"slotwise/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (agenda digests, session data).
	CacheClient *redis.Client
	// PrefsClient is the dedicated client for stored scheduling preferences.
	PrefsClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := CacheClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitPrefsCache initializes the Redis client for preference storage.
func InitPrefsCache() {
	PrefsClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPrefsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := PrefsClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis (Preferences): %v", err)
	}
}

// GetPrefsClient returns the Redis client for preference storage.
func GetPrefsClient() *redis.Client {
	if PrefsClient == nil {
		InitPrefsCache()
	}
	return PrefsClient
}
