// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"chamba/config"

	"github.com/go-redis/redis/v8"
)

var (
	// DraftClient persists in-progress wizard drafts (no TTL).
	DraftClient *redis.Client
	// AuthCacheClient is the dedicated client for auth session caching.
	AuthCacheClient *redis.Client
	// CacheClient is the generic cache client (estimate sessions, etc.).
	CacheClient *redis.Client
)

func newClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients.
func InitRedis() {
	DraftClient = newClient(config.AppConfig.RedisDraftDB)
	AuthCacheClient = newClient(config.AppConfig.RedisAuthDB)
	CacheClient = newClient(config.AppConfig.RedisCacheDB)
}

// GetDraftClient returns the client backing the wizard draft store.
func GetDraftClient() *redis.Client {
	if DraftClient == nil {
		DraftClient = newClient(config.AppConfig.RedisDraftDB)
	}
	return DraftClient
}

// GetAuthCacheClient returns the Redis client for auth session caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newClient(config.AppConfig.RedisAuthDB)
	}
	return AuthCacheClient
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newClient(config.AppConfig.RedisCacheDB)
	}
	return CacheClient
}
