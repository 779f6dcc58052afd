package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks against the draft
// store, the caches, and Mongo, and updates in-memory state.
func StartHealthMonitor(redisClients []*redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			var redisHealth []bool

			for _, client := range redisClients {
				err := client.Ping(ctx).Err()
				redisHealth = append(redisHealth, err == nil)
			}

			mongoHealthy := mongoClient.Ping(ctx, nil) == nil

			healthMu.Lock()
			currentHealth = HealthStatus{
				Mongo:     mongoHealthy,
				Redis:     redisHealth,
				CheckedAt: time.Now(),
			}
			healthMu.Unlock()
		}
	}()
}
