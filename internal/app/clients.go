package app

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lineboard/lineboard-backend/internal/pkg/logger"
)

// newRedisClient connects when REDIS_URL is set and returns nil otherwise;
// callers treat a nil client as "run without shared locks".
func newRedisClient(log *logger.Logger, redisURL string) redis.UniversalClient {
	if redisURL == "" {
		return nil
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn("Invalid REDIS_URL, continuing without Redis", "error", err)
		return nil
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, continuing without Redis", "error", err)
		_ = client.Close()
		return nil
	}
	log.Info("Connected to Redis")
	return client
}
