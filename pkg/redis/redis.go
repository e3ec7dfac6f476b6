package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wineworld/wineworld-backend/config"
	"github.com/wineworld/wineworld-backend/pkg/logger"
)

const cacheKeyPrefix = "cache:"

var client *redis.Client

// Init initializes the Redis connection used for response caching
func Init(cfg *config.RedisConfig) error {
	logger.Info("Initializing Redis connection", map[string]interface{}{
		"addr": cfg.Addr(),
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"addr": cfg.Addr(),
		})
		client = nil
		return err
	}

	logger.Info("Redis connection established successfully", nil)
	return nil
}

// GetClient returns the Redis client instance, or nil when caching is
// disabled or Redis is unreachable.
func GetClient() *redis.Client {
	return client
}

// Close closes the Redis connection
func Close() error {
	if client != nil {
		logger.Info("Closing Redis connection", nil)
		return client.Close()
	}
	return nil
}

// GetCachedResponse returns the cached response body for the key, if any.
func GetCachedResponse(ctx context.Context, key string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	body, err := client.Get(ctx, cacheKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Error("Failed to read response cache", err, map[string]interface{}{
			"key": key,
		})
		return nil, false
	}
	return body, true
}

// SetCachedResponse stores a response body under the key with the given TTL.
func SetCachedResponse(ctx context.Context, key string, body []byte, ttl time.Duration) {
	if client == nil {
		return
	}
	if err := client.Set(ctx, cacheKeyPrefix+key, body, ttl).Err(); err != nil {
		logger.Error("Failed to write response cache", err, map[string]interface{}{
			"key": key,
		})
	}
}

// FlushResponseCache drops every cached response. Called after a catalog
// rebuild so stale pages never outlive the snapshot they came from.
func FlushResponseCache(ctx context.Context) error {
	if client == nil {
		return nil
	}

	var deleted int64
	iter := client.Scan(ctx, 0, cacheKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := client.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Error("Failed to delete cached response", err, map[string]interface{}{
				"key": iter.Val(),
			})
			return err
		}
		deleted++
	}
	if err := iter.Err(); err != nil {
		logger.Error("Failed to scan response cache", err)
		return err
	}

	logger.Info("Response cache flushed", map[string]interface{}{
		"deleted_keys": deleted,
	})
	return nil
}
