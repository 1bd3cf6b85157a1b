// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"vaktplan/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient holds schedule sessions between generate/validate round trips.
var CacheClient *redis.Client

// InitCache initializes the Redis client for schedule session caching.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the session cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
