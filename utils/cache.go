package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"branchly/config"
)

// SettingsCacheClient is the Redis client holding cached branch settings
// snapshots.
var SettingsCacheClient *redis.Client

// InitSettingsCache initializes the Redis client for branch settings caching.
func InitSettingsCache() {
	SettingsCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SettingsCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Settings Cache): %v", err)
	}
}

// GetSettingsCacheClient returns the settings cache client.
func GetSettingsCacheClient() *redis.Client {
	if SettingsCacheClient == nil {
		InitSettingsCache()
	}
	return SettingsCacheClient
}
