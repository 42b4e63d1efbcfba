package utils

import (
	"context"
	"log"
	"time"

	"sanara/config"

	"github.com/go-redis/redis/v8"
)

// QueueRedisClient is the client for the notification queue database.
var QueueRedisClient *redis.Client

// InitQueueRedis initializes the Redis client backing the notification queue.
func InitQueueRedis() {
	QueueRedisClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := QueueRedisClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (queue): %v", err)
	}
}

// GetQueueRedisClient returns the notification queue client.
func GetQueueRedisClient() *redis.Client {
	if QueueRedisClient == nil {
		InitQueueRedis()
	}
	return QueueRedisClient
}
