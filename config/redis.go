package config

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	redisOnce   sync.Once
	redisClient *redis.Client
)

// Redis returns the client backing the aggregate cache, or nil when
// REDIS_ADDR is not configured or the server is unreachable. Callers must
// treat nil as "cache disabled" and fall back to the store.
func Redis() *redis.Client {
	redisOnce.Do(func() {
		c := Load()
		if c.RedisAddr == "" {
			return
		}

		rdb := redis.NewClient(&redis.Options{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("Redis not reachable, analytics cache disabled: %v", err)
			return
		}

		log.Println("Connected to Redis, analytics cache enabled")
		redisClient = rdb
	})
	return redisClient
}
