package config

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis connects the client backing the rate limiter. A failed ping
// leaves RedisClient nil and the limiter lets requests through.
func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
		logrus.Warnf("⚠️  REDIS_URL not set, using local Redis: %s", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		logrus.Fatalf("❌ invalid REDIS_URL: %v", err)
	}

	client := redis.NewClient(opt)
	res, err := client.Ping(Ctx).Result()
	if err != nil {
		logrus.Errorf("❌ failed to connect to Redis, rate limiting disabled: %v", err)
		_ = client.Close()
		return
	}
	RedisClient = client
	logrus.Infof("✅ Connected to Redis: %s", res)
}

func CloseRedis() {
	if RedisClient != nil {
		_ = RedisClient.Close()
	}
}
