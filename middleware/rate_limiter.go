package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Modeva-Ecommerce/modeva-analytics/config"
	"github.com/Modeva-Ecommerce/modeva-analytics/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RateLimiter uses the shared Redis client. Without one it lets every
// request through.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.RedisClient == nil {
			c.Next()
			return
		}
		limitWith(c, config.RedisClient, maxRequests, window)
	}
}

// limitWith counts requests in a fixed window keyed by IP, method and route.
// The limit is part of the key so stacked limiters keep separate counters.
func limitWith(c *gin.Context, client *redis.Client, maxRequests int, window time.Duration) {
	ctx := c.Request.Context()
	key := "rl:analytics:" + strconv.Itoa(maxRequests) + ":" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()
	resetKey := key + ":resetAt"

	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		logrus.Errorf("[rate-limiter] redis error: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse(c, "Redis error"))
		return
	}

	if count == 1 {
		resetAt := time.Now().Add(window)
		pipe := client.TxPipeline()
		pipe.Expire(ctx, key, window)
		pipe.Set(ctx, resetKey, resetAt.Unix(), window)
		if _, err := pipe.Exec(ctx); err != nil {
			logrus.Warnf("[rate-limiter] failed to set window: %v", err)
		}
	}

	resetAtUnix, _ := client.Get(ctx, resetKey).Int64()
	resetAt := time.Unix(resetAtUnix, 0)

	remaining := maxRequests - int(count)
	if remaining < 0 {
		remaining = 0
	}
	resetInSeconds := int(time.Until(resetAt).Seconds())
	if resetInSeconds < 0 {
		resetInSeconds = 0
	}

	rate := &models.RateLimiter{
		Limit:          maxRequests,
		Remaining:      remaining,
		ResetAt:        resetAt,
		ResetInSeconds: resetInSeconds,
	}
	c.Set("rateLimiter", rate)

	if int(count) > maxRequests {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ApiResponse{
			Message: "Too many requests",
			Error:   true,
			Rate:    rate,
		})
		return
	}

	c.Next()
}
