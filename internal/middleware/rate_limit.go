package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// WindowCounter is the part of the redis client the limiter needs.
type WindowCounter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RateLimit counts requests per client IP in a fixed redis window. A nil
// client disables limiting.
func RateLimit(client *redis.Client, prefix string, limit int, window time.Duration) gin.HandlerFunc {
	if client == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return RateLimitWith(client, prefix, limit, window)
}

// RateLimitWith starts the window on the first request of a key; later
// requests only increment, so the window is not extended by traffic.
// Counter errors let the request through.
func RateLimitWith(counter WindowCounter, prefix string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := "rate_limit:" + prefix + ":" + c.ClientIP()

		n, err := counter.Incr(ctx, key).Result()
		if err != nil {
			slog.Warn("rate limiter unavailable", slog.Any("error", err))
			c.Next()
			return
		}
		if n == 1 {
			if err := counter.Expire(ctx, key, window).Err(); err != nil {
				slog.Warn("rate limiter expire failed", slog.String("key", key), slog.Any("error", err))
			}
		}

		if n > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate_limited",
				"msg":   "Too many requests, try again later",
			})
			return
		}

		c.Next()
	}
}
