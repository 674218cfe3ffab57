package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/inventory-service/pkg/util"
)

// LoginRateLimiter caps login attempts per client IP using a fixed redis
// window. With redis unreachable the limiter fails open; credential checks
// still apply.
func LoginRateLimiter(client *redis.Client, limit int, window time.Duration, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if client == nil || limit <= 0 {
			return c.Next()
		}

		key := fmt.Sprintf("ratelimit:login:%s", c.IP())
		count, err := client.Incr(c.UserContext(), key).Result()
		if err != nil {
			logger.Warn("login rate limiter unavailable", zap.Error(err))
			return c.Next()
		}
		if count == 1 {
			if err := client.Expire(c.UserContext(), key, window).Err(); err != nil {
				logger.Warn("failed to set login rate window", zap.String("key", key), zap.Error(err))
			}
		}
		if count > int64(limit) {
			return apperrors.NewDomainError("RATE_LIMITED", "too many login attempts, try again later", http.StatusTooManyRequests)
		}
		return c.Next()
	}
}
