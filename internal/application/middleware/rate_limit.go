package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ecoscope/pkg/log"
	"ecoscope/pkg/msg"
	"ecoscope/pkg/redis"
)

type Limiter interface {
	Allow(ctx context.Context, key string) (redis.RateLimitResult, error)
}

// RateLimitByIP answers 429 once the client IP exhausts its window. A nil
// limiter disables the check and a failing limiter lets the request through.
func RateLimitByIP(limiter Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil {
				return next(c)
			}

			result, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn(msg.GetMessage("auth.limiter-failed"), zap.Error(err))
				return next(c)
			}

			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
			if !result.Allowed {
				seconds := int(result.RetryAfter.Seconds())
				if seconds < 1 {
					seconds = 1
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": msg.GetMessage("auth.too-many-attempts", seconds),
				})
			}
			return next(c)
		}
	}
}
