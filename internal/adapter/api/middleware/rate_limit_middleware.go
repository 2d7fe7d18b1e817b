package middleware

import (
	"github.com/labstack/echo/v4"

	"cambiazo/internal/infrastructure/ratelimit"
	"cambiazo/pkg/errors"
	"cambiazo/pkg/logger"
	"cambiazo/pkg/response"
)

// RateLimit limits how often one caller may perform an action. Authenticated
// callers are keyed by uid, anonymous callers by client IP.
func RateLimit(limiter *ratelimit.RateLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key, ok := c.Get("uid").(string)
			if !ok || key == "" {
				key = c.RealIP()
			}

			allowed, retryAfter := limiter.Allow(key, action)
			if !allowed {
				logger.Warn("Rate limit hit for %s on %s (retry in %v)", key, action, retryAfter)
				return response.Error(c, errors.TooManyRequests("Too many requests, slow down"))
			}

			return next(c)
		}
	}
}
