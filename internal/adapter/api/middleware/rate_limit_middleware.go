package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"numberzz/internal/infrastructure/ratelimit"
	"numberzz/pkg/errors"
	"numberzz/pkg/logger"
	"numberzz/pkg/response"
)

// RateLimitMiddleware throttles write actions per account. Unidentified
// requests are throttled by client IP instead.
type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Limit returns an echo middleware enforcing the named action's budget.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := Account(c)
			if key == "" {
				key = c.RealIP()
			}
			allowed, retryAfter := m.limiter.Allow(key, action)
			if !allowed {
				logger.Warn("Rate limit hit: account=%s action=%s", key, action)
				c.Response().Header().Set("Retry-After", retryAfter.Round(time.Second).String())
				return response.Error(c, errors.New("RATE_LIMITED", "Too many requests, slow down", http.StatusTooManyRequests, nil))
			}
			return next(c)
		}
	}
}
