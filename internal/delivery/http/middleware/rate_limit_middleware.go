package middleware

import (
	"log/slog"
	"time"

	"dispatch/config"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware throttles broadcast callers per client IP using a
// fixed-window counter.
type RateLimitMiddleware struct {
	limiter *ratelimit.Limiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware creates a new rate limiting middleware
func NewRateLimitMiddleware(cfg *config.Config, logger *slog.Logger) *RateLimitMiddleware {
	var limit, maxKeys int
	var window time.Duration
	if cfg.RateLimit != nil {
		limit = cfg.RateLimit.Limit
		window = cfg.RateLimit.Window
		maxKeys = cfg.RateLimit.MaxKeys
	}

	return &RateLimitMiddleware{
		limiter: ratelimit.New(limit, window, maxKeys),
		logger:  logger,
	}
}

// Limit rejects requests over the per-caller budget with 429.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.RealIP()
		if !m.limiter.Allow(key) {
			m.logger.Warn("Request rate limited",
				slog.String("caller", key),
				slog.String("path", c.Request().URL.Path),
			)

			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}
