package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	apperrors "momoapi/internal/errors"
	"momoapi/internal/logger"
)

// NewLimiter builds an in-memory per-IP limiter from a formatted rate such as
// "300-M". An empty rate disables limiting and returns nil.
func NewLimiter(formatted string) (*limiter.Limiter, error) {
	if formatted == "" {
		return nil, nil
	}
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", formatted, err)
	}
	return limiter.New(memory.NewStore(), rate), nil
}

// RateLimit creates a Gin middleware for rate limiting requests by client IP.
// A nil limiter lets every request through.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiterInstance == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		lctx, err := limiterInstance.Get(c.Request.Context(), ip)
		if err != nil {
			_ = c.Error(apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("rate limit check: %w", err)))
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", lctx.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", lctx.Remaining))

		if lctx.Reached {
			logger.Get().Warnw("rate limit exceeded",
				"client_ip", ip,
				"limit", lctx.Limit,
				"request_id", RequestID(c),
			)
			_ = c.Error(apperrors.ErrRateLimited)
			c.Abort()
			return
		}

		c.Next()
	}
}
