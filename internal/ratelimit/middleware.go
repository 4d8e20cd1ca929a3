package ratelimit

import (
	"fmt"

	"leadflow-server/internal/apierrors"
	"leadflow-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware enforces per-operator rate limits on protected routes. Keys on
// the authenticated operator when available, otherwise on the client IP.
func Middleware(service *Service, logger *observability.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		key := c.ClientIP()
		if operatorID, exists := c.Get("Operator-ID"); exists {
			if id, ok := operatorID.(string); ok && id != "" {
				key = id
			}
		}

		result, err := service.CheckRateLimit(ctx, key)
		if err != nil {
			logger.Error(ctx, "rate limit check failed", err)
			apierrors.InternalError(c, err)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			retryAfterSec := (result.RetryAfterMs + 999) / 1000
			apierrors.TooManyRequests(c, "Rate limit exceeded", retryAfterSec)
			c.Abort()
			return
		}

		c.Next()
	}
}
