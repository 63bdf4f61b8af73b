package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tonynagyeurope/news-ai-agent/internal/cache"
)

// RateLimit enforces a fixed-window per-client limit. Store failures
// fail open: a broken cache must not take the API down with it.
func RateLimit(limiter *cache.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		allowed, retryAfter, err := limiter.Allow(c.Request.Context(), "rl:"+c.ClientIP())
		if err != nil {
			slog.Warn("rate limit check failed, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			seconds := int(retryAfter.Seconds())
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"ok":         false,
				"error":      "rate limit exceeded",
				"retryAfter": seconds,
			})
			return
		}

		c.Next()
	}
}
