package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tonynagyeurope/news-ai-agent/internal/cache"
)

func Health(store cache.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.JSON(http.StatusOK, gin.H{"status": "healthy", "cache": "disabled"})
			return
		}

		if _, _, err := store.TTL(c.Request.Context(), "health:probe"); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"cache":  "disconnected",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "healthy", "cache": "connected"})
	}
}
