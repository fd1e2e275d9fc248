package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health handles GET /api/health.
func Health(checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := checker.HealthCheck(c.Request.Context()); err != nil {
			_ = c.Error(err)
			c.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
