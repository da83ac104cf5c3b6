package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"item-management/pkg/response"
)

// RateLimit applies a process-wide token bucket to incoming requests.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiter.Allow() {
			response.Error(c, http.StatusTooManyRequests, "Too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
