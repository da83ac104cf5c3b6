package middleware

import (
	"fmt"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records per-route request counters and latency summaries.
// Routes are labeled by their registered pattern, not the raw URL, to keep
// label cardinality bounded.
func (m Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		counter := fmt.Sprintf(`http_requests_total{method=%q,path=%q,status="%d"}`,
			c.Request.Method, path, c.Writer.Status())
		metrics.GetOrCreateCounter(counter).Inc()

		duration := fmt.Sprintf(`http_request_duration_seconds{method=%q,path=%q}`,
			c.Request.Method, path)
		metrics.GetOrCreateSummary(duration).Update(time.Since(start).Seconds())
	}
}
