package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestMetrics is a point-in-time copy of the in-memory request counters
type RequestMetrics struct {
	TotalRequests   uint64
	RequestsByRoute map[string]uint64
}

var metrics = struct {
	mu              sync.RWMutex
	totalRequests   uint64
	requestsByRoute map[string]uint64
}{
	requestsByRoute: make(map[string]uint64),
}

// GetMetrics returns a copy of the current request metrics
func GetMetrics() RequestMetrics {
	metrics.mu.RLock()
	defer metrics.mu.RUnlock()
	byRoute := make(map[string]uint64, len(metrics.requestsByRoute))
	for k, v := range metrics.requestsByRoute {
		byRoute[k] = v
	}
	return RequestMetrics{
		TotalRequests:   metrics.totalRequests,
		RequestsByRoute: byRoute,
	}
}

// RequestLogging logs each request with latency and status, and counts
// requests per route template so parameterized routes aggregate together
// (e.g. all farm ids land under /api/farms/:id).
func RequestLogging(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = path // unmatched routes (404s) keep the raw path
		}

		metrics.mu.Lock()
		metrics.totalRequests++
		metrics.requestsByRoute[method+" "+route]++
		metrics.mu.Unlock()

		latency := time.Since(start)
		logger.Info("request completed",
			"method", method,
			"path", path,
			"status_code", c.Writer.Status(),
			"latency_ms", latency.Milliseconds(),
			"bytes_written", c.Writer.Size(),
		)

		for _, err := range c.Errors {
			logger.Error("request error",
				"method", method,
				"path", path,
				"error", err.Error(),
			)
		}
	}
}
