package middleware

import (
	"strconv"
	"time"

	"go-concurso-backend/internal/domain"
	"go-concurso-backend/pkg/logger"
	"go-concurso-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one structured line per request and records its latency.
func RequestLogger(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		m.ObserveRequest(c.Request.Method, route, strconv.Itoa(status), start)

		logger.Log.Info("request",
			"request_id", c.GetString(string(domain.KeyRequestID)),
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}
