//go:build integration

package middleware

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-concurso-backend/pkg/testutil/containers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(limiter *RateLimiter, config RateLimitConfig) *gin.Engine {
	r := gin.New()
	r.Use(limiter.Middleware(config))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRedisRateLimit(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	rc := containers.GetRedis(t)

	t.Run("Counts requests in redis across limiter instances", func(t *testing.T) {
		client := rc.NewClient(t)
		config := WriteRateLimitConfig(2, time.Minute)

		first := newLimitedRouter(NewRateLimiter(client), config)
		second := newLimitedRouter(NewRateLimiter(client), config)

		assert.Equal(t, http.StatusOK, serve(first, http.MethodPost, "/", nil).Code)
		assert.Equal(t, http.StatusOK, serve(second, http.MethodPost, "/", nil).Code)

		w := serve(first, http.MethodPost, "/", nil)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))

		ttl, err := client.TTL(context.Background(), "rl:write:192.0.2.1").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, time.Minute)
	})

	t.Run("Falls back to memory when redis fails", func(t *testing.T) {
		client := rc.NewClient(t)
		require.NoError(t, client.Close())

		r := newLimitedRouter(NewRateLimiter(client), WriteRateLimitConfig(1, time.Minute))
		assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/", nil).Code)
		assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodPost, "/", nil).Code)
	})

	t.Run("Rejects when redis fails and the config is fail closed", func(t *testing.T) {
		client := rc.NewClient(t)
		require.NoError(t, client.Close())

		config := WriteRateLimitConfig(1, time.Minute)
		config.FailClosed = true
		r := newLimitedRouter(NewRateLimiter(client), config)
		assert.Equal(t, http.StatusServiceUnavailable, serve(r, http.MethodPost, "/", nil).Code)
	})
}
