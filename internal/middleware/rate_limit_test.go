package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/pageza/dippingsauce/backend/internal/testhelpers"
)

func limitedRouter(rl *RateLimiter) *gin.Engine {
	router := gin.New()
	router.POST("/auth/token", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	client := testhelpers.SetupRedis(t)
	metrics := NewMetrics()
	rl := NewRateLimiter(client, RateLimitConfig{Window: time.Hour, Limit: 3, KeyPrefix: "test"}, zap.NewNop(), metrics)
	router := limitedRouter(rl)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/token", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/token", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.JSONEq(t, `{"error":"Too many requests"}`, w.Body.String())

	other := httptest.NewRequest(http.MethodPost, "/auth/token", nil)
	other.RemoteAddr = "10.0.0.9:4000"
	w = httptest.NewRecorder()
	router.ServeHTTP(w, other)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterFailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	t.Cleanup(func() { _ = client.Close() })

	rl := NewAuthRateLimiter(client, 1, zap.NewNop(), nil)
	router := limitedRouter(rl)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/token", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
