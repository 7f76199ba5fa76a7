package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(rl.Limit())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return router
}

func ping(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":12345"
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.allow("10.0.0.1"), "request %d should fit the window", i+1)
	}
	assert.False(t, rl.allow("10.0.0.1"))

	// Other IPs keep their own window.
	assert.True(t, rl.allow("10.0.0.2"))
}

func TestRateLimiter_ExceedLimit(t *testing.T) {
	router := limitedRouter(NewRateLimiter(2, time.Minute))

	for i := 0; i < 2; i++ {
		w := ping(router, "127.0.0.1")
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := ping(router, "127.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Rate limit exceeded")
	assert.Contains(t, w.Body.String(), "retry_after")
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	router := limitedRouter(NewRateLimiter(1, time.Minute))

	assert.Equal(t, http.StatusOK, ping(router, "192.168.1.1").Code)
	assert.Equal(t, http.StatusOK, ping(router, "192.168.1.2").Code)
	assert.Equal(t, http.StatusTooManyRequests, ping(router, "192.168.1.1").Code)
}

func TestRateLimiter_WindowReset(t *testing.T) {
	router := limitedRouter(NewRateLimiter(1, 100*time.Millisecond))

	assert.Equal(t, http.StatusOK, ping(router, "127.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, ping(router, "127.0.0.1").Code)

	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, http.StatusOK, ping(router, "127.0.0.1").Code)
}
