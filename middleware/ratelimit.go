package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter caps requests per client IP over a fixed window. Parsing a
// resume is the most expensive operation the service exposes, so the upload
// route sits behind this.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     int
	window   time.Duration
}

// visitor is the per-IP window state.
type visitor struct {
	windowStart time.Time
	count       int
}

// NewRateLimiter creates a limiter allowing rate requests per window for each
// client IP and starts its background cleanup.
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate,
		window:   window,
	}
	go rl.janitor()
	return rl
}

// allow records one request from ip and reports whether it fits the current
// window. A window older than rl.window starts fresh.
func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok || time.Since(v.windowStart) > rl.window {
		rl.visitors[ip] = &visitor{windowStart: time.Now(), count: 1}
		return true
	}
	if v.count >= rl.rate {
		return false
	}
	v.count++
	return true
}

// Limit returns the gin middleware enforcing the cap.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded. Please try again later.",
				"retry_after": rl.window.Seconds(),
			})
			return
		}
		c.Next()
	}
}

// janitor drops idle visitor entries so the map does not grow unbounded.
func (rl *RateLimiter) janitor() {
	ticker := time.NewTicker(time.Minute)
	for range ticker.C {
		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.windowStart) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
