package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"campusnotes/pkg/logger"
)

// RateLimiter implements a per-IP token bucket.
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	rate     int           // requests per window
	window   time.Duration // time window
}

type visitor struct {
	tokens     int
	lastSeen   time.Time
	blocked    bool
	blockUntil time.Time
}

func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate,
		window:   window,
	}

	go rl.cleanup()

	return rl
}

// RateLimitMiddleware returns Echo middleware enforcing the limiter.
func (rl *RateLimiter) RateLimitMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			if ok, resetAt := rl.allow(ip); !ok {
				logger.Warn("Rate limit exceeded for IP %s (reset in %v)", ip, time.Until(resetAt))

				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Rate limit exceeded",
					"retry_after": int(time.Until(resetAt).Seconds()),
				})
			}

			return next(c)
		}
	}
}

// allow refills the visitor's bucket, consumes one token, and reports
// whether the request may proceed.
func (rl *RateLimiter) allow(ip string) (bool, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	v, exists := rl.visitors[ip]
	if !exists {
		rl.visitors[ip] = &visitor{tokens: rl.rate - 1, lastSeen: now}
		return true, time.Time{}
	}

	if v.blocked {
		if now.Before(v.blockUntil) {
			return false, v.blockUntil
		}
		v.blocked = false
		v.tokens = rl.rate
	}

	elapsed := now.Sub(v.lastSeen)
	v.tokens += int(elapsed * time.Duration(rl.rate) / rl.window)
	if v.tokens > rl.rate {
		v.tokens = rl.rate
	}
	v.lastSeen = now

	if v.tokens <= 0 {
		v.blocked = true
		v.blockUntil = now.Add(rl.window)
		return false, v.blockUntil
	}

	v.tokens--
	return true, time.Time{}
}

// cleanup removes idle visitors to bound memory.
func (rl *RateLimiter) cleanup() {
	for {
		time.Sleep(time.Hour)

		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastSeen) > 2*time.Hour {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// DownloadLimiter bounds signed-URL issuance per client IP; signing is
// the expensive downstream call.
var DownloadLimiter = NewRateLimiter(30, time.Minute)

func DownloadRateLimit() echo.MiddlewareFunc {
	return DownloadLimiter.RateLimitMiddleware()
}
