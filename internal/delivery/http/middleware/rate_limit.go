package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/security"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis
	KeyPrefix string
	// Whether to fail closed (reject) when Redis is unavailable
	FailClosed bool
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	count   int
	resetAt time.Time
	mu      sync.Mutex
}

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// RateLimiter counts requests in Redis when a client is configured and in
// process memory otherwise.
type RateLimiter struct {
	redis   *goredis.Client
	secLog  *security.SecurityLogger
	entries sync.Map
	now     func() time.Time
}

// NewRateLimiter builds a limiter; client may be nil.
func NewRateLimiter(client *goredis.Client, secLog *security.SecurityLogger) *RateLimiter {
	return &RateLimiter{
		redis:  client,
		secLog: secLog,
		now:    time.Now,
	}
}

// RunCleanup evicts expired in-memory entries until ctx is done.
func (l *RateLimiter) RunCleanup(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := l.now()
			l.entries.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				if now.After(entry.resetAt) {
					l.entries.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}
}

// GlobalRateLimitConfig applies to every route, keyed by client IP.
func GlobalRateLimitConfig(window time.Duration, limit int) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:ip:",
		FailClosed: false, // Fail open by default for availability
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// SessionRateLimitConfig is the strict config for token issuance.
func SessionRateLimitConfig(window time.Duration, limit int) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:session:",
		FailClosed: true,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

var errRateLimited = apperror.TooManyRequests("Rate limit exceeded. Please try again later.")

// Middleware creates a rate limiting middleware with the given config
func (l *RateLimiter) Middleware(config RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		fullKey := config.KeyPrefix + config.KeyFunc(c)

		var count int
		var resetAt time.Time

		if l.redis != nil {
			var err error
			count, resetAt, err = l.checkRedis(c.Request.Context(), fullKey, config)
			if err != nil {
				if config.FailClosed {
					l.logRateLimit(c, map[string]interface{}{"error_type": "redis_error", "error": err.Error()})
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.")
					c.Abort()
					return
				}
				count, resetAt = l.checkInMemory(fullKey, config)
			}
		} else {
			count, resetAt = l.checkInMemory(fullKey, config)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := int(resetAt.Sub(l.now()).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			l.logRateLimit(c, map[string]interface{}{"limit": config.Limit, "key_prefix": config.KeyPrefix})
			response.Error(c, errRateLimited.Code, errRateLimited.Message)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(config.Limit-count))
		c.Next()
	}
}

func (l *RateLimiter) checkRedis(ctx context.Context, key string, config RateLimitConfig) (int, time.Time, error) {
	ttlSeconds := int(config.Window.Seconds())

	result, err := l.redis.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), l.now().Add(time.Duration(ttl) * time.Second), nil
}

func (l *RateLimiter) checkInMemory(key string, config RateLimitConfig) (int, time.Time) {
	now := l.now()
	entryI, _ := l.entries.LoadOrStore(key, &rateLimitEntry{
		resetAt: now.Add(config.Window),
	})
	entry := entryI.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(config.Window)
	}
	entry.count++

	return entry.count, entry.resetAt
}

func (l *RateLimiter) logRateLimit(c *gin.Context, details map[string]interface{}) {
	l.secLog.Log(c.Request.Context(), security.SecurityEvent{
		Event:     security.EventRateLimitTriggered,
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		RequestID: c.GetString(string(domain.KeyRequestID)),
		Path:      c.FullPath(),
		Details:   details,
	})
}
