package middleware

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zafar-Sheik/roadworks-service/internal/i18n"
)

const defaultNumShards = 16

type visitor struct {
	tokens    int
	lastReset time.Time
}

type rateLimiterShard struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

// RateLimiter is a fixed-window limiter sharded by identifier hash to reduce lock contention.
type RateLimiter struct {
	shards []*rateLimiterShard
	rate   int
	window time.Duration
	stopCh chan struct{}
	once   sync.Once
}

// NewRateLimiter creates a limiter that allows rate requests per window for each identifier.
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return NewShardedRateLimiter(rate, window, defaultNumShards)
}

// NewShardedRateLimiter creates a limiter with a custom shard count.
func NewShardedRateLimiter(rate int, window time.Duration, numShards int) *RateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}

	shards := make([]*rateLimiterShard, numShards)
	for i := range shards {
		shards[i] = &rateLimiterShard{visitors: make(map[string]*visitor)}
	}

	rl := &RateLimiter{
		shards: shards,
		rate:   rate,
		window: window,
		stopCh: make(chan struct{}),
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) shard(identifier string) *rateLimiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(identifier))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// allow consumes one token for identifier.
func (rl *RateLimiter) allow(identifier string) (bool, int) {
	shard := rl.shard(identifier)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	now := time.Now()
	v, exists := shard.visitors[identifier]
	if !exists || now.Sub(v.lastReset) > rl.window {
		shard.visitors[identifier] = &visitor{tokens: rl.rate - 1, lastReset: now}
		return true, rl.rate - 1
	}

	if v.tokens <= 0 {
		return false, 0
	}

	v.tokens--
	return true, v.tokens
}

// RateLimit limits requests per client IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return rl.handler(func(c *gin.Context) string { return "ip:" + c.ClientIP() })
}

// UserRateLimit limits requests per authenticated user, falling back to the client IP.
func (rl *RateLimiter) UserRateLimit() gin.HandlerFunc {
	return rl.handler(func(c *gin.Context) string {
		if claims, ok := GetClaims(c); ok {
			return "user:" + claims.UserID.Hex()
		}
		return "ip:" + c.ClientIP()
	})
}

func (rl *RateLimiter) handler(identify func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining := rl.allow(identify(c))

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			abortWithError(c, http.StatusTooManyRequests, i18n.ErrKeyRateLimitExceeded)
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupExpired()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) cleanupExpired() {
	threshold := rl.window * 2
	now := time.Now()

	for _, shard := range rl.shards {
		shard.mu.Lock()
		for id, v := range shard.visitors {
			if now.Sub(v.lastReset) > threshold {
				delete(shard.visitors, id)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop ends the background cleanup. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stopCh) })
}

// Visitors returns the number of tracked identifiers.
func (rl *RateLimiter) Visitors() int {
	total := 0
	for _, shard := range rl.shards {
		shard.mu.Lock()
		total += len(shard.visitors)
		shard.mu.Unlock()
	}
	return total
}
