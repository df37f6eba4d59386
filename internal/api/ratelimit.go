package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	DefaultChatRateLimit  = 20
	DefaultChatRateWindow = time.Minute

	// idle keys are dropped once this many clients are tracked
	maxTrackedClients = 1024
)

// rateLimiter allows at most limit hits per key within a sliding window.
type rateLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time
	mu     sync.Mutex
	hits   map[string][]time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{limit: limit, window: window, now: time.Now, hits: make(map[string][]time.Time)}
}

func (l *rateLimiter) Allow(key string) bool {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	cutoff := now.Add(-l.window)
	if len(l.hits) > maxTrackedClients {
		l.pruneLocked(cutoff)
	}
	queue := l.hits[key]
	idx := 0
	for _, t := range queue {
		if t.After(cutoff) {
			break
		}
		idx++
	}
	if idx > 0 {
		queue = queue[idx:]
	}
	if len(queue) >= l.limit {
		l.hits[key] = queue
		return false
	}
	l.hits[key] = append(queue, now)
	return true
}

// pruneLocked forgets keys with no hits inside the window.
func (l *rateLimiter) pruneLocked(cutoff time.Time) {
	for key, queue := range l.hits {
		if len(queue) == 0 || !queue[len(queue)-1].After(cutoff) {
			delete(l.hits, key)
		}
	}
}

// rateLimitMiddleware rejects a client once it exceeds the limiter's budget.
// A nil limiter disables the check.
func rateLimitMiddleware(l *rateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil {
			c.Next()
			return
		}
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many messages, please retry later"})
			return
		}
		c.Next()
	}
}
