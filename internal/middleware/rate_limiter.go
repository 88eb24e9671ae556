package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"restogestion/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Counter counts hits per key within a fixed window. Incr returns the count
// after this hit and the time left until the window resets.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RateLimiter allows limit requests per client IP and window. prefix keeps
// the counters of different limiters apart. Counter failures let the request
// through.
func RateLimiter(counter Counter, prefix string, limit int, window time.Duration, msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, ttl, err := counter.Incr(c.Request.Context(), prefix+":"+c.ClientIP(), window)
		if err != nil {
			log.Warn().Err(err).Str("limiter", prefix).Msg("rate limiter unavailable")
			c.Next()
			return
		}
		if count > int64(limit) {
			c.Header("Retry-After", strconv.Itoa(int(ttl.Round(time.Second)/time.Second)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(msg))
			return
		}
		c.Next()
	}
}

// ── In-memory counter ────────────────────────────────────────────────────────

type windowEntry struct {
	count     int64
	windowEnd time.Time
}

// MemoryCounter keeps counters in process memory. Expired entries are purged
// every purgeInterval, lazily, on the next Incr.
type MemoryCounter struct {
	mu        sync.Mutex
	entries   map[string]*windowEntry
	nextPurge time.Time
	now       func() time.Time
}

const purgeInterval = 5 * time.Minute

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{entries: make(map[string]*windowEntry), now: time.Now}
}

func (m *MemoryCounter) Incr(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.After(m.nextPurge) {
		m.purge(now)
		m.nextPurge = now.Add(purgeInterval)
	}

	entry, ok := m.entries[key]
	if !ok || now.After(entry.windowEnd) {
		entry = &windowEntry{windowEnd: now.Add(window)}
		m.entries[key] = entry
	}
	entry.count++
	return entry.count, entry.windowEnd.Sub(now), nil
}

func (m *MemoryCounter) purge(now time.Time) {
	purged := 0
	for key, entry := range m.entries {
		if now.After(entry.windowEnd) {
			delete(m.entries, key)
			purged++
		}
	}
	if purged > 0 {
		log.Debug().Int("purged", purged).Int("remaining", len(m.entries)).Msg("rate limiter entries purged")
	}
}

// ── Redis counter ────────────────────────────────────────────────────────────

// RedisCounter shares counters between instances. The window starts with the
// first hit of a key.
type RedisCounter struct{ rdb *redis.Client }

func NewRedisCounter(rdb *redis.Client) *RedisCounter { return &RedisCounter{rdb: rdb} }

func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	key = "ratelimit:" + key
	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		ttl = pipe.PTTL(ctx, key)
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return incr.Val(), ttl.Val(), nil
}
