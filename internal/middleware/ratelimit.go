package middleware

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/painel-adm/revendas-api/internal/service"
	appErrors "github.com/painel-adm/revendas-api/pkg/errors"
	"github.com/painel-adm/revendas-api/pkg/response"
)

// CounterStore increments a fixed-window counter and returns its value after
// the increment. Injected so the limiter is swappable and testable.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimitConfig tunes the fixed-window limiter.
type RateLimitConfig struct {
	Max    int64
	Window time.Duration
}

// RateLimit applies an approximate fixed-window limit per client IP. Counter
// store failures fail open: a broken Redis must not take the API down.
func RateLimit(store CounterStore, cfg RateLimitConfig, metrics *service.MetricsService, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Max <= 0 {
		cfg.Max = 100
	}
	if cfg.Window <= 0 {
		cfg.Window = 15 * time.Minute
	}

	return func(c *gin.Context) {
		if store == nil {
			c.Next()
			return
		}

		// Nanosecond arithmetic so sub-second windows stay valid keys.
		windowStart := time.Now().UnixNano() / int64(cfg.Window)
		key := fmt.Sprintf("rl:ip:%s:%d", c.ClientIP(), windowStart)

		count, err := store.Incr(c.Request.Context(), key, cfg.Window)
		if err != nil {
			logger.Warn("rate limit counter unavailable", zap.Error(err))
			c.Next()
			return
		}

		remaining := cfg.Max - count
		if remaining < 0 {
			remaining = 0
		}
		c.Writer.Header().Set("X-RateLimit-Limit", strconv.FormatInt(cfg.Max, 10))
		c.Writer.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > cfg.Max {
			retryAfter := int64(cfg.Window.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Writer.Header().Set("Retry-After", strconv.FormatInt(retryAfter, 10))
			if metrics != nil {
				metrics.RecordRateLimited()
			}
			response.Error(c, appErrors.ErrRateLimited)
			c.Abort()
			return
		}

		c.Next()
	}
}

// MemoryCounterStore is an in-process CounterStore for tests and deployments
// without Redis. Windows are pruned lazily on access.
type MemoryCounterStore struct {
	mu      sync.Mutex
	windows map[string]*memoryWindow
	now     func() time.Time
}

type memoryWindow struct {
	count   int64
	expires time.Time
}

// NewMemoryCounterStore constructs an empty in-memory store.
func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{windows: make(map[string]*memoryWindow), now: time.Now}
}

// Incr implements CounterStore.
func (s *MemoryCounterStore) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	w, ok := s.windows[key]
	if !ok || now.After(w.expires) {
		w = &memoryWindow{expires: now.Add(window)}
		s.windows[key] = w
	}
	w.count++

	if len(s.windows) > 1024 {
		for k, win := range s.windows {
			if now.After(win.expires) {
				delete(s.windows, k)
			}
		}
	}

	return w.count, nil
}
