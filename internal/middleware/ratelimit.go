package middleware

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
	// IdleTTL drops a caller's bucket after this long without requests.
	IdleTTL time.Duration
}

type callerLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// RateLimiter applies a global bucket plus one bucket per caller. Idle caller
// buckets are swept at most once per IdleTTL.
type RateLimiter struct {
	config        RateLimitConfig
	globalLimiter *rate.Limiter
	userLimiters  sync.Map
	lastSweep     atomic.Int64
	now           func() time.Time
}

func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 120
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 20
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 10 * time.Minute
	}
	rl := &RateLimiter{
		config: cfg,
		globalLimiter: rate.NewLimiter(
			rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute*50)),
			cfg.Burst*50,
		),
		now: time.Now,
	}
	rl.lastSweep.Store(rl.now().UnixNano())
	return rl
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	now := rl.now().UnixNano()
	rl.maybeSweep(now)

	v, ok := rl.userLimiters.Load(key)
	if !ok {
		v, _ = rl.userLimiters.LoadOrStore(key, &callerLimiter{limiter: rate.NewLimiter(
			rate.Every(time.Minute/time.Duration(rl.config.RequestsPerMinute)),
			rl.config.Burst,
		)})
	}
	entry := v.(*callerLimiter)
	entry.lastSeen.Store(now)
	return entry.limiter
}

func (rl *RateLimiter) maybeSweep(now int64) {
	last := rl.lastSweep.Load()
	if now-last < int64(rl.config.IdleTTL) || !rl.lastSweep.CompareAndSwap(last, now) {
		return
	}
	rl.sweep(now)
}

// sweep drops buckets idle for longer than IdleTTL.
func (rl *RateLimiter) sweep(now int64) {
	cutoff := now - int64(rl.config.IdleTTL)
	rl.userLimiters.Range(func(key, v any) bool {
		if v.(*callerLimiter).lastSeen.Load() < cutoff {
			rl.userLimiters.Delete(key)
		}
		return true
	})
}

func (rl *RateLimiter) callers() int {
	n := 0
	rl.userLimiters.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}

func (rl *RateLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !rl.globalLimiter.Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Global rate limit exceeded",
			})
		}

		key := c.Get("X-User-ID")
		if key == "" {
			key = c.IP()
		}
		if !rl.limiterFor(key).Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded",
			})
		}
		return c.Next()
	}
}

// AdminOnly rejects requests without the configured X-Admin-Token.
func AdminOnly(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token == "" || c.Get("X-Admin-Token") != token {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
		}
		return c.Next()
	}
}
