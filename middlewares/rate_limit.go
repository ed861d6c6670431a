package middlewares

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// limiterIdleTTL bu süre boyunca istek gelmeyen anahtarlar haritadan silinir.
const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter istemci anahtarı (IP) başına token bucket tutar.
type RateLimiter struct {
	mu        sync.Mutex
	limits    map[string]*limiterEntry
	rps       rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limits:  make(map[string]*limiterEntry),
		rps:     rate.Limit(perSecond),
		burst:   burst,
		idleTTL: limiterIdleTTL,
		now:     time.Now,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	if e, ok := rl.limits[key]; ok {
		e.lastSeen = now
		return e.limiter
	}
	limiter := rate.NewLimiter(rl.rps, rl.burst)
	rl.limits[key] = &limiterEntry{limiter: limiter, lastSeen: now}
	return limiter
}

// sweep en fazla idleTTL'de bir boşta kalan anahtarları siler. mu tutulurken çağrılır.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.idleTTL {
		return
	}
	for key, e := range rl.limits {
		if now.Sub(e.lastSeen) >= rl.idleTTL {
			delete(rl.limits, key)
		}
	}
	rl.lastSweep = now
}

func (rl *RateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

// Handler limit aşıldığında 429 döner.
func (rl *RateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !rl.Allow(c.IP()) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many requests"})
		}
		return c.Next()
	}
}
