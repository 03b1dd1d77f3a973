package middleware

import (
	"net/http"
	"sync"
	"time"

	"tyzox-be/internal/handler/dto"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Rate limit tiers
const (
	// Auth / checkout (Strict)
	limitStrict = rate.Limit(2)
	burstStrict = 5

	// General (Default)
	limitGeneral = rate.Limit(10)
	burstGeneral = 20

	// Frontend-heavy apps
	limitFrontend = rate.Limit(20)
	burstFrontend = 40

	// Internal / trusted services
	limitInternal = rate.Limit(100)
	burstInternal = 200
)

const (
	visitorTTL    = 3 * time.Minute
	sweepInterval = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type LimiterOptions struct {
	// InternalKey, when set, grants the internal tier to requests carrying
	// it in X-Service-Auth.
	InternalKey string
	// StrictRoutes are gin route patterns (e.g. "/api/v1/auth/login") held
	// to the strict tier.
	StrictRoutes []string
}

// RateLimiter keeps one token bucket per identity and tier.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor

	internalKey string
	strict      map[string]struct{}
	now         func() time.Time

	stop chan struct{}
	once sync.Once
}

// NewRateLimiter starts a background sweeper; call Close to stop it.
func NewRateLimiter(opts LimiterOptions) *RateLimiter {
	rl := &RateLimiter{
		visitors:    make(map[string]*visitor),
		internalKey: opts.InternalKey,
		strict:      make(map[string]struct{}, len(opts.StrictRoutes)),
		now:         time.Now,
		stop:        make(chan struct{}),
	}
	for _, r := range opts.StrictRoutes {
		rl.strict[r] = struct{}{}
	}

	go rl.sweepLoop()
	return rl
}

func (rl *RateLimiter) Close() {
	rl.once.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

// sweep drops visitors idle for longer than visitorTTL.
func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > visitorTTL {
			delete(rl.visitors, key)
		}
	}
}

func (rl *RateLimiter) getVisitor(key string, r rate.Limit, b int) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[key]
	if !exists {
		limiter := rate.NewLimiter(r, b)
		rl.visitors[key] = &visitor{limiter: limiter, lastSeen: rl.now()}
		return limiter
	}

	v.lastSeen = rl.now()
	return v.limiter
}

func (rl *RateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

// Middleware runs ahead of Auth, so requests with rejected tokens still
// spend their caller's quota. Callers are keyed by device id or client IP.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, burst, tier := rl.resolveRateTier(c)

		identity := "ip:" + c.ClientIP()
		if deviceID := c.GetHeader("X-Device-ID"); deviceID != "" {
			identity = "device:" + deviceID
		}

		// Separate quotas per tier for the same identity, e.g. "ip:10.0.0.1:strict".
		key := identity + ":" + tier

		if !rl.getVisitor(key, limit, burst).Allow() {
			abort(c, http.StatusTooManyRequests, dto.ErrCodeRateLimited, http.StatusText(http.StatusTooManyRequests))
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) resolveRateTier(c *gin.Context) (rate.Limit, int, string) {
	if rl.internalKey != "" && c.GetHeader(ServiceAuthHeader) == rl.internalKey {
		return limitInternal, burstInternal, "internal"
	}

	if _, ok := rl.strict[c.FullPath()]; ok || c.GetHeader("X-Action") == "auth" {
		return limitStrict, burstStrict, "strict"
	}

	if c.GetHeader("X-Client-Type") == "frontend-heavy" {
		return limitFrontend, burstFrontend, "frontend"
	}

	return limitGeneral, burstGeneral, "general"
}
