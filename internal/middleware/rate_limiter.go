package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
)

// limiterIdleTTL is how long an IP's bucket survives without requests.
const limiterIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP. Idle buckets are
// swept on access, at most once per limiterIdleTTL.
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	every     time.Duration
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 30
	}
	burst := perMinute / 6
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		every:    time.Minute / time.Duration(perMinute),
		burst:    burst,
		now:      time.Now,
	}
}

func (r *RateLimiter) limiter(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) >= limiterIdleTTL {
		r.sweep(now)
	}

	v, ok := r.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Every(r.every), r.burst)}
		r.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

func (r *RateLimiter) sweep(now time.Time) {
	for ip, v := range r.visitors {
		if now.Sub(v.lastSeen) >= limiterIdleTTL {
			delete(r.visitors, ip)
		}
	}
	r.lastSweep = now
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !r.limiter(ip).Allow() {
			Logger(c).Warn("rate limit exceeded", zap.String("ip", ip))
			httperr.TooManyRequests(c, "rate_limited", "Too many requests. Try again later.")
			return
		}
		c.Next()
	}
}
