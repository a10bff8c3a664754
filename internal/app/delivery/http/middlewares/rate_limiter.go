package middlewares

import (
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter throttles a route per client IP and blocks an IP for
// blockTime once it exceeds its token bucket.
type RateLimiter struct {
	log       *zap.Logger
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	blockTime time.Duration
	now       func() time.Time
}

func NewRateLimiter(log *zap.Logger, perSecond, burst int, blockTime time.Duration) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		log:       log,
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		limit:     rate.Limit(perSecond),
		burst:     burst,
		blockTime: blockTime,
		now:       time.Now,
	}
}

func (m *Middlewares) NewLoginRateLimiter() *RateLimiter {
	app := m.InternalConfig.App
	return NewRateLimiter(m.Log, app.LoginRatePerSecond, app.LoginBurst, time.Duration(app.LoginBlockDurationInMinutes)*time.Minute)
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !rl.allow(ip) {
			rl.log.Warn("RateLimiter.Limit request blocked",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingRemoteAddrKey, ip),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(rl.log, w, exceptions.ErrTooManyRequests(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if blockedUntil, found := rl.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return false
		}
		delete(rl.blocked, ip)
	}

	limiter, exists := rl.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[ip] = limiter
	}

	if !limiter.AllowN(now, 1) {
		rl.blocked[ip] = now.Add(rl.blockTime)
		return false
	}
	return true
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get(constvars.HeaderXForwardedFor); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
