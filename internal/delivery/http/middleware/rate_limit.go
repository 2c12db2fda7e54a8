package middleware

import (
	"net/http"
	"sync"
	"time"

	"procurement-search/pkg/cache"
	"procurement-search/pkg/logger"
	"procurement-search/pkg/utils"

	"golang.org/x/time/rate"
)

// RateLimiter manages per-IP token buckets. Idle clients expire from the
// backing store after clientTTL.
type RateLimiter struct {
	clients   cache.TTLStore
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	clientTTL time.Duration
}

// NewRateLimiter creates a new RateLimiter
// limit: requests per second
// burst: maximum burst size
// clientTTL: how long before an idle client is forgotten
func NewRateLimiter(clients cache.TTLStore, limit rate.Limit, burst int, clientTTL time.Duration) *RateLimiter {
	return &RateLimiter{
		clients:   clients,
		limit:     limit,
		burst:     burst,
		clientTTL: clientTTL,
	}
}

// Middleware returns the HTTP middleware handler
func (rl *RateLimiter) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := getClientIP(r)

			if !rl.getVisitor(ip).Allow() {
				logger.WithContext(r.Context()).Warn().
					Str("ip", ip).
					Msg("Rate limit exceeded")
				w.Header().Set("Retry-After", "1")
				utils.WriteError(w, http.StatusTooManyRequests, "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Clients returns the number of tracked clients.
func (rl *RateLimiter) Clients() int {
	return rl.clients.Len()
}

func (rl *RateLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if v, ok := rl.clients.Get(ip); ok {
		if limiter, ok := v.(*rate.Limiter); ok {
			// Sliding expiry: every request keeps the client alive.
			rl.clients.Set(ip, limiter, rl.clientTTL)
			return limiter
		}
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.clients.Set(ip, limiter, rl.clientTTL)
	return limiter
}
