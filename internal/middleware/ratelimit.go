package middleware

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/UserHub/userhub-backend/internal/auth"
	"github.com/UserHub/userhub-backend/internal/utils"
	"github.com/goccy/go-yaml"
	"golang.org/x/time/rate"
)

// RoleLimit is the per-minute request budget for one role.
type RoleLimit struct {
	PerMinute int    `yaml:"per_minute"`
	Burst     int    `yaml:"burst"`
	Message   string `yaml:"message"`
}

// RateLimitConfig maps a role to its limit. Built once at startup and passed
// into the middleware by reference — no module-level registry.
type RateLimitConfig map[string]RoleLimit

func DefaultRateLimits() RateLimitConfig {
	return RateLimitConfig{
		auth.RoleAdmin: {
			PerMinute: 20,
			Burst:     20,
			Message:   "Admin request limit exceeded (20 requests per minute). Slow down.",
		},
		auth.RoleUser: {
			PerMinute: 10,
			Burst:     10,
			Message:   "User request limit exceeded (10 requests per minute). Slow down.",
		},
		auth.RoleGuest: {
			PerMinute: 5,
			Burst:     5,
			Message:   "Guest request limit exceeded (5 requests per minute). Slow down.",
		},
	}
}

// LoadRateLimits overlays limits from a YAML file onto the defaults.
// Unknown roles in the file are ignored.
func LoadRateLimits(path string) (RateLimitConfig, error) {
	cfg := DefaultRateLimits()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rate limit config: %w", err)
	}

	var overrides map[string]RoleLimit
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("parse rate limit config: %w", err)
	}

	for role, limit := range overrides {
		base, ok := cfg[role]
		if !ok {
			continue
		}
		if limit.PerMinute > 0 {
			base.PerMinute = limit.PerMinute
		}
		if limit.Burst > 0 {
			base.Burst = limit.Burst
		}
		if limit.Message != "" {
			base.Message = limit.Message
		}
		cfg[role] = base
	}

	return cfg, nil
}

// RateLimiter enforces per-role, per-client request budgets.
type RateLimiter struct {
	cfg RateLimitConfig

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		cfg:     cfg,
		buckets: make(map[string]*rate.Limiter),
	}
}

func (rl *RateLimiter) limiterFor(role, clientIP string) (*rate.Limiter, RoleLimit) {
	limit, ok := rl.cfg[role]
	if !ok {
		role = auth.RoleGuest
		limit = rl.cfg[auth.RoleGuest]
	}

	key := role + "|" + clientIP

	rl.mu.Lock()
	defer rl.mu.Unlock()

	bucket, ok := rl.buckets[key]
	if !ok {
		bucket = rate.NewLimiter(rate.Limit(float64(limit.PerMinute)/60.0), limit.Burst)
		rl.buckets[key] = bucket
	}
	return bucket, limit
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := auth.RoleGuest
		if requester, ok := utils.GetRequesterFromContext(r.Context()); ok {
			role = requester.Role
		}

		bucket, limit := rl.limiterFor(role, clientIP(r))
		if !bucket.Allow() {
			writeJSONError(w, http.StatusTooManyRequests, limit.Message)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
