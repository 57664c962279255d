// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LoginProtection applies per-IP rate limiting to the login endpoint.
// It throttles attempt volume only; it never changes the outcome of a
// valid attempt.
type LoginProtection struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiter

	limit rate.Limit
	burst int
}

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginProtectionConfig holds configuration for login protection.
type LoginProtectionConfig struct {
	// RateLimit is requests per second per IP (default: 0.5 = 1 request per 2 seconds)
	RateLimit float64
	// Burst is the maximum burst size per IP (default: 5)
	Burst int
}

// DefaultLoginProtectionConfig returns sensible defaults.
func DefaultLoginProtectionConfig() LoginProtectionConfig {
	return LoginProtectionConfig{
		RateLimit: 0.5,
		Burst:     5,
	}
}

// NewLoginProtection creates a new login protection instance.
func NewLoginProtection(cfg LoginProtectionConfig) *LoginProtection {
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 0.5
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 5
	}

	lp := &LoginProtection{
		limiters: make(map[string]*ipLimiter),
		limit:    rate.Limit(cfg.RateLimit),
		burst:    cfg.Burst,
	}

	go lp.cleanup()

	return lp
}

// Allow reports whether a login attempt from ip should be processed.
func (lp *LoginProtection) Allow(ip string) bool {
	lp.mu.Lock()
	defer lp.mu.Unlock()

	l, ok := lp.limiters[ip]
	if !ok {
		l = &ipLimiter{limiter: rate.NewLimiter(lp.limit, lp.burst)}
		lp.limiters[ip] = l
	}
	l.lastSeen = time.Now()
	return l.limiter.Allow()
}

// Middleware rejects rate-limited login attempts with 429.
func (lp *LoginProtection) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !lp.Allow(clientIP(r)) {
				http.Error(w, "Too many login attempts. Please wait and try again.",
					http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// cleanup evicts limiters idle for over an hour.
func (lp *LoginProtection) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-time.Hour)
		lp.mu.Lock()
		for ip, l := range lp.limiters {
			if l.lastSeen.Before(cutoff) {
				delete(lp.limiters, ip)
			}
		}
		lp.mu.Unlock()
	}
}

// clientIP extracts the remote IP, relying on chi's RealIP middleware
// having already rewritten RemoteAddr when behind a proxy.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
