package auth

import (
	"context"
	"time"

	"domus/internal/cache"
)

const loginAttemptKeyPrefix = "login_attempts:"

// LoginLimiter bounds login attempts per source address within a fixed window.
// It is backed by redis; when redis is unavailable it fails open, matching the
// cache wrapper's behavior.
type LoginLimiter struct {
	cache  *cache.Client
	limit  int
	window time.Duration
}

// NewLoginLimiter creates a limiter allowing limit attempts per window.
func NewLoginLimiter(cache *cache.Client, limit int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{cache: cache, limit: limit, window: window}
}

// Allow reports whether another attempt from ip is permitted.
func (l *LoginLimiter) Allow(ctx context.Context, ip string) bool {
	n, err := l.cache.IncrWithTTL(ctx, loginAttemptKeyPrefix+ip, l.window)
	if err != nil || n == 0 {
		return true
	}
	return n <= int64(l.limit)
}
