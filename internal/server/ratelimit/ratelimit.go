// Package ratelimit provides per-client token-bucket rate limiting for the
// scoring API.
package ratelimit

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds rate limiting configuration
type Config struct {
	Enabled         bool
	RequestsPerMin  int
	Burst           int
	CleanupInterval time.Duration
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() *Config {
	cfg := &Config{
		Enabled:         getEnvBool("RATE_LIMIT_ENABLED", true),
		RequestsPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 600),
		Burst:           getEnvInt("RATE_LIMIT_BURST", 60),
		CleanupInterval: 5 * time.Minute,
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerMin
	}
	return cfg
}

// bucket is a token bucket refilled at a steady rate
type bucket struct {
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
}

func (b *bucket) allow(now time.Time) bool {
	elapsed := now.Sub(b.lastRefill)
	b.tokens = min(b.capacity, b.tokens+elapsed.Seconds()*b.refillRate)
	b.lastRefill = now
	b.lastAccess = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return true
	}
	return false
}

// Limiter manages one token bucket per client IP
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config
	stopCh  chan struct{}
	stopped sync.Once
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup loop.
func NewLimiter(config *Config) *Limiter {
	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
		stopCh:  make(chan struct{}),
	}
	if config.Enabled && config.CleanupInterval > 0 {
		go l.cleanupLoop()
	}
	return l
}

// Allow reports whether the client may proceed.
func (l *Limiter) Allow(clientID string) bool {
	if !l.config.Enabled {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{
			capacity:   float64(l.config.Burst),
			refillRate: float64(l.config.RequestsPerMin) / 60.0,
			tokens:     float64(l.config.Burst),
			lastRefill: now,
		}
		l.buckets[clientID] = b
	}
	return b.allow(now)
}

// Middleware enforces the limit per remote IP.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientID(r)) {
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Stop terminates the cleanup loop.
func (l *Limiter) Stop() {
	l.stopped.Do(func() { close(l.stopCh) })
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.mu.Lock()
			cutoff := time.Now().Add(-l.config.CleanupInterval)
			for id, b := range l.buckets {
				if b.lastAccess.Before(cutoff) {
					delete(l.buckets, id)
				}
			}
			l.mu.Unlock()
		case <-l.stopCh:
			return
		}
	}
}

func clientID(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}
