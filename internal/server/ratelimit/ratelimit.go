// Package ratelimit provides a per-client token bucket for the HTTP API.
// Enrichment calls fan out to the public web and a paid completion API, so
// the server throttles clients rather than relying on upstream quotas.
package ratelimit

import (
	"sync"
	"time"
)

// Config holds the rate limit parameters.
type Config struct {
	// RequestsPerMinute is the sustained refill rate per client.
	RequestsPerMinute int
	// Burst is the bucket capacity.
	Burst int
}

// DefaultConfig returns limits suitable for a single-analyst dashboard.
func DefaultConfig() Config {
	return Config{
		RequestsPerMinute: 120,
		Burst:             30,
	}
}

// Info describes the limit state returned with each decision.
type Info struct {
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

type bucket struct {
	tokens float64
	last   time.Time
}

// Limiter tracks a token bucket per client ID.
type Limiter struct {
	mu      sync.Mutex
	cfg     Config
	buckets map[string]*bucket
	stop    chan struct{}
}

// NewLimiter creates a Limiter and starts its idle-bucket cleanup loop.
func NewLimiter(cfg Config) *Limiter {
	if cfg.RequestsPerMinute <= 0 {
		cfg = DefaultConfig()
	}
	l := &Limiter{
		cfg:     cfg,
		buckets: make(map[string]*bucket),
		stop:    make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow reports whether the client may proceed, consuming one token if so.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{tokens: float64(l.cfg.Burst), last: now}
		l.buckets[clientID] = b
	}

	refillRate := float64(l.cfg.RequestsPerMinute) / 60.0
	b.tokens += now.Sub(b.last).Seconds() * refillRate
	if b.tokens > float64(l.cfg.Burst) {
		b.tokens = float64(l.cfg.Burst)
	}
	b.last = now

	info := Info{Limit: l.cfg.Burst}
	if b.tokens < 1 {
		info.RetryAfter = time.Duration((1-b.tokens)/refillRate*float64(time.Second)) + time.Second
		return false, info
	}

	b.tokens--
	info.Remaining = int(b.tokens)
	return true, info
}

// Stop terminates the cleanup loop.
func (l *Limiter) Stop() {
	close(l.stop)
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.mu.Lock()
			cutoff := time.Now().Add(-10 * time.Minute)
			for id, b := range l.buckets {
				if b.last.Before(cutoff) {
					delete(l.buckets, id)
				}
			}
			l.mu.Unlock()
		}
	}
}
