// Package ratelimit provides per-client rate limiting backed by golang.org/x/time/rate.
package ratelimit

import (
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter manages one token bucket per client and endpoint.
type Limiter struct {
	config *Config

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
	stopOnce      sync.Once
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultRPS:      5,
			DefaultBurst:    10,
			CleanupInterval: 5 * time.Minute,
			IdleTimeout:     time.Hour,
		}
	}

	l := &Limiter{
		config:   config,
		limiters: make(map[string]*clientLimiter),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanup()
	}

	return l
}

// Allow checks if a request from the given client is allowed for the specified endpoint.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{Allowed: false}
	}

	ep := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	var (
		key   string
		limit rate.Limit
		burst int
		shown int
	)
	if ep == nil {
		// Default bucket is shared across every unconfigured endpoint
		key = clientID
		limit = rate.Limit(l.config.DefaultRPS)
		burst = l.config.DefaultBurst
		shown = burst
	} else {
		if ep.Limit <= 0 {
			return true, Info{Allowed: true}
		}
		key = clientID + ":" + ep.Path + ":" + ep.Method
		limit = rate.Limit(ep.Rate())
		burst = ep.Burst
		if burst <= 0 {
			burst = ep.Limit
		}
		shown = ep.Limit
	}
	if limit <= 0 || burst <= 0 {
		return true, Info{Allowed: true}
	}

	now := time.Now()
	cl := l.get(key, limit, burst, now)
	allowed := cl.limiter.AllowN(now, 1)
	tokens := cl.limiter.TokensAt(now)

	info := Info{
		Allowed:   allowed,
		Limit:     shown,
		Remaining: int(math.Max(0, math.Floor(tokens))),
		ResetTime: now.Add(secondsFor(float64(burst)-tokens, limit)),
	}
	if !allowed {
		info.RetryAfter = secondsFor(1-tokens, limit)
	}
	return allowed, info
}

func (l *Limiter) get(key string, limit rate.Limit, burst int, now time.Time) *clientLimiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	cl, ok := l.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(limit, burst)}
		l.limiters[key] = cl
	}
	cl.lastSeen = now
	return cl
}

func secondsFor(tokens float64, limit rate.Limit) time.Duration {
	if tokens <= 0 || limit <= 0 {
		return 0
	}
	return time.Duration(tokens / float64(limit) * float64(time.Second))
}

// Len returns the number of tracked client buckets
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// cleanup removes old unused limiters to prevent memory leaks.
func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.removeIdle(time.Now())
		case <-l.cleanupStop:
			return
		}
	}
}

// removeIdle drops limiters not seen within the idle timeout.
func (l *Limiter) removeIdle(now time.Time) {
	idle := l.config.IdleTimeout
	if idle <= 0 {
		idle = time.Hour
	}
	cutoff := now.Add(-idle)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, cl := range l.limiters {
		if cl.lastSeen.Before(cutoff) {
			delete(l.limiters, key)
		}
	}
}

// Stop stops the cleanup goroutine.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		if l.cleanupTicker != nil {
			l.cleanupTicker.Stop()
		}
		if l.cleanupStop != nil {
			close(l.cleanupStop)
		}
	})
}
