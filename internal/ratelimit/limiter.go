// Package ratelimit implements a fixed-window request limiter keyed by
// (scope, caller). Counters live in a process-local map; a background sweep
// removes entries whose window has already elapsed so that one-off callers
// do not grow memory unboundedly.
package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

// DefaultSweepInterval is used when Config.SweepInterval is zero.
const DefaultSweepInterval = 5 * time.Minute

// Config describes one limiting policy.
type Config struct {
	// Scope namespaces keys so independently configured limiters never collide.
	Scope string
	// Window is the fixed counting window duration.
	Window time.Duration
	// MaxRequests is the per-caller ceiling within one window.
	MaxRequests int
	// SweepInterval controls how often expired entries are purged.
	SweepInterval time.Duration
}

// Decision is the outcome of a single Check call. A rejected request is a
// normal decision value, never an error.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	Reset      time.Time
	RetryAfter time.Duration // zero unless rejected
}

type entry struct {
	count     int
	resetTime time.Time
}

// Limiter is a fixed-window counter shared by all requests of one scope.
// All methods are safe for concurrent use.
type Limiter struct {
	scope  string
	window time.Duration
	max    int

	mu      sync.Mutex
	entries map[string]*entry

	now func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
}

// New builds a limiter and starts its background sweep. Configuration errors
// are reported immediately rather than surfacing as misbehavior per request.
func New(cfg Config) (*Limiter, error) {
	if cfg.Window <= 0 {
		return nil, fmt.Errorf("ratelimit: window must be positive, got %v", cfg.Window)
	}
	if cfg.MaxRequests <= 0 {
		return nil, fmt.Errorf("ratelimit: max requests must be positive, got %d", cfg.MaxRequests)
	}
	sweep := cfg.SweepInterval
	if sweep <= 0 {
		sweep = DefaultSweepInterval
	}

	l := &Limiter{
		scope:   cfg.Scope,
		window:  cfg.Window,
		max:     cfg.MaxRequests,
		entries: make(map[string]*entry),
		now:     time.Now,
		ticker:  time.NewTicker(sweep),
		done:    make(chan struct{}),
	}
	go l.sweepLoop()
	return l, nil
}

// Scope returns the namespace label this limiter was configured with.
func (l *Limiter) Scope() string { return l.scope }

// Limit returns the configured per-window ceiling.
func (l *Limiter) Limit() int { return l.max }

// Check records one request for caller and reports whether it may proceed.
// The lookup-compare-increment sequence runs under the mutex so two
// concurrent requests can never both slip past the ceiling.
func (l *Limiter) Check(caller string) Decision {
	key := l.scope + ":" + caller

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[key]
	if !ok || now.After(e.resetTime) {
		e = &entry{count: 1, resetTime: now.Add(l.window)}
		l.entries[key] = e
		return Decision{
			Allowed:   true,
			Limit:     l.max,
			Remaining: l.max - 1,
			Reset:     e.resetTime,
		}
	}

	if e.count >= l.max {
		// Do not increment past the ceiling; the window keeps its reset time.
		return Decision{
			Allowed:    false,
			Limit:      l.max,
			Remaining:  0,
			Reset:      e.resetTime,
			RetryAfter: ceilSeconds(e.resetTime.Sub(now)),
		}
	}

	e.count++
	return Decision{
		Allowed:   true,
		Limit:     l.max,
		Remaining: l.max - e.count,
		Reset:     e.resetTime,
	}
}

// Len reports the number of tracked entries.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Destroy stops the background sweep and clears all entries. It is safe to
// call more than once; required for clean shutdown and test isolation.
func (l *Limiter) Destroy() {
	l.stopOnce.Do(func() {
		l.ticker.Stop()
		close(l.done)
	})
	l.mu.Lock()
	l.entries = make(map[string]*entry)
	l.mu.Unlock()
}

func (l *Limiter) sweepLoop() {
	for {
		select {
		case <-l.ticker.C:
			l.sweep()
		case <-l.done:
			return
		}
	}
}

// sweep deletes entries whose window has already elapsed. Deleting while
// ranging the map is safe in Go, and the lock keeps the sweep from racing
// in-flight checks.
func (l *Limiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	for key, e := range l.entries {
		if now.After(e.resetTime) {
			delete(l.entries, key)
		}
	}
}

// ceilSeconds rounds d up to whole seconds so a caller told to retry after N
// seconds never retries early.
func ceilSeconds(d time.Duration) time.Duration {
	if d <= 0 {
		return time.Second
	}
	secs := d / time.Second
	if d%time.Second != 0 {
		secs++
	}
	return secs * time.Second
}
