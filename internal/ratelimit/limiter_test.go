package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeClock lets tests advance time deterministically.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestLimiter(t *testing.T, cfg Config, clock *fakeClock) *Limiter {
	t.Helper()
	l, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(l.Destroy)
	if clock != nil {
		l.now = clock.Now
	}
	return l
}

func TestNew_RejectsBadConfig(t *testing.T) {
	_, err := New(Config{Scope: "auth", Window: 0, MaxRequests: 10})
	require.Error(t, err)

	_, err = New(Config{Scope: "auth", Window: time.Minute, MaxRequests: 0})
	require.Error(t, err)

	_, err = New(Config{Scope: "auth", Window: -time.Second, MaxRequests: 5})
	require.Error(t, err)
}

func TestCheck_RemainingDecreasesWithinWindow(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(t, Config{Scope: "general", Window: time.Minute, MaxRequests: 5}, clock)

	for i := 1; i <= 5; i++ {
		d := l.Check("10.0.0.1")
		require.True(t, d.Allowed, "request %d should be allowed", i)
		require.Equal(t, 5, d.Limit)
		require.Equal(t, 5-i, d.Remaining)
		require.Equal(t, clock.Now().Add(time.Minute), d.Reset)
	}
}

func TestCheck_RejectsOverLimit(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(t, Config{Scope: "general", Window: time.Minute, MaxRequests: 3}, clock)

	for i := 0; i < 3; i++ {
		require.True(t, l.Check("caller").Allowed)
	}

	d := l.Check("caller")
	require.False(t, d.Allowed)
	require.Equal(t, 0, d.Remaining)
	require.Greater(t, d.RetryAfter, time.Duration(0))

	// Rejections must not increment the count: the next allowed window is
	// unaffected by how many times the caller hammered the closed gate.
	for i := 0; i < 10; i++ {
		require.False(t, l.Check("caller").Allowed)
	}
}

func TestCheck_WindowResets(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(t, Config{Scope: "general", Window: time.Minute, MaxRequests: 2}, clock)

	require.True(t, l.Check("caller").Allowed)
	require.True(t, l.Check("caller").Allowed)
	require.False(t, l.Check("caller").Allowed)

	clock.Advance(time.Minute + time.Second)

	d := l.Check("caller")
	require.True(t, d.Allowed)
	require.Equal(t, 1, d.Remaining, "fresh window should start at count=1")
	require.Equal(t, clock.Now().Add(time.Minute), d.Reset)
}

func TestCheck_KeysAreIndependent(t *testing.T) {
	clock := newFakeClock()
	auth := newTestLimiter(t, Config{Scope: "auth", Window: 15 * time.Minute, MaxRequests: 10}, clock)

	for i := 0; i < 10; i++ {
		require.True(t, auth.Check("user-a").Allowed)
	}
	require.False(t, auth.Check("user-a").Allowed)

	// User B's first request in the same window is untouched by A's cap.
	d := auth.Check("user-b")
	require.True(t, d.Allowed)
	require.Equal(t, 9, d.Remaining)
}

func TestCheck_ScopesAreIndependent(t *testing.T) {
	clock := newFakeClock()
	a := newTestLimiter(t, Config{Scope: "auth", Window: time.Minute, MaxRequests: 1}, clock)
	b := newTestLimiter(t, Config{Scope: "profile", Window: time.Minute, MaxRequests: 1}, clock)

	require.True(t, a.Check("caller").Allowed)
	require.False(t, a.Check("caller").Allowed)
	require.True(t, b.Check("caller").Allowed)
}

func TestCheck_ContactScenario(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(t, Config{Scope: "contact", Window: time.Hour, MaxRequests: 5}, clock)

	for i := 0; i < 5; i++ {
		require.True(t, l.Check("203.0.113.9").Allowed)
	}

	d := l.Check("203.0.113.9")
	require.False(t, d.Allowed)
	require.LessOrEqual(t, d.RetryAfter, time.Hour)

	clock.Advance(time.Hour + time.Millisecond)

	d = l.Check("203.0.113.9")
	require.True(t, d.Allowed)
	require.Equal(t, 4, d.Remaining)
}

func TestCheck_DeterministicUnderFixedClock(t *testing.T) {
	run := func() []Decision {
		clock := newFakeClock()
		l := newTestLimiter(t, Config{Scope: "general", Window: time.Minute, MaxRequests: 3}, clock)
		var out []Decision
		for i := 0; i < 5; i++ {
			out = append(out, l.Check("caller"))
			clock.Advance(time.Second)
		}
		return out
	}
	require.Equal(t, run(), run())
}

func TestSweep_RemovesOnlyExpiredEntries(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(t, Config{Scope: "general", Window: time.Minute, MaxRequests: 5}, clock)

	l.Check("stale")
	clock.Advance(2 * time.Minute)
	l.Check("fresh")
	require.Equal(t, 2, l.Len())

	l.sweep()
	require.Equal(t, 1, l.Len())

	// The surviving entry still limits normally.
	d := l.Check("fresh")
	require.True(t, d.Allowed)
	require.Equal(t, 3, d.Remaining)
}

func TestDestroy_ClearsEntriesAndIsIdempotent(t *testing.T) {
	l, err := New(Config{Scope: "general", Window: time.Minute, MaxRequests: 5})
	require.NoError(t, err)

	l.Check("caller")
	require.Equal(t, 1, l.Len())

	l.Destroy()
	require.Equal(t, 0, l.Len())
	l.Destroy()
}

func TestCheck_ConcurrentCallersNeverExceedLimit(t *testing.T) {
	l, err := New(Config{Scope: "general", Window: time.Minute, MaxRequests: 50})
	require.NoError(t, err)
	defer l.Destroy()

	var wg sync.WaitGroup
	allowed := make(chan bool, 200)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed <- l.Check("shared").Allowed
		}()
	}
	wg.Wait()
	close(allowed)

	n := 0
	for ok := range allowed {
		if ok {
			n++
		}
	}
	require.Equal(t, 50, n)
}

func TestCeilSeconds(t *testing.T) {
	require.Equal(t, time.Second, ceilSeconds(0))
	require.Equal(t, time.Second, ceilSeconds(10*time.Millisecond))
	require.Equal(t, time.Second, ceilSeconds(time.Second))
	require.Equal(t, 2*time.Second, ceilSeconds(time.Second+time.Nanosecond))
}
