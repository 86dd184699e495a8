package ratelimit

import (
	"testing"
	"time"
)

// fakeClock lets tests move time forward without sleeping.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(maxRequests int, window time.Duration) (*Limiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	l := New(maxRequests, window)
	l.now = clock.now
	return l, clock
}

func TestEleventhRequestBlocked(t *testing.T) {
	l, _ := newTestLimiter(10, 60*time.Second)

	for i := 0; i < 10; i++ {
		if !l.Allowed("analyze-request") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	if l.Allowed("analyze-request") {
		t.Fatal("11th request inside the window should be blocked")
	}
}

func TestWindowExpiry(t *testing.T) {
	l, clock := newTestLimiter(10, 60*time.Second)

	for i := 0; i < 10; i++ {
		l.Allowed("k")
	}
	if l.Allowed("k") {
		t.Fatal("expected limit to be hit")
	}

	clock.advance(61 * time.Second)

	if !l.Allowed("k") {
		t.Fatal("request after window elapsed should be allowed")
	}
}

func TestRemainingNeverNegative(t *testing.T) {
	l, _ := newTestLimiter(3, time.Minute)

	if got := l.Remaining("k"); got != 3 {
		t.Fatalf("fresh key remaining = %d, want 3", got)
	}

	for i := 0; i < 10; i++ {
		l.Allowed("k")
	}

	if got := l.Remaining("k"); got != 0 {
		t.Fatalf("exhausted key remaining = %d, want 0", got)
	}
}

func TestKeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(1, time.Minute)

	if !l.Allowed("a") {
		t.Fatal("first request for a should pass")
	}
	if l.Allowed("a") {
		t.Fatal("second request for a should be blocked")
	}
	if !l.Allowed("b") {
		t.Fatal("b must not be affected by a's history")
	}
}

func TestClear(t *testing.T) {
	l, _ := newTestLimiter(1, time.Minute)

	l.Allowed("k")
	if l.Allowed("k") {
		t.Fatal("expected limit to be hit")
	}

	l.Clear("k")

	if !l.Allowed("k") {
		t.Fatal("cleared key should be allowed again")
	}
}

func TestZeroConfigUsesDefaults(t *testing.T) {
	l := New(0, 0)
	if l.maxRequests != DefaultMaxRequests || l.window != DefaultWindow {
		t.Fatalf("got maxRequests=%d window=%v", l.maxRequests, l.window)
	}
}
