package blogfront

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func testLimiter(max int, window time.Duration) (*LoginLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	return newLoginLimiter(max, window, clock.now), clock
}

func TestLoginLimiterBlocksAfterMax(t *testing.T) {
	l, _ := testLimiter(2, time.Minute)
	ip := "203.0.113.10"

	for i := 1; i <= 2; i++ {
		if !l.Check(ip) {
			t.Fatalf("attempt %d should be allowed", i)
		}
		l.Record(ip)
	}
	if l.Check(ip) {
		t.Fatal("third attempt should be blocked")
	}
}

func TestLoginLimiterResetsAfterWindow(t *testing.T) {
	l, clock := testLimiter(1, time.Minute)
	ip := "203.0.113.20"

	l.Record(ip)
	if l.Check(ip) {
		t.Fatal("expected the IP to be blocked")
	}
	clock.advance(59 * time.Second)
	if l.Check(ip) {
		t.Fatal("expected the IP to stay blocked inside the window")
	}
	clock.advance(2 * time.Second)
	if !l.Check(ip) {
		t.Fatal("expected the IP to be allowed after the window")
	}
}

func TestLoginLimiterIsPerIP(t *testing.T) {
	l, _ := testLimiter(1, time.Minute)

	l.Record("203.0.113.30")
	if !l.Check("203.0.113.31") {
		t.Fatal("other IPs should not be affected")
	}
	if l.Check("203.0.113.30") {
		t.Fatal("first IP should be blocked")
	}
}

func TestLoginLimiterCheckDoesNotRecord(t *testing.T) {
	l, _ := testLimiter(1, time.Minute)
	for i := 0; i < 3; i++ {
		if !l.Check("203.0.113.40") {
			t.Fatal("Check alone must never block")
		}
	}
}

func TestLoginLimiterSweepForgetsExpired(t *testing.T) {
	l, clock := testLimiter(3, time.Minute)
	l.Record("203.0.113.50")
	clock.advance(2 * time.Minute)
	l.sweep()
	if n := len(l.failures); n != 0 {
		t.Errorf("expected no tracked IPs after sweep, got %d", n)
	}
}

func TestLoginLimiterStopIsIdempotent(t *testing.T) {
	l := NewLoginLimiter(1, time.Millisecond)
	l.Stop()
	l.Stop()
}
