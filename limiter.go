package blogfront

import (
	"sync"
	"time"
)

// LoginLimiter counts failed admin logins per IP over a sliding window.
type LoginLimiter struct {
	max    int
	window time.Duration
	now    func() time.Time

	mu       sync.Mutex
	failures map[string][]time.Time

	stopOnce sync.Once
	done     chan struct{}
}

// NewLoginLimiter allows max failures per window and IP. It runs a
// background sweep until Stop is called.
func NewLoginLimiter(max int, window time.Duration) *LoginLimiter {
	l := newLoginLimiter(max, window, time.Now)
	go l.sweepEvery(window)
	return l
}

func newLoginLimiter(max int, window time.Duration, now func() time.Time) *LoginLimiter {
	return &LoginLimiter{
		max:      max,
		window:   window,
		now:      now,
		failures: make(map[string][]time.Time),
		done:     make(chan struct{}),
	}
}

// Stop ends the background sweep. Calling it again is a no-op.
func (l *LoginLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.done) })
}

func (l *LoginLimiter) sweepEvery(d time.Duration) {
	t := time.NewTicker(d)
	defer t.Stop()
	for {
		select {
		case <-l.done:
			return
		case <-t.C:
			l.sweep()
		}
	}
}

// sweep forgets IPs whose failures have all expired.
func (l *LoginLimiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip := range l.failures {
		l.recent(ip)
	}
}

// recent returns the failures of ip still inside the window; callers hold mu.
func (l *LoginLimiter) recent(ip string) []time.Time {
	cutoff := l.now().Add(-l.window)
	times := l.failures[ip]
	i := 0
	for i < len(times) && !times[i].After(cutoff) {
		i++
	}
	if i == len(times) {
		delete(l.failures, ip)
		return nil
	}
	l.failures[ip] = times[i:]
	return times[i:]
}

// Check reports whether ip may try again. It records nothing.
func (l *LoginLimiter) Check(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.recent(ip)) < l.max
}

// Record registers a failed login from ip.
func (l *LoginLimiter) Record(ip string) {
	l.mu.Lock()
	l.failures[ip] = append(l.failures[ip], l.now())
	l.mu.Unlock()
}
