package tui

import (
	"net"
	"sync"

	"golang.org/x/time/rate"
)

// maxTrackedHosts bounds the limiter table; it is dropped and rebuilt when full.
const maxTrackedHosts = 4096

// sessionLimiter throttles new SSH sessions per remote host.
// A nil limiter allows everything.
type sessionLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// newSessionLimiter allows perMinute sessions per host with the given burst.
// Returns nil when perMinute is not positive.
func newSessionLimiter(perMinute float64, burst int) *sessionLimiter {
	if perMinute <= 0 {
		return nil
	}
	return &sessionLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(perMinute / 60),
		burst:    max(burst, 1),
	}
}

// Allow reports whether a session from addr may start now.
func (l *sessionLimiter) Allow(addr net.Addr) bool {
	if l == nil {
		return true
	}
	host := hostOf(addr)

	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters[host]
	if !ok {
		if len(l.limiters) >= maxTrackedHosts {
			clear(l.limiters)
		}
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[host] = lim
	}
	return lim.Allow()
}

// hostOf strips the port from an address.
func hostOf(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}
