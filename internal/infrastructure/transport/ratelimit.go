package transport

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"mockapi/internal/infrastructure/metrics"
)

// FixedWindowLimiter caps requests per client address within a fixed time
// window. A client's counter resets when its window expires; windows do not
// slide.
type FixedWindowLimiter struct {
	window time.Duration
	max    int

	mu      sync.Mutex
	clients map[string]*clientWindow
}

type clientWindow struct {
	start time.Time
	count int
}

func NewFixedWindowLimiter(window time.Duration, max int) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		window:  window,
		max:     max,
		clients: make(map[string]*clientWindow),
	}
}

// Allow records one request for addr at time now and reports whether it is
// within the cap.
func (l *FixedWindowLimiter) Allow(addr string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cw, ok := l.clients[addr]
	if !ok || now.Sub(cw.start) >= l.window {
		l.clients[addr] = &clientWindow{start: now, count: 1}
		return l.max >= 1
	}
	cw.count++
	return cw.count <= l.max
}

// Limit wraps next, rejecting over-cap clients with 429.
func (l *FixedWindowLimiter) Limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientAddr(r), time.Now()) {
			metrics.IncRateLimited()
			writeJSON(w, http.StatusTooManyRequests, map[string]string{
				"error": "Too many requests, please try again later.",
			})
			return
		}
		next(w, r)
	}
}

// Janitor prunes expired client windows until ctx is done. Run it in its own
// goroutine; without it the client map grows with every distinct address.
func (l *FixedWindowLimiter) Janitor(ctx context.Context) {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			l.mu.Lock()
			for addr, cw := range l.clients {
				if now.Sub(cw.start) >= l.window {
					delete(l.clients, addr)
				}
			}
			l.mu.Unlock()
		}
	}
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
