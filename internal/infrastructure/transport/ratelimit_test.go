package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedWindowLimiterCapsWithinWindow(t *testing.T) {
	l := NewFixedWindowLimiter(time.Minute, 2)
	now := time.Now()

	assert.True(t, l.Allow("10.0.0.1", now))
	assert.True(t, l.Allow("10.0.0.1", now.Add(time.Second)))
	assert.False(t, l.Allow("10.0.0.1", now.Add(2*time.Second)))
}

func TestFixedWindowLimiterResetsAfterWindow(t *testing.T) {
	l := NewFixedWindowLimiter(time.Minute, 1)
	now := time.Now()

	assert.True(t, l.Allow("10.0.0.1", now))
	assert.False(t, l.Allow("10.0.0.1", now.Add(30*time.Second)))
	assert.True(t, l.Allow("10.0.0.1", now.Add(time.Minute)))
}

func TestFixedWindowLimiterTracksClientsIndependently(t *testing.T) {
	l := NewFixedWindowLimiter(time.Minute, 1)
	now := time.Now()

	assert.True(t, l.Allow("10.0.0.1", now))
	assert.True(t, l.Allow("10.0.0.2", now))
	assert.False(t, l.Allow("10.0.0.1", now))
}

func TestLimitMiddlewareRejectsWith429(t *testing.T) {
	l := NewFixedWindowLimiter(time.Minute, 1)
	wrapped := l.Limit(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/generate-mock-api", nil)
		req.RemoteAddr = "10.0.0.1:40000"
		rec := httptest.NewRecorder()
		wrapped(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, do().Code)

	rec := do()
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Too many requests")
}

func TestJanitorPrunesExpiredWindows(t *testing.T) {
	l := NewFixedWindowLimiter(20*time.Millisecond, 5)
	l.Allow("10.0.0.1", time.Now())
	l.Allow("10.0.0.2", time.Now())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.Janitor(ctx)

	require.Eventually(t, func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		return len(l.clients) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestClientAddrStripsPort(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:61234"
	assert.Equal(t, "192.168.1.5", clientAddr(req))

	req.RemoteAddr = "weird-no-port"
	assert.Equal(t, "weird-no-port", clientAddr(req))
}
