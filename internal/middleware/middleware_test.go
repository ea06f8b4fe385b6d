package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	assert.True(t, rl.Allow("10.0.0.1", now))
	assert.True(t, rl.Allow("10.0.0.1", now))
	assert.False(t, rl.Allow("10.0.0.1", now))
	assert.True(t, rl.Allow("10.0.0.2", now))

	assert.True(t, rl.Allow("10.0.0.1", now.Add(time.Second)))
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	rl.Allow("10.0.0.1", now)
	rl.Allow("10.0.0.2", now.Add(11*time.Minute))

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Len(t, rl.visitors, 1)
	assert.Contains(t, rl.visitors, "10.0.0.2")
}

func TestMiddleware_Chain(t *testing.T) {
	log := newTestLogger(t)
	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(log), Recovery(log))
	r.GET("/limited", NewRateLimiter(0.001, 1).Limit(), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"id": c.GetString("request_id")})
	})
	r.GET("/panic", func(*ginext.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
