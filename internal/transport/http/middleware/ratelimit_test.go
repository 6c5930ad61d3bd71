package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleeahmmed/UniworldHrm/internal/domain/auth"
)

func limited(t *testing.T, perMinute int) http.Handler {
	t.Helper()
	store, closeFn, err := NewLimiterStore(context.Background(), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })
	return RateLimit(store, perMinute)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
}

func TestRateLimitUsesUserKeyBeforeIPFallback(t *testing.T) {
	h := limited(t, 1)
	user := WithUser(context.Background(), auth.Principal{UserID: "user-1"})

	first := httptest.NewRequest(http.MethodPost, "/api/v1/employees", nil).WithContext(user)
	first.RemoteAddr = "198.51.100.11:2222"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, first)
	require.Equal(t, http.StatusNoContent, rec.Code)

	second := httptest.NewRequest(http.MethodPost, "/api/v1/employees", nil).WithContext(user)
	second.RemoteAddr = "198.51.100.12:3333"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, second)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"rate_limited"`)
}

func TestRateLimitFallsBackToIP(t *testing.T) {
	h := limited(t, 1)

	first := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	first.RemoteAddr = "203.0.113.10:4444"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, first)
	require.Equal(t, http.StatusNoContent, rec.Code)

	other := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	other.RemoteAddr = "203.0.113.11:4444"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusNoContent, rec.Code, "a different address has its own budget")

	again := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	again.RemoteAddr = "203.0.113.10:5555"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, again)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimitDisabled(t *testing.T) {
	h := limited(t, 0)
	for range 5 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}
