package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleeahmmed/UniworldHrm/internal/domain/auth"
)

func TestAuthMiddlewareSetsUser(t *testing.T) {
	secret := "test-secret"
	token, err := auth.GenerateToken(secret, auth.Principal{UserID: "u1", Email: "hr@example.com", RoleID: "r1", RoleName: auth.RoleHR}, time.Hour)
	require.NoError(t, err)

	var got auth.Principal
	handler := Auth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r.Context())
		require.True(t, ok, "expected user in context")
		got = user
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, auth.RoleHR, got.RoleName)
}

func TestAuthMiddlewareIgnoresMissingOrBadToken(t *testing.T) {
	handler := Auth("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := GetUser(r.Context())
		assert.False(t, ok, "did not expect user in context")
	}))

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer not-a-jwt"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}
}

type permStore map[string]bool

func (s permStore) HasPermission(_ context.Context, roleID, permission string) (bool, error) {
	return s[roleID+"|"+permission], nil
}

func TestRequire(t *testing.T) {
	store := permStore{"hr|hrm.view_employee": true}
	var seen auth.Principal
	h := Require(store, "hrm.view_employee", func(w http.ResponseWriter, r *http.Request, p auth.Principal) {
		seen = p
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	viewer := httptest.NewRequest(http.MethodGet, "/", nil)
	viewer = viewer.WithContext(WithUser(viewer.Context(), auth.Principal{UserID: "u2", RoleID: "viewer"}))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, viewer)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"forbidden"`)

	hr := httptest.NewRequest(http.MethodGet, "/", nil)
	hr = hr.WithContext(WithUser(hr.Context(), auth.Principal{UserID: "u1", RoleID: "hr"}))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, hr)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "u1", seen.UserID)
}

func TestRequestIDAndClientIP(t *testing.T) {
	var reqID, ip string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID = GetRequestID(r.Context())
		ip = ClientIP(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEmpty(t, reqID)
	assert.Equal(t, reqID, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "203.0.113.7", ip)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "abc-123", reqID)
}
