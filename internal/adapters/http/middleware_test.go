package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waytopg/accommodation-service/internal/domain"
)

func TestExtractTokenPriority(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/admin/users?token=query-token", nil)
	r.Header.Set("Authorization", "Bearer header-token")
	r.AddCookie(&http.Cookie{Name: "token", Value: "cookie-token"})
	assert.Equal(t, "header-token", extractToken(r))

	r = httptest.NewRequest(http.MethodGet, "/api/admin/users?token=query-token", nil)
	r.AddCookie(&http.Cookie{Name: "token", Value: "cookie-token"})
	assert.Equal(t, "cookie-token", extractToken(r))

	r = httptest.NewRequest(http.MethodGet, "/api/admin/users?token=query-token", nil)
	assert.Equal(t, "query-token", extractToken(r))

	r = httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	r.Header.Set("Authorization", "Basic abc123")
	assert.Equal(t, "", extractToken(r))
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	gate := requireRole(domain.RoleAdmin)(next)

	// No resolved identity: unauthorized, not forbidden.
	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/users", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	asRole := func(role domain.Role) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		ctx := context.WithValue(r.Context(), ctxKeyUser, domain.User{Role: role})
		return r.WithContext(ctx)
	}

	rec = httptest.NewRecorder()
	gate.ServeHTTP(rec, asRole(domain.RoleStudent))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Access denied. Insufficient permissions."}`, rec.Body.String())

	rec = httptest.NewRecorder()
	gate.ServeHTTP(rec, asRole(domain.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMapDomainError(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrConflict, http.StatusBadRequest},
		{domain.ErrNoToken, http.StatusUnauthorized},
		{domain.ErrTokenExpired, http.StatusUnauthorized},
		{domain.ErrInvalidToken, http.StatusUnauthorized},
		{domain.ErrTokenRevoked, http.StatusUnauthorized},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrAccountLocked, http.StatusUnauthorized},
		{domain.ErrPendingApproval, http.StatusForbidden},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrRateLimited, http.StatusTooManyRequests},
		{context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		status, msg := mapDomainError(tc.err)
		assert.Equal(t, tc.wantStatus, status, "error %v", tc.err)
		require.NotEmpty(t, msg)
	}
}
