package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/infra/security"
	"ecoscope/pkg/redis"
)

var issuer = security.NewTokenIssuer("middleware-secret", time.Hour)

type issuerAuthenticator struct{}

func (issuerAuthenticator) Authenticate(token string) (*security.Claims, error) {
	return issuer.Parse(token)
}

func token(t *testing.T, role string) string {
	t.Helper()
	tkn, err := issuer.Issue(5, "user@ecoscope.id", role)
	require.NoError(t, err)
	return tkn
}

func serve(e *echo.Echo, method, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newAdminEcho() *echo.Echo {
	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		claims, _ := ClaimsFrom(c)
		return c.String(http.StatusOK, claims.Subject)
	}, RequireAuth(issuerAuthenticator{}))
	e.DELETE("/admin", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, AdminOnly(issuerAuthenticator{})...)
	return e
}

func TestRequireAuth(t *testing.T) {
	e := newAdminEcho()

	assert.Equal(t, http.StatusUnauthorized, serve(e, http.MethodGet, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(e, http.MethodGet, "/me", "garbage").Code)

	rec := serve(e, http.MethodGet, "/me", token(t, entity.RoleModerator))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5", rec.Body.String())
}

func TestAdminOnly(t *testing.T) {
	e := newAdminEcho()

	assert.Equal(t, http.StatusUnauthorized, serve(e, http.MethodDelete, "/admin", "").Code)
	assert.Equal(t, http.StatusForbidden, serve(e, http.MethodDelete, "/admin", token(t, entity.RoleModerator)).Code)
	assert.Equal(t, http.StatusNoContent, serve(e, http.MethodDelete, "/admin", token(t, entity.RoleAdmin)).Code)
}

type stubLimiter struct {
	results []redis.RateLimitResult
	err     error
	keys    []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (redis.RateLimitResult, error) {
	s.keys = append(s.keys, key)
	if s.err != nil {
		return redis.RateLimitResult{}, s.err
	}
	r := s.results[0]
	s.results = s.results[1:]
	return r, nil
}

func newLimitedEcho(limiter Limiter) *echo.Echo {
	e := echo.New()
	e.POST("/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RateLimitByIP(limiter))
	return e
}

func TestRateLimitByIP(t *testing.T) {
	limiter := &stubLimiter{results: []redis.RateLimitResult{
		{Allowed: true, Remaining: 0},
		{Allowed: false, RetryAfter: 42 * time.Second},
	}}
	e := newLimitedEcho(limiter)

	first := serve(e, http.MethodPost, "/login", "")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "0", first.Header().Get("X-RateLimit-Remaining"))

	second := serve(e, http.MethodPost, "/login", "")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "42", second.Header().Get("Retry-After"))
	assert.Contains(t, second.Body.String(), "42")

	assert.Equal(t, []string{"192.0.2.1", "192.0.2.1"}, limiter.keys)
}

func TestRateLimitByIP_FailsOpen(t *testing.T) {
	e := newLimitedEcho(&stubLimiter{err: errors.New("redis down")})
	assert.Equal(t, http.StatusOK, serve(e, http.MethodPost, "/login", "").Code)

	e = newLimitedEcho(nil)
	assert.Equal(t, http.StatusOK, serve(e, http.MethodPost, "/login", "").Code)
}

func TestSetupCORS(t *testing.T) {
	e := echo.New()
	SetupCORS(e, "http://localhost:5173, https://ecoscope.id")
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderOrigin, "https://ecoscope.id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "https://ecoscope.id", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
