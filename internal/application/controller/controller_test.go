package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"ecoscope/internal/infra/security"
)

var testIssuer = security.NewTokenIssuer("controller-secret", time.Hour)

type testAuthenticator struct{}

func (testAuthenticator) Authenticate(token string) (*security.Claims, error) {
	return testIssuer.Parse(token)
}

func bearer(t *testing.T, userID int64, role string) string {
	t.Helper()
	token, err := testIssuer.Issue(userID, "someone@ecoscope.id", role)
	require.NoError(t, err)
	return token
}

// newTestAPI returns an echo instance and the /api group controllers attach to.
func newTestAPI() (*echo.Echo, *echo.Group) {
	e := echo.New()
	return e, e.Group("/api")
}

func do(e *echo.Echo, method, target, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
