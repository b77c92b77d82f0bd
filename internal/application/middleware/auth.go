package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/infra/security"
	"ecoscope/pkg/msg"
)

const claimsKey = "auth.claims"

// TokenAuthenticator validates a bearer token.
type TokenAuthenticator interface {
	Authenticate(token string) (*security.Claims, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// claims on the context for ClaimsFrom.
func RequireAuth(authenticator TokenAuthenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || strings.TrimSpace(token) == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": msg.GetMessage("auth.missing-token")})
			}

			claims, err := authenticator.Authenticate(strings.TrimSpace(token))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": msg.GetMessage("auth.invalid-token")})
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok || claims.Role != entity.RoleAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": msg.GetMessage("auth.forbidden")})
			}
			return next(c)
		}
	}
}

// AdminOnly chains RequireAuth and RequireAdmin.
func AdminOnly(authenticator TokenAuthenticator) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{RequireAuth(authenticator), RequireAdmin()}
}

func ClaimsFrom(c echo.Context) (*security.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*security.Claims)
	return claims, ok && claims != nil
}
