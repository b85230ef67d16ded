package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/un1ck-andy/courses-signup/internal/auth"
	"github.com/un1ck-andy/courses-signup/internal/domain"
)

// JWTAuth guards a route group behind bearer-token authentication.
// On success the student identity is stored in the echo context under
// "student_id" and "email".
func JWTAuth(authority *auth.Authority) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing credentials"})
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": domain.ErrInvalidToken.Error()})
			}

			claims, err := authority.Verify(token, auth.TokenTypeAccess)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
			}

			c.Set("student_id", claims.StudentID)
			c.Set("email", claims.Email)

			return next(c)
		}
	}
}
