package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/soumya9832/notes-backend/internal/infrastructure"
)

// UsernameContextKey holds the verified caller username on the request.
const UsernameContextKey = "username"

// JWTAuth verifies the bearer token and stores the caller username in
// the echo context. Everything behind it can trust that identity.
func JWTAuth(jwtService *infrastructure.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			username, err := jwtService.ValidateToken(strings.TrimPrefix(header, prefix))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(UsernameContextKey, username)
			return next(c)
		}
	}
}
