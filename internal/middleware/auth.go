package middleware

import (
	"net/http"
	"os"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
)

// RequireAuth returns a middleware that verifies Firebase ID tokens supplied
// as a bearer Authorization header
func RequireAuth(authClient *auth.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Check if Firebase is initialized
			if authClient == nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Authentication not configured")
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization header")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader || tokenString == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
			}

			decodedToken, err := authClient.VerifyIDToken(c.Request().Context(), tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			// Set user info in context for downstream handlers
			c.Set("userUID", decodedToken.UID)
			if email, ok := decodedToken.Claims["email"].(string); ok {
				c.Set("userEmail", email)
			}
			if name, ok := decodedToken.Claims["name"].(string); ok {
				c.Set("userName", name)
			}

			return next(c)
		}
	}
}

// RequireAdmin restricts a route group to emails listed in ADMIN_EMAILS
// (comma separated). Must run after RequireAuth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get("userEmail").(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
			}

			for _, admin := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
				if admin != "" && strings.EqualFold(strings.TrimSpace(admin), email) {
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
		}
	}
}
