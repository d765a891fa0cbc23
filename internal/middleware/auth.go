package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

// TokenVerifier checks a session token. Implemented by service.AuthService.
type TokenVerifier interface {
	Verify(token string) error
}

// NewAuth returns a middleware that requires a valid Bearer token on every
// request it wraps.
func NewAuth(verifier TokenVerifier) fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Missing session token")
		}
		if err := verifier.Verify(token); err != nil {
			return ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired session token")
		}
		return c.Next()
	}
}
