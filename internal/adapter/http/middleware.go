package http

import (
	"strings"

	"activevacancy/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin guards the back-office routes with a bearer token issued by
// the login endpoint.
func RequireAdmin(tokens *auth.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization header"})
		}
		claims, err := tokens.Validate(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}
		c.Locals("admin_user", claims.Username)
		return c.Next()
	}
}
