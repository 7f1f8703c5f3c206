package middleware

import "github.com/gofiber/fiber/v2"

// RequireRole aborts with 403 unless the authenticated role is one of the
// allowed set. AuthRequired must run first.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || !allowed[role] {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
		}
		return c.Next()
	}
}
