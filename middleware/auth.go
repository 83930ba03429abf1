package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hrushi52/LoonC-R1/models"
	"github.com/hrushi52/LoonC-R1/utils"
)

// Locals keys populated by Protected for downstream handlers.
const (
	LocalsAdminID    = "admin_id"
	LocalsAdminEmail = "admin_email"
)

// Protected gates a route behind a bearer token. No repository is ever
// reached without a verified token; the secret is fixed at startup.
func Protected(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("No token provided."))
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("No token provided."))
		}

		claims, err := utils.ParseToken(parts[1], secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid or expired token."))
		}

		adminID, err := claims.AdminID()
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid or expired token."))
		}

		c.Locals(LocalsAdminID, adminID)
		c.Locals(LocalsAdminEmail, claims.Email)

		return c.Next()
	}
}
