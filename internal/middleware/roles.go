package middleware

import (
	"github.com/condomanager/condomanager-api/internal/dto"
	"github.com/condomanager/condomanager-api/internal/models"
	"github.com/gofiber/fiber/v2"
)

// RoleRequired rejects callers whose role is outside the allowed set.
// Privileged roles (owner, admin) always pass. Runs after LoadUser.
func RoleRequired(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := CurrentUser(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		if !user.Role.Allowed(roles...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Access restricted for this role",
			})
		}
		return c.Next()
	}
}
