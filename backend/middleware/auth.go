package middleware

import (
	"errors"

	"dishashakti/backend/config"
	"dishashakti/backend/models"
	"dishashakti/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// Locals keys populated by AuthMiddleware for downstream handlers.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthMiddleware verifies the bearer token and attaches the decoded user
// ID and role to the request. A missing token short-circuits with 401, a
// token that fails verification with 403.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := utils.ExtractTokenClaims(c, cfg)
		if err != nil {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) && fiberErr.Code == fiber.StatusUnauthorized {
				return utils.Unauthorized(c, "Unauthorized")
			}
			return utils.Forbidden(c, "Unauthorized")
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// AdminMiddleware requires the admin role claim. It must run after
// AuthMiddleware.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalRole).(string)
		if role != models.RoleAdmin {
			return utils.Forbidden(c, "Unauthorized")
		}
		return c.Next()
	}
}

// UserIDFromCtx returns the user ID attached by AuthMiddleware.
func UserIDFromCtx(c *fiber.Ctx) uint {
	userID, _ := c.Locals(LocalUserID).(uint)
	return userID
}
