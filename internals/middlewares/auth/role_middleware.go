package auth

import (
	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/constants"
)

// OnlyRoles membatasi akses berdasarkan role di Locals (diisi AuthMiddleware).
func OnlyRoles(message string, allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, message)
	}
}

func AdminOnly(feature string) fiber.Handler {
	return OnlyRoles(constants.RoleErrorAdmin(feature), constants.RoleAdmin)
}

func AdvisorOrAdmin(feature string) fiber.Handler {
	return OnlyRoles(constants.RoleErrorAdvisor(feature), constants.RoleAdvisor, constants.RoleAdmin)
}
