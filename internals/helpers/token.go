// file: internals/helpers/token.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
)

var (
	ErrNoUserContext = errors.New("user context tidak ditemukan di token")
)

// GetUserIDFromToken mengambil user_id yang disimpan AuthMiddleware di Locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, ErrNoUserContext
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrNoUserContext
	}
	return id, nil
}

func GetRoleFromToken(c *fiber.Ctx) string {
	if role, ok := c.Locals("role").(string); ok {
		return role
	}
	return ""
}

func IsAdmin(c *fiber.Ctx) bool {
	return GetRoleFromToken(c) == constants.RoleAdmin
}

// GetAdvisorIDFromToken: untuk role advisor, user_id == advisor_id.
func GetAdvisorIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	if GetRoleFromToken(c) != constants.RoleAdvisor {
		return uuid.Nil, ErrNoUserContext
	}
	return GetUserIDFromToken(c)
}
