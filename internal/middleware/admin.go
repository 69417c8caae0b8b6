package middleware

import (
	"github.com/gofiber/fiber/v2"

	"lokalpro/internal/repository"
)

// AdminRequired authorizes the authenticated user against the admin-grant
// relation. The lookup runs on every request; there is no session-scoped
// caching of the grant.
func AdminRequired(grants repository.AdminGrantRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("User not authenticated")
		}

		isAdmin, err := grants.IsAdmin(c.Context(), user.ID)
		if err != nil {
			return err
		}
		if !isAdmin {
			return Forbidden("Administrator access required")
		}

		return c.Next()
	}
}
