package middleware

import (
	"log"

	"travel-webapp/service"

	"github.com/gofiber/fiber/v2"
)

// Locals populates the per-request view context: pending flash messages and,
// when the session carries a user id, the user document itself. Runs before
// every handler so views can always reference user/success/error.
func Locals(auth *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		success, errMsg := popFlash(c)
		if success != "" {
			c.Locals("success", success)
		}
		if errMsg != "" {
			c.Locals("error", errMsg)
		}

		if id, ok := CurrentUserId(c); ok {
			user, err := auth.GetUser(c.Context(), id)
			if err != nil {
				log.Printf("error loading user for template locals: %v", err)
			} else {
				c.Locals("user", user)
			}
		}
		return c.Next()
	}
}
