package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "arihant/internal/log"
	"arihant/internal/services"
)

const AdminKeyHeader = "X-Admin-Key"

// RequireAdmin rejects requests whose admin key header does not pass gate.
// An open gate lets everything through.
func RequireAdmin(gate *services.AdminGate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get(AdminKeyHeader)
		if err := gate.Check(key); err != nil {
			applog.Security(c, "access.denied.admin", map[string]any{"key_present": key != ""})
			return detail(c, fiber.StatusUnauthorized, "Invalid admin key")
		}
		return c.Next()
	}
}
