package handlers

import (
	"github.com/gofiber/fiber/v2"

	"arihant/internal/repos"
)

const appName = "Arihant Automobiles API"

type HealthHandler struct {
	Store          repos.Store
	DatabaseURLSet bool
}

// GET /
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"name": appName, "status": "ok"})
}

// GET /test reports store connectivity. It always answers 200.
func (h *HealthHandler) Test(c *fiber.Ctx) error {
	resp := fiber.Map{
		"backend":       "running",
		"database":      "not available",
		"database_url":  "not set",
		"database_name": "not set",
		"collections":   []string{},
	}
	if h.DatabaseURLSet {
		resp["database_url"] = "set"
	}
	if h.Store == nil {
		return c.JSON(resp)
	}

	names, err := h.Store.Collections(c.UserContext())
	if err != nil {
		msg := err.Error()
		if len(msg) > 80 {
			msg = msg[:80]
		}
		resp["database"] = "error: " + msg
		return c.JSON(resp)
	}
	if names == nil {
		names = []string{}
	}
	resp["database"] = "connected"
	resp["database_name"] = h.Store.Name()
	resp["collections"] = names
	return c.JSON(resp)
}
