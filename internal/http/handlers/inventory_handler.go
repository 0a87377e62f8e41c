package handlers

import (
	"github.com/gofiber/fiber/v2"

	"arihant/internal/services"
)

type InventoryHandler struct {
	Inv *services.InventoryService
}

// GET /api/products/:id/availability
func (h *InventoryHandler) Check(c *fiber.Ctx) error {
	avail, err := h.Inv.CheckAvailability(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, "Product", err)
	}
	return c.JSON(avail)
}
