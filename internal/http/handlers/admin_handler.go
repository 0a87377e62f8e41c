package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "arihant/internal/log"
	"arihant/internal/services"
	"arihant/internal/validate"
)

type AdminHandler struct {
	Order *services.OrderService
}

// GET /api/orders?limit=
func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	limit, ok := validate.Limit(c.Query("limit"), services.DefaultListLimit)
	if !ok {
		return detail(c, fiber.StatusUnprocessableEntity, "limit: must be a non-negative integer")
	}
	ords, err := h.Order.List(c.UserContext(), limit)
	if err != nil {
		return fail(c, "Order", err)
	}
	return c.JSON(ords)
}

type statusPayload struct {
	Status string `json:"status"`
}

// PATCH /api/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var body statusPayload
	if err := c.BodyParser(&body); err != nil {
		return detail(c, fiber.StatusUnprocessableEntity, "body: invalid JSON")
	}
	status, ok := validate.Status(body.Status)
	if !ok {
		return detail(c, fiber.StatusUnprocessableEntity, "status: must be one of pending, processing, shipped, delivered, cancelled")
	}
	if err := h.Order.UpdateStatus(c.UserContext(), id, status); err != nil {
		applog.Error(c, "admin.orders.update.fail", err, map[string]any{"order_id": id})
		return fail(c, "Order", err)
	}
	applog.Audit(c, "admin.orders.update", map[string]any{"order_id": id, "status": status})
	return c.JSON(fiber.Map{"id": id, "status": status})
}
