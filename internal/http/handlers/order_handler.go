package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"arihant/internal/domain"
	applog "arihant/internal/log"
	"arihant/internal/services"
	"arihant/internal/validate"
)

type OrderHandler struct {
	Order *services.OrderService
}

// POST /api/orders
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var in domain.OrderInput
	if err := c.BodyParser(&in); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "body"})
		return detail(c, fiber.StatusUnprocessableEntity, "body: invalid JSON")
	}
	o, err := validate.Order(in)
	if err != nil {
		applog.Security(c, "validation.fail", map[string]any{"error": err.Error()})
		return fail(c, "Order", err)
	}

	orderID, err := h.Order.Place(c.UserContext(), o)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			// business rule errors (unknown product, insufficient stock) surface as 400
			applog.Security(c, "order.place.fail", map[string]any{"error": verr.Reason})
		}
		return fail(c, "Order", err)
	}
	// Totals are caller-supplied and stored unverified.
	applog.Audit(c, "order.place", map[string]any{
		"order_id": orderID,
		"items":    len(o.Items),
		"subtotal": o.Subtotal,
		"shipping": o.Shipping,
		"total":    o.Total,
	})
	return c.JSON(orderID)
}
