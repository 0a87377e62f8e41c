package handlers

import (
	"github.com/gofiber/fiber/v2"

	"arihant/internal/domain"
	"arihant/internal/log"
	"arihant/internal/services"
	"arihant/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// GET /api/products?q=&category=&featured=&limit=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	q := domain.ProductQuery{
		Text:     c.Query("q"),
		Category: c.Query("category"),
	}
	if raw := c.Query("featured"); raw != "" {
		featured, ok := validate.Bool(raw)
		if !ok {
			log.Security(c, "validation.fail", map[string]any{"field": "featured"})
			return detail(c, fiber.StatusUnprocessableEntity, "featured: value could not be parsed to a boolean")
		}
		q.Featured = &featured
	}
	limit, ok := validate.Limit(c.Query("limit"), services.DefaultListLimit)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "limit"})
		return detail(c, fiber.StatusUnprocessableEntity, "limit: must be a non-negative integer")
	}
	q.Limit = limit

	products, err := h.Catalog.List(c.UserContext(), q)
	if err != nil {
		return fail(c, "Product", err)
	}
	return c.JSON(products)
}

// GET /api/products/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	p, err := h.Catalog.GetProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, "Product", err)
	}
	return c.JSON(p)
}

func parseProduct(c *fiber.Ctx) (domain.Product, error) {
	var in domain.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return domain.Product{}, &validate.FieldError{Field: "body", Msg: "invalid JSON"}
	}
	return validate.Product(in)
}

// POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	p, err := parseProduct(c)
	if err != nil {
		log.Security(c, "validation.fail", map[string]any{"error": err.Error()})
		return fail(c, "Product", err)
	}
	id, err := h.Catalog.CreateProduct(c.UserContext(), p)
	if err != nil {
		return fail(c, "Product", err)
	}
	log.Audit(c, "product.create", map[string]any{"product_id": id, "title": p.Title})
	return c.JSON(id)
}

// PUT /api/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	p, err := parseProduct(c)
	if err != nil {
		log.Security(c, "validation.fail", map[string]any{"error": err.Error()})
		return fail(c, "Product", err)
	}
	out, err := h.Catalog.UpdateProduct(c.UserContext(), c.Params("id"), p)
	if err != nil {
		return fail(c, "Product", err)
	}
	log.Audit(c, "product.update", map[string]any{"product_id": out.ID.Hex(), "stock": out.Stock})
	return c.JSON(out)
}

// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Catalog.DeleteProduct(c.UserContext(), id); err != nil {
		return fail(c, "Product", err)
	}
	log.Audit(c, "product.delete", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{"deleted": true})
}
