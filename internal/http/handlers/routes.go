package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"arihant/internal/config"
	applog "arihant/internal/log"
)

// NewApp builds the fiber app with middleware and every route registered.
func NewApp(cfg config.Config, d *Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ErrorHandler: ErrorHandler,
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	app.Use(helmet.New(helmet.Config{CrossOriginResourcePolicy: "cross-origin"}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, " + AdminKeyHeader,
	}))
	if cfg.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit,
			Expiration: time.Minute,
			LimitReached: func(c *fiber.Ctx) error {
				applog.Security(c, "rate.hit", nil)
				return detail(c, fiber.StatusTooManyRequests, "rate limit exceeded, retry soon")
			},
		}))
	}

	// ---------- Health ----------
	app.Get("/", d.HealthHandler.Root)
	app.Get("/test", d.HealthHandler.Test)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	// ---------- API ----------
	admin := RequireAdmin(d.Gate)
	api := app.Group("/api")

	api.Get("/products", d.ProductHandler.List)
	api.Post("/products", admin, d.ProductHandler.Create)
	api.Get("/products/:id", d.ProductHandler.Get)
	api.Put("/products/:id", admin, d.ProductHandler.Update)
	api.Delete("/products/:id", admin, d.ProductHandler.Delete)
	api.Get("/products/:id/availability", d.InventoryHandler.Check)

	api.Post("/orders", d.OrderHandler.Place)
	api.Get("/orders", admin, d.AdminHandler.ListOrders)
	api.Patch("/orders/:id/status", admin, d.AdminHandler.UpdateOrderStatus)

	return app
}
