package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"arihant/internal/domain"
	applog "arihant/internal/log"
	"arihant/internal/validate"
)

func detail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"detail": msg})
}

// fail maps service errors onto HTTP responses. what names the resource
// ("Product", "Order") for not-found and bad-id messages.
func fail(c *fiber.Ctx, what string, err error) error {
	var (
		verr *domain.ValidationError
		ferr *validate.FieldError
	)
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		return detail(c, fiber.StatusInternalServerError, "Database not configured")
	case errors.As(err, &ferr):
		return detail(c, fiber.StatusUnprocessableEntity, ferr.Error())
	case errors.As(err, &verr):
		return detail(c, fiber.StatusBadRequest, verr.Reason)
	case errors.Is(err, domain.ErrBadID):
		return detail(c, fiber.StatusBadRequest, "Invalid "+strings.ToLower(what)+" id")
	case errors.Is(err, domain.ErrNotFound):
		return detail(c, fiber.StatusNotFound, what+" not found")
	case errors.Is(err, domain.ErrUnauthorized):
		return detail(c, fiber.StatusUnauthorized, "Invalid admin key")
	}
	applog.Error(c, strings.ToLower(what)+".fail", err, nil)
	return detail(c, fiber.StatusInternalServerError, "Internal server error")
}

// ErrorHandler renders errors that escape handlers. Server-side details are
// logged, never returned.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		if code < fiber.StatusInternalServerError {
			msg = fe.Message
		}
	}
	if code >= fiber.StatusInternalServerError {
		applog.Error(c, "server.error", err, nil)
	}
	return detail(c, code, msg)
}
