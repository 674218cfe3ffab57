package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// failureStatus maps a business failure message to an HTTP status. The
// classification is substring-based: services phrase absence as "not found"
// and uniqueness conflicts as "already exists", and the transport keys off
// those phrases. Everything else is a client error.
func failureStatus(message string) int {
	lowered := strings.ToLower(message)
	switch {
	case strings.Contains(lowered, "not found"):
		return http.StatusNotFound
	case strings.Contains(lowered, "already exists"):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func respondFailure(c *fiber.Ctx, message string) error {
	return c.Status(failureStatus(message)).JSON(fiber.Map{
		"error": fiber.Map{
			"message": message,
		},
	})
}

func respondData(c *fiber.Ctx, status int, payload any) error {
	return c.Status(status).JSON(fiber.Map{"data": payload})
}
