package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler reports whether the service and its database are reachable.
type HealthHandler struct {
	ping func(ctx context.Context) error
}

// NewHealthHandler creates a HealthHandler that checks storage with ping.
func NewHealthHandler(ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// RegisterRoutes registers the welcome and health routes.
func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleWelcome)
	router.Get("/health", h.HandleHealth)
}

// HandleWelcome is the storefront landing response.
func (h *HealthHandler) HandleWelcome(c *fiber.Ctx) error {
	return c.SendString("Welcome!")
}

// HandleHealth pings the database and answers 503 when it is unreachable.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	body := fiber.Map{
		"status":   "healthy",
		"time":     time.Now().Format(time.RFC3339),
		"database": "up",
	}
	if err := h.ping(ctx); err != nil {
		body["status"] = "unhealthy"
		body["database"] = "down"
		return c.Status(fiber.StatusServiceUnavailable).JSON(body)
	}
	return c.JSON(body)
}
