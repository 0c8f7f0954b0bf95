package handlers

import (
	"techgear/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StatsHandler serves the catalogue and review aggregates.
type StatsHandler struct {
	service *services.StatsService
	log     *zap.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(service *services.StatsService, log *zap.Logger) *StatsHandler {
	return &StatsHandler{service: service, log: log}
}

// RegisterRoutes registers the stats routes. They must precede /products/:id.
func (h *StatsHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products/stats", h.HandleProductStats)
	router.Get("/reviews/stats", h.HandleReviewStats)
}

// HandleProductStats returns product count and average price per category.
func (h *StatsHandler) HandleProductStats(c *fiber.Ctx) error {
	stats, err := h.service.ProductStats(c.UserContext())
	if err != nil {
		return jsonError(c, h.log, err, errorBody{failure: "Could not retrieve product stats"})
	}
	return c.JSON(stats)
}

// HandleReviewStats returns the average rating per reviewed product.
func (h *StatsHandler) HandleReviewStats(c *fiber.Ctx) error {
	stats, err := h.service.ReviewStats(c.UserContext())
	if err != nil {
		return jsonError(c, h.log, err, errorBody{failure: "Could not retrieve review stats"})
	}
	return c.JSON(stats)
}
