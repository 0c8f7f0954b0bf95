package handlers

import (
	"techgear/internal/models"
	"techgear/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CustomerHandler handles HTTP requests for customers and their orders.
type CustomerHandler struct {
	service *services.CustomerService
	log     *zap.Logger
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(service *services.CustomerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the customer routes.
func (h *CustomerHandler) RegisterRoutes(router fiber.Router) {
	customers := router.Group("/customers")
	customers.Get("/:id/orders", h.HandleGetOrders)
	customers.Get("/:id", h.HandleGetCustomer)
	customers.Put("/:id", h.HandleUpdateCustomer)
}

// HandleGetCustomer returns the customer's details with each of their orders.
// An id that cannot match a customer yields an empty list.
func (h *CustomerHandler) HandleGetCustomer(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.JSON([]models.CustomerOrderRow{})
	}

	rows, err := h.service.GetCustomer(c.UserContext(), id)
	if err != nil {
		return jsonError(c, h.log, err, errorBody{failure: "Could not retrieve customer"})
	}
	return c.JSON(rows)
}

// HandleGetOrders returns every ordered product of the customer.
func (h *CustomerHandler) HandleGetOrders(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.JSON([]models.OrderLineRow{})
	}

	rows, err := h.service.GetOrders(c.UserContext(), id)
	if err != nil {
		return jsonError(c, h.log, err, errorBody{failure: "Could not retrieve customer orders"})
	}
	return c.JSON(rows)
}

// HandleUpdateCustomer updates email, phone and address of a customer.
// An update that changes no row is answered with 500.
func (h *CustomerHandler) HandleUpdateCustomer(c *fiber.Ctx) error {
	var in models.CustomerUpdate
	if err := c.BodyParser(&in); err != nil {
		h.log.Debug("invalid customer body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	msgs := errorBody{failure: "Failed to update customer"}
	id, ok := paramID(c)
	if !ok {
		return jsonError(c, h.log, services.ErrNotFound, msgs)
	}

	if err := h.service.UpdateCustomer(c.UserContext(), id, in); err != nil {
		return jsonError(c, h.log, err, msgs)
	}
	return c.JSON(fiber.Map{"message": "Customer updated successfully"})
}
