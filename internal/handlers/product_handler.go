package handlers

import (
	"strconv"

	"techgear/internal/models"
	"techgear/internal/repositories"
	"techgear/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
	log     *zap.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the product collection and lookup routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleGetProducts)
	router.Post("/products", h.HandleCreateProduct)
	router.Get("/search", h.HandleSearch)
	router.Get("/category", h.HandleCategory)
}

// RegisterItemRoutes registers the /products/:id routes. It must run after
// every literal /products/... route.
func (h *ProductHandler) RegisterItemRoutes(router fiber.Router) {
	router.Get("/products/:id", h.HandleGetProductByID)
	router.Put("/products/:id", h.HandleUpdateProduct)
	router.Delete("/products/:id", h.HandleDeleteProduct)
}

// HandleGetProducts lists all products, optionally sorted by ?sort=price_asc|price_desc.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	sort := repositories.ParseSortOrder(c.Query("sort"))
	products, err := h.service.ListProducts(c.UserContext(), sort)
	if err != nil {
		return textError(c, h.log, err, errorBody{failure: "Could not retrieve products"})
	}
	return c.JSON(products)
}

// HandleSearch finds products by ?name=.
func (h *ProductHandler) HandleSearch(c *fiber.Ctx) error {
	products, err := h.service.SearchProducts(c.UserContext(), c.Query("name"))
	if err != nil {
		return textError(c, h.log, err, errorBody{
			notFound: "No product with that name",
			failure:  "Could not search products",
		})
	}
	return c.JSON(products)
}

// HandleCategory lists the products of the category given by ?id=.
func (h *ProductHandler) HandleCategory(c *fiber.Ctx) error {
	msgs := errorBody{
		notFound: "Category ID doesn't exist / No products in this category",
		failure:  "Could not retrieve category products",
	}

	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil || id == 0 {
		return textError(c, h.log, services.ErrNotFound, msgs)
	}

	products, err := h.service.ProductsInCategory(c.UserContext(), uint(id))
	if err != nil {
		return textError(c, h.log, err, msgs)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	msgs := errorBody{notFound: "Product not found", failure: "Could not retrieve product"}

	id, ok := paramID(c)
	if !ok {
		return textError(c, h.log, services.ErrNotFound, msgs)
	}

	product, err := h.service.GetProduct(c.UserContext(), id)
	if err != nil {
		return textError(c, h.log, err, msgs)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var in models.ProductInput
	if err := c.BodyParser(&in); err != nil {
		h.log.Debug("invalid product body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	id, err := h.service.CreateProduct(c.UserContext(), in)
	if err != nil {
		return jsonError(c, h.log, err, errorBody{failure: "Failed to create product"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Product created successfully",
		"productId": id,
	})
}

// HandleUpdateProduct overwrites an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	msgs := errorBody{notFound: "Product not found", failure: "Failed to update product"}

	var in models.ProductInput
	if err := c.BodyParser(&in); err != nil {
		h.log.Debug("invalid product body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	id, ok := paramID(c)
	if !ok {
		return jsonError(c, h.log, services.ErrNotFound, msgs)
	}

	if err := h.service.UpdateProduct(c.UserContext(), id, in); err != nil {
		return jsonError(c, h.log, err, msgs)
	}
	return c.JSON(fiber.Map{"message": "Product updated successfully"})
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	msgs := errorBody{notFound: "Product not found", failure: "Internal server error"}

	id, ok := paramID(c)
	if !ok {
		return jsonError(c, h.log, services.ErrNotFound, msgs)
	}

	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		return jsonError(c, h.log, err, msgs)
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
