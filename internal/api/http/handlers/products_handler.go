package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inventory-service/internal/api/dto"
	"github.com/spec-kit/inventory-service/internal/auth"
	"github.com/spec-kit/inventory-service/internal/service"
)

// ProductsHandler exposes catalog product endpoints.
type ProductsHandler struct {
	products *service.ProductService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(products *service.ProductService) *ProductsHandler {
	return &ProductsHandler{products: products}
}

// List handles GET /api/products.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	result := h.products.GetAll(c.UserContext())
	if !result.IsSuccess() {
		return respondFailure(c, result.Message())
	}
	return respondData(c, http.StatusOK, dto.NewProductListResponse(result.Value()))
}

// Get handles GET /api/products/:id.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	id := parseID(c)
	result := h.products.GetByID(c.UserContext(), id)
	if !result.IsSuccess() {
		return respondFailure(c, result.Message())
	}
	return respondData(c, http.StatusOK, dto.NewProductResponse(result.Value()))
}

// Create handles POST /api/products.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	result := h.products.Create(c.UserContext(), req.ToCreateInput(), actorEmail(c))
	if !result.IsSuccess() {
		return respondFailure(c, result.Message())
	}
	return respondData(c, http.StatusCreated, dto.NewProductResponse(result.Value()))
}

// Update handles PUT /api/products/:id.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	id := parseID(c)

	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	result := h.products.Update(c.UserContext(), req.ToUpdateInput(id), actorEmail(c))
	if !result.IsSuccess() {
		return respondFailure(c, result.Message())
	}
	return respondData(c, http.StatusOK, dto.NewProductResponse(result.Value()))
}

// Delete handles DELETE /api/products/:id.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	id := parseID(c)
	result := h.products.Delete(c.UserContext(), id, actorEmail(c))
	if !result.IsSuccess() {
		return respondFailure(c, result.Message())
	}
	return c.SendStatus(http.StatusNoContent)
}

// Search handles GET /api/products/search?term=.
func (h *ProductsHandler) Search(c *fiber.Ctx) error {
	result := h.products.Search(c.UserContext(), c.Query("term"))
	if !result.IsSuccess() {
		return respondFailure(c, result.Message())
	}
	return respondData(c, http.StatusOK, dto.NewProductListResponse(result.Value()))
}

// parseID reads the :id path parameter. Non-numeric values become zero and
// fail the service-level id validation.
func parseID(c *fiber.Ctx) int {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0
	}
	return id
}

func actorEmail(c *fiber.Ctx) string {
	if principal, ok := auth.PrincipalFromContext(c); ok {
		return principal.Email
	}
	return "anonymous"
}
