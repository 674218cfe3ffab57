package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inventory-service/internal/api/dto"
	"github.com/spec-kit/inventory-service/internal/service"
)

// CategoriesHandler exposes catalog category endpoints.
type CategoriesHandler struct {
	categories *service.CategoryService
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(categories *service.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{categories: categories}
}

// List handles GET /api/categories.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	result := h.categories.GetAll(c.UserContext())
	if !result.IsSuccess() {
		return respondFailure(c, result.Message())
	}
	return respondData(c, http.StatusOK, dto.NewCategoryListResponse(result.Value()))
}

// Get handles GET /api/categories/:id.
func (h *CategoriesHandler) Get(c *fiber.Ctx) error {
	id := parseID(c)
	result := h.categories.GetByID(c.UserContext(), id)
	if !result.IsSuccess() {
		return respondFailure(c, result.Message())
	}
	return respondData(c, http.StatusOK, dto.NewCategoryResponse(result.Value()))
}

// Create handles POST /api/categories.
func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	result := h.categories.Create(c.UserContext(), req.ToInput(0), actorEmail(c))
	if !result.IsSuccess() {
		return respondFailure(c, result.Message())
	}
	return respondData(c, http.StatusCreated, dto.NewCategoryResponse(result.Value()))
}

// Update handles PUT /api/categories/:id.
func (h *CategoriesHandler) Update(c *fiber.Ctx) error {
	id := parseID(c)

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	result := h.categories.Update(c.UserContext(), req.ToInput(id), actorEmail(c))
	if !result.IsSuccess() {
		return respondFailure(c, result.Message())
	}
	return respondData(c, http.StatusOK, dto.NewCategoryResponse(result.Value()))
}

// Delete handles DELETE /api/categories/:id.
func (h *CategoriesHandler) Delete(c *fiber.Ctx) error {
	id := parseID(c)
	result := h.categories.Delete(c.UserContext(), id, actorEmail(c))
	if !result.IsSuccess() {
		return respondFailure(c, result.Message())
	}
	return c.SendStatus(http.StatusNoContent)
}

// Search handles GET /api/categories/search?term=.
func (h *CategoriesHandler) Search(c *fiber.Ctx) error {
	result := h.categories.Search(c.UserContext(), c.Query("term"))
	if !result.IsSuccess() {
		return respondFailure(c, result.Message())
	}
	return respondData(c, http.StatusOK, dto.NewCategoryListResponse(result.Value()))
}
