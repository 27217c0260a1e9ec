package handler

import (
	"net/http"
	"time"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest represents the create/update category request body
type CategoryRequest struct {
	Name      *string `json:"name"`
	Type      *string `json:"type"`
	Icon      *string `json:"icon"`
	Color     *string `json:"color"`
	IsDefault *bool   `json:"isDefault"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	IsDefault bool   `json:"isDefault"`
	CreatedAt string `json:"createdAt"`
}

func (r CategoryRequest) toInput() service.CategoryInput {
	input := service.CategoryInput{
		Name:      r.Name,
		Icon:      r.Icon,
		Color:     r.Color,
		IsDefault: r.IsDefault,
	}
	if r.Type != nil {
		t := domain.TransactionType(*r.Type)
		input.Type = &t
	}
	return input
}

// GetCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive substring of the name"
// @Param ordering query string false "name, -name, created_at or -created_at" default(name)
// @Success 200 {array} CategoryResponse
// @Failure 401 {object} ProblemDetails
// @Router /categories [get]
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return NewUnauthorizedError(c, "Authentication required")
	}

	categories, err := h.categoryService.ListCategories(c.Request().Context(), userID, &domain.CategoryFilters{
		Search:   c.QueryParam("search"),
		Ordering: c.QueryParam("ordering"),
	})
	if err != nil {
		return handleServiceError(c, err, "get categories")
	}

	response := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		response[i] = toCategoryResponse(category)
	}
	return c.JSON(http.StatusOK, response)
}

// CreateCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Category"
// @Success 201 {object} CategoryResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	category, err := h.categoryService.CreateCategory(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return handleServiceError(c, err, "create category")
	}

	return c.JSON(http.StatusCreated, toCategoryResponse(category))
}

// GetCategory godoc
// @Summary Get a category
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} CategoryResponse
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return NewUnauthorizedError(c, "Authentication required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewNotFoundError(c, "Category not found")
	}

	category, err := h.categoryService.GetCategory(c.Request().Context(), userID, id)
	if err != nil {
		return handleServiceError(c, err, "get category")
	}

	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// UpdateCategory godoc
// @Summary Update a category
// @Description PUT requires name and type; PATCH updates only the fields sent
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body CategoryRequest true "Category fields"
// @Success 200 {object} CategoryResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /categories/{id} [put]
// @Router /categories/{id} [patch]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return NewUnauthorizedError(c, "Authentication required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewNotFoundError(c, "Category not found")
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	category, err := h.categoryService.UpdateCategory(c.Request().Context(), userID, id, req.toInput(), isPartial(c))
	if err != nil {
		return handleServiceError(c, err, "update category")
	}

	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Transactions of the category become uncategorized and its budgets are removed
// @Tags categories
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 204
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return NewUnauthorizedError(c, "Authentication required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewNotFoundError(c, "Category not found")
	}

	if err := h.categoryService.DeleteCategory(c.Request().Context(), userID, id); err != nil {
		return handleServiceError(c, err, "delete category")
	}

	return c.NoContent(http.StatusNoContent)
}

func toCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Type:      string(category.Type),
		Icon:      category.Icon,
		Color:     category.Color,
		IsDefault: category.IsDefault,
		CreatedAt: category.CreatedAt.Format(time.RFC3339),
	}
}
