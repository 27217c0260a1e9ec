package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/service"
	"github.com/dafibh/dompet/dompet-backend/internal/util"
	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// BudgetRequest represents the create/update budget request body.
// Any date within the month is accepted for month.
type BudgetRequest struct {
	Category *int32          `json:"category"`
	Amount   json.RawMessage `json:"amount" swaggertype:"string" example:"1000.00"`
	Month    *string         `json:"month" example:"2026-03-01"`
}

// BudgetResponse represents a budget in API responses
type BudgetResponse struct {
	ID            int32  `json:"id"`
	Category      int32  `json:"category"`
	CategoryName  string `json:"categoryName"`
	CategoryIcon  string `json:"categoryIcon"`
	CategoryColor string `json:"categoryColor"`
	Amount        string `json:"amount"`
	Month         string `json:"month"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

func (r BudgetRequest) toInput() (service.BudgetInput, *ValidationError) {
	input := service.BudgetInput{CategoryID: r.Category}

	amount, err := parseAmount(r.Amount)
	if err != nil {
		return input, &ValidationError{Field: "amount", Message: "A valid number is required."}
	}
	input.Amount = amount

	month, err := parseOptionalMonth(r.Month)
	if err != nil {
		return input, &ValidationError{Field: "month", Message: "Date has wrong format. Use YYYY-MM-DD."}
	}
	input.Month = month

	return input, nil
}

// GetBudgets godoc
// @Summary List budgets
// @Description Budgets ordered by month, newest first
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Param category query int false "Category ID"
// @Param month query string false "Any date within the month (YYYY-MM-DD or YYYY-MM)"
// @Success 200 {array} BudgetResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /budgets [get]
func (h *BudgetHandler) GetBudgets(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return NewUnauthorizedError(c, "Authentication required")
	}

	filters := &domain.BudgetFilters{}
	if categoryStr := c.QueryParam("category"); categoryStr != "" {
		var categoryID int32
		if _, err := parseIntParam(categoryStr, &categoryID); err != nil {
			return NewFieldError(c, "category", "A valid integer is required.")
		}
		filters.CategoryID = &categoryID
	}
	if monthStr := c.QueryParam("month"); monthStr != "" {
		month, err := util.ParseMonth(monthStr)
		if err != nil {
			return NewFieldError(c, "month", "Date has wrong format. Use YYYY-MM-DD.")
		}
		filters.Month = &month
	}

	budgets, err := h.budgetService.ListBudgets(c.Request().Context(), userID, filters)
	if err != nil {
		return handleServiceError(c, err, "get budgets")
	}

	response := make([]BudgetResponse, len(budgets))
	for i, budget := range budgets {
		response[i] = toBudgetResponse(budget)
	}
	return c.JSON(http.StatusOK, response)
}

// CreateBudget godoc
// @Summary Create a budget
// @Description One budget per category and month
// @Tags budgets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BudgetRequest true "Budget"
// @Success 201 {object} BudgetResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req BudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	input, fieldErr := req.toInput()
	if fieldErr != nil {
		return NewFieldError(c, fieldErr.Field, fieldErr.Message)
	}

	budget, err := h.budgetService.CreateBudget(c.Request().Context(), userID, input)
	if err != nil {
		return handleServiceError(c, err, "create budget")
	}

	return c.JSON(http.StatusCreated, toBudgetResponse(budget))
}

// GetBudget godoc
// @Summary Get a budget
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Budget ID"
// @Success 200 {object} BudgetResponse
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return NewUnauthorizedError(c, "Authentication required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewNotFoundError(c, "Budget not found")
	}

	budget, err := h.budgetService.GetBudget(c.Request().Context(), userID, id)
	if err != nil {
		return handleServiceError(c, err, "get budget")
	}

	return c.JSON(http.StatusOK, toBudgetResponse(budget))
}

// UpdateBudget godoc
// @Summary Update a budget
// @Description PUT requires category, amount and month; PATCH updates only the fields sent
// @Tags budgets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Budget ID"
// @Param request body BudgetRequest true "Budget fields"
// @Success 200 {object} BudgetResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /budgets/{id} [put]
// @Router /budgets/{id} [patch]
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return NewUnauthorizedError(c, "Authentication required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewNotFoundError(c, "Budget not found")
	}

	var req BudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	input, fieldErr := req.toInput()
	if fieldErr != nil {
		return NewFieldError(c, fieldErr.Field, fieldErr.Message)
	}

	budget, err := h.budgetService.UpdateBudget(c.Request().Context(), userID, id, input, isPartial(c))
	if err != nil {
		return handleServiceError(c, err, "update budget")
	}

	return c.JSON(http.StatusOK, toBudgetResponse(budget))
}

// DeleteBudget godoc
// @Summary Delete a budget
// @Tags budgets
// @Security BearerAuth
// @Param id path int true "Budget ID"
// @Success 204
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return NewUnauthorizedError(c, "Authentication required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewNotFoundError(c, "Budget not found")
	}

	if err := h.budgetService.DeleteBudget(c.Request().Context(), userID, id); err != nil {
		return handleServiceError(c, err, "delete budget")
	}

	return c.NoContent(http.StatusNoContent)
}

func toBudgetResponse(budget *domain.Budget) BudgetResponse {
	return BudgetResponse{
		ID:            budget.ID,
		Category:      budget.CategoryID,
		CategoryName:  budget.CategoryName,
		CategoryIcon:  budget.CategoryIcon,
		CategoryColor: budget.CategoryColor,
		Amount:        budget.Amount.StringFixed(2),
		Month:         budget.Month.Format(util.DateLayout),
		CreatedAt:     budget.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     budget.UpdatedAt.Format(time.RFC3339),
	}
}
