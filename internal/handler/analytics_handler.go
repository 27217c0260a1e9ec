package handler

import (
	"net/http"

	"github.com/dafibh/dompet/dompet-backend/internal/service"
	"github.com/dafibh/dompet/dompet-backend/internal/util"
	"github.com/labstack/echo/v4"
)

// AnalyticsHandler handles the read-only analytics views
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// DashboardResponse represents the month-to-date summary in API responses
type DashboardResponse struct {
	Income           string `json:"income"`
	Expenses         string `json:"expenses"`
	Balance          string `json:"balance"`
	TransactionCount int64  `json:"transactionCount"`
	Month            string `json:"month"`
}

// CategoryExpenseResponse represents one group of expenses by category.
// Category fields are null for uncategorized expenses.
type CategoryExpenseResponse struct {
	CategoryName  *string `json:"categoryName"`
	CategoryColor *string `json:"categoryColor"`
	CategoryIcon  *string `json:"categoryIcon"`
	Total         string  `json:"total"`
	Count         int64   `json:"count"`
}

// DailyExpenseResponse represents the expense total of one date
type DailyExpenseResponse struct {
	Date  string `json:"date"`
	Total string `json:"total"`
}

// BudgetProgressResponse represents budget versus actual spending
type BudgetProgressResponse struct {
	BudgetID      int32   `json:"budgetId"`
	CategoryID    int32   `json:"categoryId"`
	Category      string  `json:"category"`
	CategoryIcon  string  `json:"categoryIcon"`
	CategoryColor string  `json:"categoryColor"`
	Budget        string  `json:"budget"`
	Spent         string  `json:"spent"`
	Remaining     string  `json:"remaining"`
	Percentage    float64 `json:"percentage"`
}

// GetDashboard godoc
// @Summary Month-to-date dashboard
// @Description Income, expenses, balance and transaction count from the first of the month to today
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} ProblemDetails
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return NewUnauthorizedError(c, "Authentication required")
	}

	stats, err := h.analyticsService.GetDashboard(c.Request().Context(), userID)
	if err != nil {
		return handleServiceError(c, err, "get dashboard")
	}

	return c.JSON(http.StatusOK, DashboardResponse{
		Income:           stats.Income.StringFixed(2),
		Expenses:         stats.Expenses.StringFixed(2),
		Balance:          stats.Balance.StringFixed(2),
		TransactionCount: stats.TransactionCount,
		Month:            stats.Month,
	})
}

// GetExpensesByCategory godoc
// @Summary Expenses by category
// @Description Month-to-date expenses grouped by category, largest total first
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} CategoryExpenseResponse
// @Failure 401 {object} ProblemDetails
// @Router /analytics/expenses-by-category [get]
func (h *AnalyticsHandler) GetExpensesByCategory(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return NewUnauthorizedError(c, "Authentication required")
	}

	groups, err := h.analyticsService.GetExpensesByCategory(c.Request().Context(), userID)
	if err != nil {
		return handleServiceError(c, err, "get expenses by category")
	}

	response := make([]CategoryExpenseResponse, len(groups))
	for i, g := range groups {
		response[i] = CategoryExpenseResponse{
			CategoryName:  g.CategoryName,
			CategoryColor: g.CategoryColor,
			CategoryIcon:  g.CategoryIcon,
			Total:         g.Total.StringFixed(2),
			Count:         g.Count,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// GetSpendingTrend godoc
// @Summary Spending trend
// @Description Daily expense totals for the last 30 days, oldest first. Days without expenses are omitted.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} DailyExpenseResponse
// @Failure 401 {object} ProblemDetails
// @Router /analytics/spending-trend [get]
func (h *AnalyticsHandler) GetSpendingTrend(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return NewUnauthorizedError(c, "Authentication required")
	}

	days, err := h.analyticsService.GetSpendingTrend(c.Request().Context(), userID)
	if err != nil {
		return handleServiceError(c, err, "get spending trend")
	}

	response := make([]DailyExpenseResponse, len(days))
	for i, d := range days {
		response[i] = DailyExpenseResponse{
			Date:  d.Date.Format(util.DateLayout),
			Total: d.Total.StringFixed(2),
		}
	}
	return c.JSON(http.StatusOK, response)
}

// GetBudgetProgress godoc
// @Summary Budget progress
// @Description Budgets of the current month with month-to-date spending in their category
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} BudgetProgressResponse
// @Failure 401 {object} ProblemDetails
// @Router /analytics/budget-progress [get]
func (h *AnalyticsHandler) GetBudgetProgress(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return NewUnauthorizedError(c, "Authentication required")
	}

	progress, err := h.analyticsService.GetBudgetProgress(c.Request().Context(), userID)
	if err != nil {
		return handleServiceError(c, err, "get budget progress")
	}

	response := make([]BudgetProgressResponse, len(progress))
	for i, p := range progress {
		response[i] = BudgetProgressResponse{
			BudgetID:      p.BudgetID,
			CategoryID:    p.CategoryID,
			Category:      p.Category,
			CategoryIcon:  p.CategoryIcon,
			CategoryColor: p.CategoryColor,
			Budget:        p.Budget.StringFixed(2),
			Spent:         p.Spent.StringFixed(2),
			Remaining:     p.Remaining.StringFixed(2),
			Percentage:    p.Percentage.InexactFloat64(),
		}
	}
	return c.JSON(http.StatusOK, response)
}
