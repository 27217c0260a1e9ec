package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/service"
	"github.com/dafibh/dompet/dompet-backend/internal/testutil"
	"github.com/dafibh/dompet/dompet-backend/internal/util"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAnalyticsHandler() (*AnalyticsHandler, *testutil.MockStore) {
	store := testutil.NewMockStore()
	return NewAnalyticsHandler(service.NewAnalyticsService(store.Analytics)), store
}

func addTx(store *testutil.MockStore, userID uuid.UUID, categoryID *int32, txType domain.TransactionType, amount int64, date time.Time) {
	store.Transactions.AddTransaction(&domain.Transaction{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     decimal.NewFromInt(amount),
		Type:       txType,
		Date:       date,
	})
}

func TestGetDashboard(t *testing.T) {
	e := echo.New()
	handler, store := setupAnalyticsHandler()
	userID := uuid.New()
	monthStart := util.FirstOfMonth(time.Now())

	addTx(store, userID, nil, domain.TransactionTypeIncome, 3000, monthStart)
	addTx(store, userID, nil, domain.TransactionTypeExpense, 1200, monthStart)
	// last month and another user's data are left out
	addTx(store, userID, nil, domain.TransactionTypeExpense, 999, monthStart.AddDate(0, 0, -1))
	addTx(store, uuid.New(), nil, domain.TransactionTypeIncome, 50, monthStart)

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/analytics/dashboard", "")
	setupAuthContext(c, userID)

	require.NoError(t, handler.GetDashboard(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var response DashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "3000.00", response.Income)
	assert.Equal(t, "1200.00", response.Expenses)
	assert.Equal(t, "1800.00", response.Balance)
	assert.Equal(t, int64(2), response.TransactionCount)
	assert.Equal(t, util.MonthLabel(monthStart), response.Month)
}

func TestGetDashboard_Empty(t *testing.T) {
	e := echo.New()
	handler, _ := setupAnalyticsHandler()

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/analytics/dashboard", "")
	setupAuthContext(c, uuid.New())

	require.NoError(t, handler.GetDashboard(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var response DashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "0.00", response.Income)
	assert.Equal(t, "0.00", response.Balance)
	assert.Zero(t, response.TransactionCount)
}

func TestGetDashboard_RepositoryError(t *testing.T) {
	e := echo.New()
	handler, store := setupAnalyticsHandler()
	store.Analytics.Err = errors.New("connection reset")

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/analytics/dashboard", "")
	setupAuthContext(c, uuid.New())

	require.NoError(t, handler.GetDashboard(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestGetExpensesByCategory(t *testing.T) {
	e := echo.New()
	handler, store := setupAnalyticsHandler()
	userID := uuid.New()
	food := addFood(store, userID)
	monthStart := util.FirstOfMonth(time.Now())

	addTx(store, userID, &food.ID, domain.TransactionTypeExpense, 200, monthStart)
	addTx(store, userID, &food.ID, domain.TransactionTypeExpense, 300, monthStart)
	addTx(store, userID, nil, domain.TransactionTypeExpense, 40, monthStart)
	addTx(store, userID, &food.ID, domain.TransactionTypeIncome, 1000, monthStart)

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/analytics/expenses-by-category", "")
	setupAuthContext(c, userID)

	require.NoError(t, handler.GetExpensesByCategory(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var response []CategoryExpenseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response, 2)

	require.NotNil(t, response[0].CategoryName)
	assert.Equal(t, "Food", *response[0].CategoryName)
	assert.Equal(t, "#F59E0B", *response[0].CategoryColor)
	assert.Equal(t, "500.00", response[0].Total)
	assert.Equal(t, int64(2), response[0].Count)

	assert.Nil(t, response[1].CategoryName)
	assert.Nil(t, response[1].CategoryIcon)
	assert.Equal(t, "40.00", response[1].Total)
	assert.Equal(t, int64(1), response[1].Count)
}

func TestGetExpensesByCategory_EmptyIsArray(t *testing.T) {
	e := echo.New()
	handler, _ := setupAnalyticsHandler()

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/analytics/expenses-by-category", "")
	setupAuthContext(c, uuid.New())

	require.NoError(t, handler.GetExpensesByCategory(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetSpendingTrend_SparseAndSorted(t *testing.T) {
	e := echo.New()
	handler, store := setupAnalyticsHandler()
	userID := uuid.New()
	today := util.DateOf(time.Now())

	addTx(store, userID, nil, domain.TransactionTypeExpense, 10, today)
	addTx(store, userID, nil, domain.TransactionTypeExpense, 15, today)
	addTx(store, userID, nil, domain.TransactionTypeExpense, 70, today.AddDate(0, 0, -5))
	addTx(store, userID, nil, domain.TransactionTypeIncome, 500, today.AddDate(0, 0, -3))
	// outside the window
	addTx(store, userID, nil, domain.TransactionTypeExpense, 99, today.AddDate(0, 0, -(service.SpendingTrendDays+1)))

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/analytics/spending-trend", "")
	setupAuthContext(c, userID)

	require.NoError(t, handler.GetSpendingTrend(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var response []DailyExpenseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, []DailyExpenseResponse{
		{Date: today.AddDate(0, 0, -5).Format(util.DateLayout), Total: "70.00"},
		{Date: today.Format(util.DateLayout), Total: "25.00"},
	}, response)
}

func TestGetBudgetProgress(t *testing.T) {
	e := echo.New()
	handler, store := setupAnalyticsHandler()
	userID := uuid.New()
	monthStart := util.FirstOfMonth(time.Now())

	food := addFood(store, userID)
	rent := &domain.Category{UserID: userID, Name: "Rent", Type: domain.TransactionTypeExpense, Icon: "🏠", Color: "#3B82F6"}
	store.Categories.AddCategory(rent)
	zero := &domain.Category{UserID: userID, Name: "Travel", Type: domain.TransactionTypeExpense, Icon: "✈️", Color: "#10B981"}
	store.Categories.AddCategory(zero)

	store.Budgets.AddBudget(&domain.Budget{UserID: userID, CategoryID: food.ID, Amount: decimal.NewFromInt(1000), Month: monthStart})
	store.Budgets.AddBudget(&domain.Budget{UserID: userID, CategoryID: rent.ID, Amount: decimal.NewFromInt(300), Month: monthStart})
	store.Budgets.AddBudget(&domain.Budget{UserID: userID, CategoryID: zero.ID, Amount: decimal.Zero, Month: monthStart})
	// a budget for last month is not reported
	store.Budgets.AddBudget(&domain.Budget{UserID: userID, CategoryID: food.ID, Amount: decimal.NewFromInt(1), Month: monthStart.AddDate(0, -1, 0)})

	addTx(store, userID, &food.ID, domain.TransactionTypeExpense, 200, monthStart)
	addTx(store, userID, &food.ID, domain.TransactionTypeExpense, 300, monthStart)
	addTx(store, userID, &rent.ID, domain.TransactionTypeExpense, 450, monthStart)
	addTx(store, userID, &zero.ID, domain.TransactionTypeExpense, 20, monthStart)

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/analytics/budget-progress", "")
	setupAuthContext(c, userID)

	require.NoError(t, handler.GetBudgetProgress(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var response []BudgetProgressResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response, 3)

	byCategory := map[string]BudgetProgressResponse{}
	for _, p := range response {
		byCategory[p.Category] = p
	}

	foodProgress := byCategory["Food"]
	assert.Equal(t, food.ID, foodProgress.CategoryID)
	assert.Equal(t, "🍔", foodProgress.CategoryIcon)
	assert.Equal(t, "1000.00", foodProgress.Budget)
	assert.Equal(t, "500.00", foodProgress.Spent)
	assert.Equal(t, "500.00", foodProgress.Remaining)
	assert.Equal(t, 50.0, foodProgress.Percentage)

	rentProgress := byCategory["Rent"]
	assert.Equal(t, "-150.00", rentProgress.Remaining)
	assert.Equal(t, 150.0, rentProgress.Percentage)

	travelProgress := byCategory["Travel"]
	assert.Equal(t, "20.00", travelProgress.Spent)
	assert.Equal(t, 0.0, travelProgress.Percentage)
}

func TestAnalytics_Unauthorized(t *testing.T) {
	handler, _ := setupAnalyticsHandler()

	endpoints := map[string]echo.HandlerFunc{
		"dashboard":       handler.GetDashboard,
		"by category":     handler.GetExpensesByCategory,
		"spending trend":  handler.GetSpendingTrend,
		"budget progress": handler.GetBudgetProgress,
	}

	for name, fn := range endpoints {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			c, rec := newJSONContext(e, http.MethodGet, "/api/v1/analytics", "")

			require.NoError(t, fn(c))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
