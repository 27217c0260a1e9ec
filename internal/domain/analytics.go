package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardStats summarises the current month to date
type DashboardStats struct {
	Income           decimal.Decimal `json:"income"`
	Expenses         decimal.Decimal `json:"expenses"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int64           `json:"transactionCount"`
	Month            string          `json:"month"`
}

// CategoryExpense is one group of the expenses-by-category breakdown.
// Display fields are nil for the uncategorised bucket.
type CategoryExpense struct {
	CategoryName  *string         `json:"categoryName"`
	CategoryColor *string         `json:"categoryColor"`
	CategoryIcon  *string         `json:"categoryIcon"`
	Total         decimal.Decimal `json:"total"`
	Count         int64           `json:"count"`
}

// DailyExpense is the expense total of one calendar date
type DailyExpense struct {
	Date  time.Time       `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// BudgetSpending pairs a budget with what has been spent against its category
type BudgetSpending struct {
	BudgetID      int32
	CategoryID    int32
	CategoryName  string
	CategoryIcon  string
	CategoryColor string
	Amount        decimal.Decimal
	Spent         decimal.Decimal
}

// BudgetProgress is budget-vs-actual for the current month
type BudgetProgress struct {
	BudgetID      int32           `json:"budgetId"`
	CategoryID    int32           `json:"categoryId"`
	Category      string          `json:"category"`
	CategoryIcon  string          `json:"categoryIcon"`
	CategoryColor string          `json:"categoryColor"`
	Budget        decimal.Decimal `json:"budget"`
	Spent         decimal.Decimal `json:"spent"`
	Remaining     decimal.Decimal `json:"remaining"`
	Percentage    decimal.Decimal `json:"percentage"`
}

// AnalyticsRepository runs the read-only aggregate queries behind the analytics views.
// Date bounds are inclusive calendar dates.
type AnalyticsRepository interface {
	SumByTypeAndDateRange(ctx context.Context, userID uuid.UUID, txType TransactionType, startDate, endDate time.Time) (decimal.Decimal, error)
	CountByDateRange(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) (int64, error)
	ExpensesByCategory(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*CategoryExpense, error)
	DailyExpenses(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*DailyExpense, error)
	BudgetsWithSpending(ctx context.Context, userID uuid.UUID, month, startDate, endDate time.Time) ([]*BudgetSpending, error)
}
