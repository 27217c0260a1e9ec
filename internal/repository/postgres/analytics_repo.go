package postgres

import (
	"context"
	"time"

	"github.com/dafibh/dompet/dompet-backend/db/sqlc"
	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// AnalyticsRepository implements domain.AnalyticsRepository using PostgreSQL aggregates
type AnalyticsRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

// NewAnalyticsRepository creates a new AnalyticsRepository
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

// SumByTypeAndDateRange sums amounts of one type for dates in [start, end]
func (r *AnalyticsRepository) SumByTypeAndDateRange(ctx context.Context, userID uuid.UUID, txType domain.TransactionType, start, end time.Time) (decimal.Decimal, error) {
	total, err := r.queries.SumTransactionsByTypeAndDateRange(ctx, sqlc.SumTransactionsByTypeAndDateRangeParams{
		UserID:    uuidToPgUUID(userID),
		Type:      string(txType),
		StartDate: dateToPgDate(start),
		EndDate:   dateToPgDate(end),
	})
	if err != nil {
		return decimal.Zero, err
	}
	return pgNumericToDecimal(total), nil
}

// CountByDateRange counts transactions of any type for dates in [start, end]
func (r *AnalyticsRepository) CountByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (int64, error) {
	return r.queries.CountTransactionsByDateRange(ctx, sqlc.CountTransactionsByDateRangeParams{
		UserID:    uuidToPgUUID(userID),
		StartDate: dateToPgDate(start),
		EndDate:   dateToPgDate(end),
	})
}

// ExpensesByCategory groups expenses in [start, end] by category display fields, largest total first
func (r *AnalyticsRepository) ExpensesByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*domain.CategoryExpense, error) {
	rows, err := r.queries.GetExpensesByCategory(ctx, sqlc.GetExpensesByCategoryParams{
		UserID:    uuidToPgUUID(userID),
		StartDate: dateToPgDate(start),
		EndDate:   dateToPgDate(end),
	})
	if err != nil {
		return nil, err
	}
	result := make([]*domain.CategoryExpense, len(rows))
	for i, row := range rows {
		result[i] = &domain.CategoryExpense{
			CategoryName:  pgTextToStringPtr(row.CategoryName),
			CategoryColor: pgTextToStringPtr(row.CategoryColor),
			CategoryIcon:  pgTextToStringPtr(row.CategoryIcon),
			Total:         pgNumericToDecimal(row.Total),
			Count:         row.Count,
		}
	}
	return result, nil
}

// DailyExpenses returns per-day expense totals for days in [start, end] that have expenses
func (r *AnalyticsRepository) DailyExpenses(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*domain.DailyExpense, error) {
	rows, err := r.queries.GetDailyExpenses(ctx, sqlc.GetDailyExpensesParams{
		UserID:    uuidToPgUUID(userID),
		StartDate: dateToPgDate(start),
		EndDate:   dateToPgDate(end),
	})
	if err != nil {
		return nil, err
	}
	result := make([]*domain.DailyExpense, len(rows))
	for i, row := range rows {
		result[i] = &domain.DailyExpense{
			Date:  row.Date.Time,
			Total: pgNumericToDecimal(row.Total),
		}
	}
	return result, nil
}

// BudgetsWithSpending returns the budgets of month with the expenses of their category in [start, end]
func (r *AnalyticsRepository) BudgetsWithSpending(ctx context.Context, userID uuid.UUID, month, start, end time.Time) ([]*domain.BudgetSpending, error) {
	rows, err := r.queries.GetBudgetsWithSpending(ctx, sqlc.GetBudgetsWithSpendingParams{
		StartDate: dateToPgDate(start),
		EndDate:   dateToPgDate(end),
		UserID:    uuidToPgUUID(userID),
		Month:     dateToPgDate(month),
	})
	if err != nil {
		return nil, err
	}
	result := make([]*domain.BudgetSpending, len(rows))
	for i, row := range rows {
		result[i] = &domain.BudgetSpending{
			BudgetID:      row.ID,
			CategoryID:    row.CategoryID,
			CategoryName:  row.CategoryName,
			CategoryIcon:  row.CategoryIcon,
			CategoryColor: row.CategoryColor,
			Amount:        pgNumericToDecimal(row.Amount),
			Spent:         pgNumericToDecimal(row.Spent),
		}
	}
	return result, nil
}
