package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/util"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SpendingTrendDays is how far back the spending trend reaches from today
const SpendingTrendDays = 30

var hundred = decimal.NewFromInt(100)

// AnalyticsService computes read-only summaries over a user's transactions and budgets
type AnalyticsService struct {
	analyticsRepo domain.AnalyticsRepository
	now           func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(analyticsRepo domain.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
		now:           time.Now,
	}
}

// today is the server's local calendar date
func (s *AnalyticsService) today() time.Time {
	return util.DateOf(s.now())
}

// GetDashboard returns month-to-date income, expenses, balance and transaction count
func (s *AnalyticsService) GetDashboard(ctx context.Context, userID uuid.UUID) (*domain.DashboardStats, error) {
	start, end := util.MonthToDate(s.today())

	income, err := s.analyticsRepo.SumByTypeAndDateRange(ctx, userID, domain.TransactionTypeIncome, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum income: %w", err)
	}

	expenses, err := s.analyticsRepo.SumByTypeAndDateRange(ctx, userID, domain.TransactionTypeExpense, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	count, err := s.analyticsRepo.CountByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	return &domain.DashboardStats{
		Income:           income,
		Expenses:         expenses,
		Balance:          income.Sub(expenses),
		TransactionCount: count,
		Month:            util.MonthLabel(start),
	}, nil
}

// GetExpensesByCategory returns month-to-date expenses grouped by category, largest first
func (s *AnalyticsService) GetExpensesByCategory(ctx context.Context, userID uuid.UUID) ([]*domain.CategoryExpense, error) {
	start, end := util.MonthToDate(s.today())

	groups, err := s.analyticsRepo.ExpensesByCategory(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to group expenses: %w", err)
	}
	if groups == nil {
		groups = []*domain.CategoryExpense{}
	}
	return groups, nil
}

// GetSpendingTrend returns daily expense totals over the trailing window. Days without expenses are omitted.
func (s *AnalyticsService) GetSpendingTrend(ctx context.Context, userID uuid.UUID) ([]*domain.DailyExpense, error) {
	start, end := util.TrailingDays(s.today(), SpendingTrendDays)

	days, err := s.analyticsRepo.DailyExpenses(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily expenses: %w", err)
	}
	if days == nil {
		days = []*domain.DailyExpense{}
	}
	return days, nil
}

// GetBudgetProgress compares each budget of the current month with month-to-date spending in its category
func (s *AnalyticsService) GetBudgetProgress(ctx context.Context, userID uuid.UUID) ([]*domain.BudgetProgress, error) {
	start, end := util.MonthToDate(s.today())

	rows, err := s.analyticsRepo.BudgetsWithSpending(ctx, userID, start, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	result := make([]*domain.BudgetProgress, len(rows))
	for i, row := range rows {
		result[i] = &domain.BudgetProgress{
			BudgetID:      row.BudgetID,
			CategoryID:    row.CategoryID,
			Category:      row.CategoryName,
			CategoryIcon:  row.CategoryIcon,
			CategoryColor: row.CategoryColor,
			Budget:        row.Amount,
			Spent:         row.Spent,
			Remaining:     row.Amount.Sub(row.Spent),
			Percentage:    budgetPercentage(row.Spent, row.Amount),
		}
	}
	return result, nil
}

// budgetPercentage is spent/budget*100 rounded half to even at 2 places, or 0 for a zero budget
func budgetPercentage(spent, budget decimal.Decimal) decimal.Decimal {
	if !budget.IsPositive() {
		return decimal.Zero
	}
	return spent.Mul(hundred).Div(budget).RoundBank(2)
}
