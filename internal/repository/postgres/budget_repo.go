package postgres

import (
	"context"
	"fmt"

	"github.com/dafibh/dompet/dompet-backend/db/sqlc"
	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BudgetRepository implements domain.BudgetRepository using PostgreSQL
type BudgetRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

// Create creates a new budget. Month must already be normalized to the first day.
func (r *BudgetRepository) Create(ctx context.Context, budget *domain.Budget) (*domain.Budget, error) {
	amount, err := decimalToPgNumeric(budget.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	id, err := r.queries.CreateBudget(ctx, sqlc.CreateBudgetParams{
		UserID:     uuidToPgUUID(budget.UserID),
		CategoryID: budget.CategoryID,
		Amount:     amount,
		Month:      dateToPgDate(budget.Month),
	})
	if err != nil {
		if uniqueViolationConstraint(err) == constraintBudgetsCategoryMonth {
			return nil, domain.ErrBudgetAlreadyExists
		}
		return nil, err
	}
	return r.GetByID(ctx, budget.UserID, id)
}

// GetByID retrieves a budget by its ID for a user
func (r *BudgetRepository) GetByID(ctx context.Context, userID uuid.UUID, id int32) (*domain.Budget, error) {
	row, err := r.queries.GetBudgetByID(ctx, sqlc.GetBudgetByIDParams{
		UserID: uuidToPgUUID(userID),
		ID:     id,
	})
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	return sqlcBudgetRowToDomain(sqlc.ListBudgetsRow(row)), nil
}

// List retrieves a user's budgets, most recent month first
func (r *BudgetRepository) List(ctx context.Context, userID uuid.UUID, filters *domain.BudgetFilters) ([]*domain.Budget, error) {
	params := sqlc.ListBudgetsParams{
		UserID: uuidToPgUUID(userID),
	}
	if filters != nil {
		params.CategoryID = int32PtrToPgInt4(filters.CategoryID)
		params.Month = timePtrToPgDate(filters.Month)
	}

	rows, err := r.queries.ListBudgets(ctx, params)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.Budget, len(rows))
	for i, row := range rows {
		result[i] = sqlcBudgetRowToDomain(row)
	}
	return result, nil
}

// Update replaces a budget's category, amount and month
func (r *BudgetRepository) Update(ctx context.Context, budget *domain.Budget) (*domain.Budget, error) {
	amount, err := decimalToPgNumeric(budget.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	rows, err := r.queries.UpdateBudget(ctx, sqlc.UpdateBudgetParams{
		UserID:     uuidToPgUUID(budget.UserID),
		ID:         budget.ID,
		CategoryID: budget.CategoryID,
		Amount:     amount,
		Month:      dateToPgDate(budget.Month),
	})
	if err != nil {
		if uniqueViolationConstraint(err) == constraintBudgetsCategoryMonth {
			return nil, domain.ErrBudgetAlreadyExists
		}
		return nil, err
	}
	if rows == 0 {
		return nil, domain.ErrBudgetNotFound
	}
	return r.GetByID(ctx, budget.UserID, budget.ID)
}

// Delete removes a budget
func (r *BudgetRepository) Delete(ctx context.Context, userID uuid.UUID, id int32) error {
	rows, err := r.queries.DeleteBudget(ctx, sqlc.DeleteBudgetParams{
		UserID: uuidToPgUUID(userID),
		ID:     id,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrBudgetNotFound
	}
	return nil
}

func sqlcBudgetRowToDomain(row sqlc.ListBudgetsRow) *domain.Budget {
	return &domain.Budget{
		ID:            row.ID,
		UserID:        pgUUIDToUUID(row.UserID),
		CategoryID:    row.CategoryID,
		CategoryName:  row.CategoryName,
		CategoryIcon:  row.CategoryIcon,
		CategoryColor: row.CategoryColor,
		Amount:        pgNumericToDecimal(row.Amount),
		Month:         row.Month.Time,
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}
