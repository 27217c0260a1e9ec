package service

import (
	"context"
	"time"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/util"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// BudgetService handles budget business logic
type BudgetService struct {
	budgetRepo   domain.BudgetRepository
	categoryRepo domain.CategoryRepository
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgetRepo domain.BudgetRepository, categoryRepo domain.CategoryRepository) *BudgetService {
	return &BudgetService{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// BudgetInput holds budget fields from a create or update request. Nil fields were not sent.
type BudgetInput struct {
	CategoryID *int32
	Amount     *decimal.Decimal
	Month      *time.Time
}

// ListBudgets retrieves the user's budgets. A month filter matches the whole month.
func (s *BudgetService) ListBudgets(ctx context.Context, userID uuid.UUID, filters *domain.BudgetFilters) ([]*domain.Budget, error) {
	if filters != nil && filters.Month != nil {
		month := util.FirstOfMonth(*filters.Month)
		filters.Month = &month
	}
	return s.budgetRepo.List(ctx, userID, filters)
}

// CreateBudget creates a budget owned by the user for category and month
func (s *BudgetService) CreateBudget(ctx context.Context, userID uuid.UUID, input BudgetInput) (*domain.Budget, error) {
	if input.CategoryID == nil {
		return nil, domain.ErrCategoryRequired
	}
	if input.Amount == nil {
		return nil, domain.ErrAmountRequired
	}
	if input.Month == nil {
		return nil, domain.ErrMonthRequired
	}

	budget := &domain.Budget{UserID: userID}
	if err := s.applyInput(ctx, userID, budget, input); err != nil {
		return nil, err
	}

	created, err := s.budgetRepo.Create(ctx, budget)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("user_id", userID.String()).
		Int32("budget_id", created.ID).
		Str("month", created.Month.Format(util.DateLayout)).
		Msg("Budget created")
	return created, nil
}

// GetBudget retrieves one of the user's budgets
func (s *BudgetService) GetBudget(ctx context.Context, userID uuid.UUID, id int32) (*domain.Budget, error) {
	return s.budgetRepo.GetByID(ctx, userID, id)
}

// UpdateBudget merges input onto the budget. A full update requires category, amount and month.
func (s *BudgetService) UpdateBudget(ctx context.Context, userID uuid.UUID, id int32, input BudgetInput, partial bool) (*domain.Budget, error) {
	if !partial {
		if input.CategoryID == nil {
			return nil, domain.ErrCategoryRequired
		}
		if input.Amount == nil {
			return nil, domain.ErrAmountRequired
		}
		if input.Month == nil {
			return nil, domain.ErrMonthRequired
		}
	}

	budget, err := s.budgetRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyInput(ctx, userID, budget, input); err != nil {
		return nil, err
	}

	return s.budgetRepo.Update(ctx, budget)
}

// DeleteBudget removes one of the user's budgets
func (s *BudgetService) DeleteBudget(ctx context.Context, userID uuid.UUID, id int32) error {
	if err := s.budgetRepo.Delete(ctx, userID, id); err != nil {
		return err
	}
	log.Info().Str("user_id", userID.String()).Int32("budget_id", id).Msg("Budget deleted")
	return nil
}

func (s *BudgetService) applyInput(ctx context.Context, userID uuid.UUID, budget *domain.Budget, input BudgetInput) error {
	if input.CategoryID != nil {
		if err := ensureCategoryOwned(ctx, s.categoryRepo, userID, *input.CategoryID); err != nil {
			return err
		}
		budget.CategoryID = *input.CategoryID
	}
	if input.Amount != nil {
		if err := domain.ValidateBudgetAmount(*input.Amount); err != nil {
			return err
		}
		budget.Amount = *input.Amount
	}
	if input.Month != nil {
		budget.Month = util.FirstOfMonth(*input.Month)
	}
	return nil
}
