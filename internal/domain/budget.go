package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget is a monthly spending cap for one category. Month is always the first day of the month.
type Budget struct {
	ID            int32           `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	CategoryID    int32           `json:"categoryId"`
	CategoryName  string          `json:"categoryName"`
	CategoryIcon  string          `json:"categoryIcon"`
	CategoryColor string          `json:"categoryColor"`
	Amount        decimal.Decimal `json:"amount"`
	Month         time.Time       `json:"month"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type BudgetFilters struct {
	CategoryID *int32
	Month      *time.Time
}

type BudgetRepository interface {
	Create(ctx context.Context, budget *Budget) (*Budget, error)
	GetByID(ctx context.Context, userID uuid.UUID, id int32) (*Budget, error)
	List(ctx context.Context, userID uuid.UUID, filters *BudgetFilters) ([]*Budget, error)
	Update(ctx context.Context, budget *Budget) (*Budget, error)
	Delete(ctx context.Context, userID uuid.UUID, id int32) error
}
