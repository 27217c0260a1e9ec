package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid reports whether t is income or expense
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

type Transaction struct {
	ID            int32           `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	CategoryID    *int32          `json:"categoryId"`
	CategoryName  *string         `json:"categoryName"`
	CategoryIcon  *string         `json:"categoryIcon"`
	CategoryColor *string         `json:"categoryColor"`
	Amount        decimal.Decimal `json:"amount"`
	Type          TransactionType `json:"type"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// TransactionOrder is one ordering key of a transaction listing
type TransactionOrder struct {
	Field string
	Desc  bool
}

// Sortable transaction fields
const (
	TransactionOrderDate      = "date"
	TransactionOrderAmount    = "amount"
	TransactionOrderCreatedAt = "created_at"
)

// DefaultTransactionOrdering is most recent date first, then most recently created
var DefaultTransactionOrdering = []TransactionOrder{
	{Field: TransactionOrderDate, Desc: true},
	{Field: TransactionOrderCreatedAt, Desc: true},
}

type TransactionFilters struct {
	Type       *TransactionType
	CategoryID *int32
	Date       *time.Time
	DateFrom   *time.Time
	DateTo     *time.Time
	AmountMin  *decimal.Decimal
	AmountMax  *decimal.Decimal
	Search     string
	Ordering   []TransactionOrder
	Page       int32
	PageSize   int32
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type PaginatedTransactions struct {
	Data       []*Transaction `json:"data"`
	Page       int32          `json:"page"`
	PageSize   int32          `json:"pageSize"`
	TotalItems int64          `json:"totalItems"`
	TotalPages int32          `json:"totalPages"`
}

type TransactionRepository interface {
	Create(ctx context.Context, transaction *Transaction) (*Transaction, error)
	GetByID(ctx context.Context, userID uuid.UUID, id int32) (*Transaction, error)
	List(ctx context.Context, userID uuid.UUID, filters *TransactionFilters) (*PaginatedTransactions, error)
	Update(ctx context.Context, transaction *Transaction) (*Transaction, error)
	Delete(ctx context.Context, userID uuid.UUID, id int32) error
}
