package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/util"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// TransactionService handles transaction business logic
type TransactionService struct {
	transactionRepo domain.TransactionRepository
	categoryRepo    domain.CategoryRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo domain.TransactionRepository, categoryRepo domain.CategoryRepository) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// TransactionInput holds transaction fields from a create or update request. Nil fields were not sent.
// CategorySet distinguishes an explicit null category from an absent one.
type TransactionInput struct {
	CategoryID  *int32
	CategorySet bool
	Amount      *decimal.Decimal
	Type        *domain.TransactionType
	Description *string
	Date        *time.Time
}

// ListTransactions retrieves the user's transactions with filters and pagination
func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, filters *domain.TransactionFilters) (*domain.PaginatedTransactions, error) {
	if filters == nil {
		filters = &domain.TransactionFilters{}
	}
	if filters.Type != nil && !filters.Type.IsValid() {
		return nil, domain.ErrInvalidTransactionType
	}
	filters.Search = strings.TrimSpace(filters.Search)
	return s.transactionRepo.List(ctx, userID, filters)
}

// CreateTransaction records a new transaction owned by the user
func (s *TransactionService) CreateTransaction(ctx context.Context, userID uuid.UUID, input TransactionInput) (*domain.Transaction, error) {
	if input.Amount == nil {
		return nil, domain.ErrAmountRequired
	}
	if input.Type == nil {
		return nil, domain.ErrTypeRequired
	}
	if input.Date == nil {
		return nil, domain.ErrDateRequired
	}

	transaction := &domain.Transaction{UserID: userID}
	if err := s.applyInput(ctx, userID, transaction, input); err != nil {
		return nil, err
	}

	created, err := s.transactionRepo.Create(ctx, transaction)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("user_id", userID.String()).
		Int32("transaction_id", created.ID).
		Str("type", string(created.Type)).
		Str("amount", created.Amount.StringFixed(2)).
		Msg("Transaction created")
	return created, nil
}

// GetTransaction retrieves one of the user's transactions
func (s *TransactionService) GetTransaction(ctx context.Context, userID uuid.UUID, id int32) (*domain.Transaction, error) {
	return s.transactionRepo.GetByID(ctx, userID, id)
}

// UpdateTransaction merges input onto the transaction. A full update requires amount, type and date.
func (s *TransactionService) UpdateTransaction(ctx context.Context, userID uuid.UUID, id int32, input TransactionInput, partial bool) (*domain.Transaction, error) {
	if !partial {
		if input.Amount == nil {
			return nil, domain.ErrAmountRequired
		}
		if input.Type == nil {
			return nil, domain.ErrTypeRequired
		}
		if input.Date == nil {
			return nil, domain.ErrDateRequired
		}
	}

	transaction, err := s.transactionRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyInput(ctx, userID, transaction, input); err != nil {
		return nil, err
	}

	return s.transactionRepo.Update(ctx, transaction)
}

// DeleteTransaction removes one of the user's transactions
func (s *TransactionService) DeleteTransaction(ctx context.Context, userID uuid.UUID, id int32) error {
	if err := s.transactionRepo.Delete(ctx, userID, id); err != nil {
		return err
	}
	log.Info().Str("user_id", userID.String()).Int32("transaction_id", id).Msg("Transaction deleted")
	return nil
}

func (s *TransactionService) applyInput(ctx context.Context, userID uuid.UUID, transaction *domain.Transaction, input TransactionInput) error {
	if input.Amount != nil {
		if err := domain.ValidateTransactionAmount(*input.Amount); err != nil {
			return err
		}
		transaction.Amount = *input.Amount
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return domain.ErrInvalidTransactionType
		}
		transaction.Type = *input.Type
	}
	if input.Date != nil {
		transaction.Date = util.DateOf(*input.Date)
	}
	if input.Description != nil {
		transaction.Description = strings.TrimSpace(*input.Description)
	}
	if input.CategorySet || input.CategoryID != nil {
		if input.CategoryID != nil {
			if err := ensureCategoryOwned(ctx, s.categoryRepo, userID, *input.CategoryID); err != nil {
				return err
			}
		}
		transaction.CategoryID = input.CategoryID
	}
	return nil
}

// ensureCategoryOwned maps a missing or foreign category to a field error rather than a 404
func ensureCategoryOwned(ctx context.Context, categoryRepo domain.CategoryRepository, userID uuid.UUID, categoryID int32) error {
	_, err := categoryRepo.GetByID(ctx, userID, categoryID)
	if errors.Is(err, domain.ErrCategoryNotFound) {
		return domain.ErrInvalidCategory
	}
	return err
}
