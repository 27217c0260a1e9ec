package service

import (
	"context"
	"testing"
	"time"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func timePtr(t time.Time) *time.Time { return &t }

func int32Ptr(v int32) *int32 { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func setupTransactionService(t *testing.T) (*TransactionService, *testutil.MockStore, uuid.UUID, *domain.Category) {
	t.Helper()
	store := testutil.NewMockStore()
	userID := uuid.New()
	category := &domain.Category{UserID: userID, Name: "Food", Type: domain.TransactionTypeExpense, Icon: "🍔", Color: "#F59E0B"}
	store.Categories.AddCategory(category)
	return NewTransactionService(store.Transactions, store.Categories), store, userID, category
}

func TestCreateTransaction_Success(t *testing.T) {
	s, _, userID, category := setupTransactionService(t)

	tx, err := s.CreateTransaction(context.Background(), userID, TransactionInput{
		CategoryID:  int32Ptr(category.ID),
		Amount:      decPtr("150.50"),
		Type:        typePtr(domain.TransactionTypeExpense),
		Description: strPtr(" Lunch "),
		Date:        timePtr(time.Date(2026, 3, 14, 18, 30, 0, 0, time.Local)),
	})
	require.NoError(t, err)

	assert.Equal(t, userID, tx.UserID)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("150.50")))
	assert.Equal(t, "Lunch", tx.Description)
	assert.Equal(t, date(2026, 3, 14), tx.Date)
	require.NotNil(t, tx.CategoryName)
	assert.Equal(t, "Food", *tx.CategoryName)
	assert.Equal(t, "🍔", *tx.CategoryIcon)
}

func TestCreateTransaction_ValidationErrors(t *testing.T) {
	validDate := timePtr(date(2026, 3, 14))
	expense := typePtr(domain.TransactionTypeExpense)

	tests := []struct {
		name    string
		input   TransactionInput
		wantErr error
	}{
		{"missing amount", TransactionInput{Type: expense, Date: validDate}, domain.ErrAmountRequired},
		{"missing type", TransactionInput{Amount: decPtr("10"), Date: validDate}, domain.ErrTypeRequired},
		{"missing date", TransactionInput{Amount: decPtr("10"), Type: expense}, domain.ErrDateRequired},
		{"zero amount", TransactionInput{Amount: decPtr("0"), Type: expense, Date: validDate}, domain.ErrInvalidAmount},
		{"negative amount", TransactionInput{Amount: decPtr("-5"), Type: expense, Date: validDate}, domain.ErrInvalidAmount},
		{"three decimals", TransactionInput{Amount: decPtr("1.005"), Type: expense, Date: validDate}, domain.ErrAmountPrecision},
		{"too many digits", TransactionInput{Amount: decPtr("100000000000"), Type: expense, Date: validDate}, domain.ErrAmountPrecision},
		{"invalid type", TransactionInput{Amount: decPtr("10"), Type: typePtr("refund"), Date: validDate}, domain.ErrInvalidTransactionType},
		{"unknown category", TransactionInput{Amount: decPtr("10"), Type: expense, Date: validDate, CategoryID: int32Ptr(999)}, domain.ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, store, userID, _ := setupTransactionService(t)

			_, err := s.CreateTransaction(context.Background(), userID, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, store.Transactions.Transactions)
		})
	}
}

func TestCreateTransaction_ForeignCategoryRejected(t *testing.T) {
	s, store, _, category := setupTransactionService(t)
	otherUser := uuid.New()

	_, err := s.CreateTransaction(context.Background(), otherUser, TransactionInput{
		CategoryID: int32Ptr(category.ID),
		Amount:     decPtr("10"),
		Type:       typePtr(domain.TransactionTypeExpense),
		Date:       timePtr(date(2026, 3, 14)),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
	assert.Empty(t, store.Transactions.Transactions)
}

func TestGetTransaction_OtherUserIsNotFound(t *testing.T) {
	s, store, userID, _ := setupTransactionService(t)
	tx := &domain.Transaction{UserID: userID, Amount: decimal.NewFromInt(10), Type: domain.TransactionTypeIncome}
	store.Transactions.AddTransaction(tx)

	_, err := s.GetTransaction(context.Background(), uuid.New(), tx.ID)
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)

	err = s.DeleteTransaction(context.Background(), uuid.New(), tx.ID)
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
	assert.Len(t, store.Transactions.Transactions, 1)
}

func TestUpdateTransaction(t *testing.T) {
	s, store, userID, category := setupTransactionService(t)
	categoryID := category.ID
	tx := &domain.Transaction{
		UserID:      userID,
		CategoryID:  &categoryID,
		Amount:      decimal.NewFromInt(200),
		Type:        domain.TransactionTypeExpense,
		Description: "Dinner",
		Date:        date(2026, 3, 1),
	}
	store.Transactions.AddTransaction(tx)
	ctx := context.Background()

	t.Run("partial amount only", func(t *testing.T) {
		updated, err := s.UpdateTransaction(ctx, userID, tx.ID, TransactionInput{Amount: decPtr("250")}, true)
		require.NoError(t, err)
		assert.True(t, updated.Amount.Equal(decimal.NewFromInt(250)))
		assert.Equal(t, "Dinner", updated.Description)
		require.NotNil(t, updated.CategoryID)
		assert.Equal(t, categoryID, *updated.CategoryID)
	})

	t.Run("partial rejects non-positive amount", func(t *testing.T) {
		_, err := s.UpdateTransaction(ctx, userID, tx.ID, TransactionInput{Amount: decPtr("0")}, true)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("explicit null clears category", func(t *testing.T) {
		updated, err := s.UpdateTransaction(ctx, userID, tx.ID, TransactionInput{CategorySet: true}, true)
		require.NoError(t, err)
		assert.Nil(t, updated.CategoryID)
		assert.Nil(t, updated.CategoryName)
	})

	t.Run("full requires amount type and date", func(t *testing.T) {
		_, err := s.UpdateTransaction(ctx, userID, tx.ID, TransactionInput{Amount: decPtr("5"), Type: typePtr(domain.TransactionTypeIncome)}, false)
		assert.ErrorIs(t, err, domain.ErrDateRequired)
	})

	t.Run("other user", func(t *testing.T) {
		_, err := s.UpdateTransaction(ctx, uuid.New(), tx.ID, TransactionInput{Amount: decPtr("5")}, true)
		assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
	})
}

func TestListTransactions_FiltersAndPagination(t *testing.T) {
	s, store, userID, category := setupTransactionService(t)
	categoryID := category.ID
	for i := 1; i <= 25; i++ {
		store.Transactions.AddTransaction(&domain.Transaction{
			UserID:      userID,
			CategoryID:  &categoryID,
			Amount:      decimal.NewFromInt(int64(i)),
			Type:        domain.TransactionTypeExpense,
			Description: "Coffee",
			Date:        date(2026, 3, i),
		})
	}
	store.Transactions.AddTransaction(&domain.Transaction{
		UserID: userID, Amount: decimal.NewFromInt(5000), Type: domain.TransactionTypeIncome,
		Description: "Salary", Date: date(2026, 3, 1),
	})
	store.Transactions.AddTransaction(&domain.Transaction{
		UserID: uuid.New(), Amount: decimal.NewFromInt(1), Type: domain.TransactionTypeExpense, Date: date(2026, 3, 1),
	})
	ctx := context.Background()

	t.Run("default page", func(t *testing.T) {
		result, err := s.ListTransactions(ctx, userID, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(26), result.TotalItems)
		assert.Equal(t, int32(2), result.TotalPages)
		assert.Len(t, result.Data, domain.DefaultPageSize)
		assert.Equal(t, date(2026, 3, 25), result.Data[0].Date)
	})

	t.Run("type filter", func(t *testing.T) {
		result, err := s.ListTransactions(ctx, userID, &domain.TransactionFilters{Type: typePtr(domain.TransactionTypeIncome)})
		require.NoError(t, err)
		require.Len(t, result.Data, 1)
		assert.Equal(t, "Salary", result.Data[0].Description)
	})

	t.Run("date range and amount bounds", func(t *testing.T) {
		result, err := s.ListTransactions(ctx, userID, &domain.TransactionFilters{
			DateFrom:  timePtr(date(2026, 3, 10)),
			DateTo:    timePtr(date(2026, 3, 20)),
			AmountMin: decPtr("12"),
			AmountMax: decPtr("15"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(4), result.TotalItems)
	})

	t.Run("search and amount ordering", func(t *testing.T) {
		result, err := s.ListTransactions(ctx, userID, &domain.TransactionFilters{
			Search:   "  coffee ",
			Ordering: []domain.TransactionOrder{{Field: domain.TransactionOrderAmount}},
			Page:     2,
			PageSize: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(25), result.TotalItems)
		assert.Equal(t, int32(3), result.TotalPages)
		require.Len(t, result.Data, 10)
		assert.True(t, result.Data[0].Amount.Equal(decimal.NewFromInt(11)))
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		result, err := s.ListTransactions(ctx, userID, &domain.TransactionFilters{Page: 9})
		require.NoError(t, err)
		assert.Empty(t, result.Data)
		assert.Equal(t, int64(26), result.TotalItems)
	})

	t.Run("invalid type filter", func(t *testing.T) {
		_, err := s.ListTransactions(ctx, userID, &domain.TransactionFilters{Type: typePtr("loan")})
		assert.ErrorIs(t, err, domain.ErrInvalidTransactionType)
	})
}
