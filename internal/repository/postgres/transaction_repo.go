package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/dafibh/dompet/dompet-backend/db/sqlc"
	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TransactionRepository implements domain.TransactionRepository using PostgreSQL
type TransactionRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

// transactionOrderColumns whitelists the sortable columns
var transactionOrderColumns = map[string]string{
	domain.TransactionOrderDate:      "t.date",
	domain.TransactionOrderAmount:    "t.amount",
	domain.TransactionOrderCreatedAt: "t.created_at",
}

const transactionSelect = `SELECT t.id, t.user_id, t.category_id, t.amount, t.type, t.description, t.date,
       t.created_at, t.updated_at,
       c.name AS category_name, c.icon AS category_icon, c.color AS category_color
FROM transactions t
LEFT JOIN categories c ON c.id = t.category_id`

// Create creates a new transaction and returns it with its category display fields
func (r *TransactionRepository) Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	amount, err := decimalToPgNumeric(transaction.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	id, err := r.queries.CreateTransaction(ctx, sqlc.CreateTransactionParams{
		UserID:      uuidToPgUUID(transaction.UserID),
		CategoryID:  int32PtrToPgInt4(transaction.CategoryID),
		Amount:      amount,
		Type:        string(transaction.Type),
		Description: transaction.Description,
		Date:        dateToPgDate(transaction.Date),
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, transaction.UserID, id)
}

// GetByID retrieves a transaction by its ID for a user
func (r *TransactionRepository) GetByID(ctx context.Context, userID uuid.UUID, id int32) (*domain.Transaction, error) {
	row, err := r.queries.GetTransactionByID(ctx, sqlc.GetTransactionByIDParams{
		UserID: uuidToPgUUID(userID),
		ID:     id,
	})
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return sqlcTransactionRowToDomain(row), nil
}

// List retrieves a user's transactions with optional filters, ordering and pagination
func (r *TransactionRepository) List(ctx context.Context, userID uuid.UUID, filters *domain.TransactionFilters) (*domain.PaginatedTransactions, error) {
	if filters == nil {
		filters = &domain.TransactionFilters{}
	}

	// Set default pagination values
	page := int32(1)
	pageSize := int32(domain.DefaultPageSize)
	if filters.Page > 0 {
		page = filters.Page
	}
	if filters.PageSize > 0 {
		pageSize = filters.PageSize
		if pageSize > domain.MaxPageSize {
			pageSize = domain.MaxPageSize
		}
	}
	offset := (page - 1) * pageSize

	where, args, err := buildTransactionWhere(userID, filters)
	if err != nil {
		return nil, err
	}

	var totalItems int64
	countSQL := "SELECT COUNT(*) FROM transactions t WHERE " + where
	if err := r.pool.QueryRow(ctx, countSQL, args...).Scan(&totalItems); err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	listSQL := fmt.Sprintf("%s WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		transactionSelect, where, buildTransactionOrderBy(filters.Ordering), len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.pool.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	data := make([]*domain.Transaction, 0)
	for rows.Next() {
		var i sqlc.GetTransactionByIDRow
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.CategoryID,
			&i.Amount,
			&i.Type,
			&i.Description,
			&i.Date,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.CategoryName,
			&i.CategoryIcon,
			&i.CategoryColor,
		); err != nil {
			return nil, err
		}
		data = append(data, sqlcTransactionRowToDomain(i))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	totalPages := int32(totalItems / int64(pageSize))
	if totalItems%int64(pageSize) > 0 {
		totalPages++
	}

	return &domain.PaginatedTransactions{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}, nil
}

// Update replaces a transaction's mutable fields
func (r *TransactionRepository) Update(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	amount, err := decimalToPgNumeric(transaction.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	rows, err := r.queries.UpdateTransaction(ctx, sqlc.UpdateTransactionParams{
		UserID:      uuidToPgUUID(transaction.UserID),
		ID:          transaction.ID,
		CategoryID:  int32PtrToPgInt4(transaction.CategoryID),
		Amount:      amount,
		Type:        string(transaction.Type),
		Description: transaction.Description,
		Date:        dateToPgDate(transaction.Date),
	})
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, domain.ErrTransactionNotFound
	}
	return r.GetByID(ctx, transaction.UserID, transaction.ID)
}

// Delete removes a transaction
func (r *TransactionRepository) Delete(ctx context.Context, userID uuid.UUID, id int32) error {
	rows, err := r.queries.DeleteTransaction(ctx, sqlc.DeleteTransactionParams{
		UserID: uuidToPgUUID(userID),
		ID:     id,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// Helper functions

// buildTransactionWhere returns the WHERE clause (without the keyword) and its positional args
func buildTransactionWhere(userID uuid.UUID, f *domain.TransactionFilters) (string, []any, error) {
	conds := []string{"t.user_id = $1"}
	args := []any{uuidToPgUUID(userID)}

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Type != nil {
		add("t.type = $%d", string(*f.Type))
	}
	if f.CategoryID != nil {
		add("t.category_id = $%d", *f.CategoryID)
	}
	if f.Date != nil {
		add("t.date = $%d", dateToPgDate(*f.Date))
	}
	if f.DateFrom != nil {
		add("t.date >= $%d", dateToPgDate(*f.DateFrom))
	}
	if f.DateTo != nil {
		add("t.date <= $%d", dateToPgDate(*f.DateTo))
	}
	if f.AmountMin != nil {
		n, err := decimalToPgNumeric(*f.AmountMin)
		if err != nil {
			return "", nil, fmt.Errorf("invalid amount_min: %w", err)
		}
		add("t.amount >= $%d", n)
	}
	if f.AmountMax != nil {
		n, err := decimalToPgNumeric(*f.AmountMax)
		if err != nil {
			return "", nil, fmt.Errorf("invalid amount_max: %w", err)
		}
		add("t.amount <= $%d", n)
	}
	if f.Search != "" {
		add("t.description ILIKE '%%' || $%d::text || '%%'", escapeLike(f.Search))
	}

	return strings.Join(conds, " AND "), args, nil
}

func buildTransactionOrderBy(ordering []domain.TransactionOrder) string {
	if len(ordering) == 0 {
		ordering = domain.DefaultTransactionOrdering
	}
	parts := make([]string, 0, len(ordering)+1)
	for _, o := range ordering {
		col, ok := transactionOrderColumns[o.Field]
		if !ok {
			continue
		}
		if o.Desc {
			parts = append(parts, col+" DESC")
		} else {
			parts = append(parts, col+" ASC")
		}
	}
	if len(parts) == 0 {
		return buildTransactionOrderBy(domain.DefaultTransactionOrdering)
	}
	// Stable paging across equal sort keys
	parts = append(parts, "t.id DESC")
	return strings.Join(parts, ", ")
}

func sqlcTransactionRowToDomain(row sqlc.GetTransactionByIDRow) *domain.Transaction {
	return &domain.Transaction{
		ID:            row.ID,
		UserID:        pgUUIDToUUID(row.UserID),
		CategoryID:    pgInt4ToInt32Ptr(row.CategoryID),
		CategoryName:  pgTextToStringPtr(row.CategoryName),
		CategoryIcon:  pgTextToStringPtr(row.CategoryIcon),
		CategoryColor: pgTextToStringPtr(row.CategoryColor),
		Amount:        pgNumericToDecimal(row.Amount),
		Type:          domain.TransactionType(row.Type),
		Description:   row.Description,
		Date:          row.Date.Time,
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}
