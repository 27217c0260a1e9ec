package postgres

import (
	"context"

	"github.com/dafibh/dompet/dompet-backend/db/sqlc"
	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryRepository implements domain.CategoryRepository using PostgreSQL
type CategoryRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	created, err := r.queries.CreateCategory(ctx, sqlc.CreateCategoryParams{
		UserID:    uuidToPgUUID(category.UserID),
		Name:      category.Name,
		Type:      string(category.Type),
		Icon:      category.Icon,
		Color:     category.Color,
		IsDefault: category.IsDefault,
	})
	if err != nil {
		// Check for unique constraint violation
		if uniqueViolationConstraint(err) == constraintCategoriesNameType {
			return nil, domain.ErrCategoryAlreadyExists
		}
		return nil, err
	}
	return sqlcCategoryToDomain(created), nil
}

// GetByID retrieves a category by its ID for a user
func (r *CategoryRepository) GetByID(ctx context.Context, userID uuid.UUID, id int32) (*domain.Category, error) {
	category, err := r.queries.GetCategoryByID(ctx, sqlc.GetCategoryByIDParams{
		UserID: uuidToPgUUID(userID),
		ID:     id,
	})
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return sqlcCategoryToDomain(category), nil
}

// List retrieves a user's categories, optionally filtered by name and ordered
func (r *CategoryRepository) List(ctx context.Context, userID uuid.UUID, filters *domain.CategoryFilters) ([]*domain.Category, error) {
	params := sqlc.ListCategoriesParams{
		UserID: uuidToPgUUID(userID),
		Sort:   domain.CategoryOrderName,
	}
	if filters != nil {
		params.Search = escapeLike(filters.Search)
		if filters.Ordering != "" {
			params.Sort = filters.Ordering
		}
	}

	categories, err := r.queries.ListCategories(ctx, params)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.Category, len(categories))
	for i, c := range categories {
		result[i] = sqlcCategoryToDomain(c)
	}
	return result, nil
}

// Update replaces a category's mutable fields
func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	updated, err := r.queries.UpdateCategory(ctx, sqlc.UpdateCategoryParams{
		UserID:    uuidToPgUUID(category.UserID),
		ID:        category.ID,
		Name:      category.Name,
		Type:      string(category.Type),
		Icon:      category.Icon,
		Color:     category.Color,
		IsDefault: category.IsDefault,
	})
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrCategoryNotFound
		}
		if uniqueViolationConstraint(err) == constraintCategoriesNameType {
			return nil, domain.ErrCategoryAlreadyExists
		}
		return nil, err
	}
	return sqlcCategoryToDomain(updated), nil
}

// Delete removes a category. Its transactions are detached and its budgets removed by the foreign keys.
func (r *CategoryRepository) Delete(ctx context.Context, userID uuid.UUID, id int32) error {
	rows, err := r.queries.DeleteCategory(ctx, sqlc.DeleteCategoryParams{
		UserID: uuidToPgUUID(userID),
		ID:     id,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func sqlcCategoryToDomain(c sqlc.Category) *domain.Category {
	return &domain.Category{
		ID:        c.ID,
		UserID:    pgUUIDToUUID(c.UserID),
		Name:      c.Name,
		Type:      domain.TransactionType(c.Type),
		Icon:      c.Icon,
		Color:     c.Color,
		IsDefault: c.IsDefault,
		CreatedAt: c.CreatedAt.Time,
	}
}
