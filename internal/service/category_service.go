package service

import (
	"context"
	"strings"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CategoryService handles category business logic
type CategoryService struct {
	categoryRepo domain.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CategoryInput holds category fields from a create or update request. Nil fields were not sent.
type CategoryInput struct {
	Name      *string
	Type      *domain.TransactionType
	Icon      *string
	Color     *string
	IsDefault *bool
}

// ListCategories retrieves the user's categories. Unknown orderings fall back to name.
func (s *CategoryService) ListCategories(ctx context.Context, userID uuid.UUID, filters *domain.CategoryFilters) ([]*domain.Category, error) {
	if filters == nil {
		filters = &domain.CategoryFilters{}
	}
	filters.Search = strings.TrimSpace(filters.Search)
	if !domain.IsValidCategoryOrdering(filters.Ordering) {
		filters.Ordering = domain.CategoryOrderName
	}
	return s.categoryRepo.List(ctx, userID, filters)
}

// CreateCategory creates a new category owned by the user
func (s *CategoryService) CreateCategory(ctx context.Context, userID uuid.UUID, input CategoryInput) (*domain.Category, error) {
	if input.Name == nil {
		return nil, domain.ErrNameRequired
	}
	if input.Type == nil {
		return nil, domain.ErrTypeRequired
	}

	category := &domain.Category{
		UserID: userID,
		Icon:   domain.DefaultCategoryIcon,
		Color:  domain.DefaultCategoryColor,
	}
	if err := applyCategoryInput(category, input); err != nil {
		return nil, err
	}

	created, err := s.categoryRepo.Create(ctx, category)
	if err != nil {
		return nil, err
	}
	log.Info().Str("user_id", userID.String()).Int32("category_id", created.ID).Msg("Category created")
	return created, nil
}

// GetCategory retrieves one of the user's categories
func (s *CategoryService) GetCategory(ctx context.Context, userID uuid.UUID, id int32) (*domain.Category, error) {
	return s.categoryRepo.GetByID(ctx, userID, id)
}

// UpdateCategory merges input onto the category. A full update requires name and type.
func (s *CategoryService) UpdateCategory(ctx context.Context, userID uuid.UUID, id int32, input CategoryInput, partial bool) (*domain.Category, error) {
	if !partial {
		if input.Name == nil {
			return nil, domain.ErrNameRequired
		}
		if input.Type == nil {
			return nil, domain.ErrTypeRequired
		}
	}

	category, err := s.categoryRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := applyCategoryInput(category, input); err != nil {
		return nil, err
	}

	return s.categoryRepo.Update(ctx, category)
}

// DeleteCategory removes a category. Its transactions become uncategorized and its budgets are removed.
func (s *CategoryService) DeleteCategory(ctx context.Context, userID uuid.UUID, id int32) error {
	if err := s.categoryRepo.Delete(ctx, userID, id); err != nil {
		return err
	}
	log.Info().Str("user_id", userID.String()).Int32("category_id", id).Msg("Category deleted")
	return nil
}

func applyCategoryInput(category *domain.Category, input CategoryInput) error {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return domain.ErrNameRequired
		}
		if len([]rune(name)) > domain.MaxCategoryNameLength {
			return domain.ErrNameTooLong
		}
		category.Name = name
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return domain.ErrInvalidTransactionType
		}
		category.Type = *input.Type
	}
	if input.Icon != nil {
		icon := strings.TrimSpace(*input.Icon)
		if icon == "" {
			icon = domain.DefaultCategoryIcon
		}
		if len([]rune(icon)) > domain.MaxCategoryIconLength {
			return domain.ErrIconTooLong
		}
		category.Icon = icon
	}
	if input.Color != nil {
		color := strings.TrimSpace(*input.Color)
		if color == "" {
			color = domain.DefaultCategoryColor
		}
		if !domain.IsValidColor(color) {
			return domain.ErrInvalidColor
		}
		category.Color = color
	}
	if input.IsDefault != nil {
		category.IsDefault = *input.IsDefault
	}
	return nil
}
