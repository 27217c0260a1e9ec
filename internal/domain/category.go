package domain

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Category display defaults
const (
	DefaultCategoryIcon  = "📁"
	DefaultCategoryColor = "#3B82F6"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// IsValidColor reports whether s is a #RRGGBB hex color
func IsValidColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// Category is a user-owned label for transactions
type Category struct {
	ID        int32           `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	Name      string          `json:"name"`
	Type      TransactionType `json:"type"`
	Icon      string          `json:"icon"`
	Color     string          `json:"color"`
	IsDefault bool            `json:"isDefault"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Category list orderings
const (
	CategoryOrderName          = "name"
	CategoryOrderNameDesc      = "-name"
	CategoryOrderCreatedAt     = "created_at"
	CategoryOrderCreatedAtDesc = "-created_at"
)

// IsValidCategoryOrdering reports whether ordering is one of the supported category orderings
func IsValidCategoryOrdering(ordering string) bool {
	switch ordering {
	case CategoryOrderName, CategoryOrderNameDesc, CategoryOrderCreatedAt, CategoryOrderCreatedAtDesc:
		return true
	}
	return false
}

// CategoryFilters narrows a category listing
type CategoryFilters struct {
	Search   string
	Ordering string
}

// CategoryRepository defines the interface for category persistence operations
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) (*Category, error)
	GetByID(ctx context.Context, userID uuid.UUID, id int32) (*Category, error)
	List(ctx context.Context, userID uuid.UUID, filters *CategoryFilters) ([]*Category, error)
	Update(ctx context.Context, category *Category) (*Category, error)
	Delete(ctx context.Context, userID uuid.UUID, id int32) error
}
