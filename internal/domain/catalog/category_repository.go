package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopadmin/backend/internal/domain/shared"
)

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindByCode finds a category by its code
	FindByCode(ctx context.Context, code string) (*Category, error)

	// FindAll finds all categories matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)

	// FindChildren finds all direct children of a category
	FindChildren(ctx context.Context, parentID uuid.UUID) ([]Category, error)

	// FindRootCategories finds all root categories
	FindRootCategories(ctx context.Context) ([]Category, error)

	// FindDescendants finds all descendants of a category (using materialized path)
	FindDescendants(ctx context.Context, categoryID uuid.UUID) ([]Category, error)

	// Save creates or updates a category
	Save(ctx context.Context, category *Category) error

	// Delete deletes a category
	Delete(ctx context.Context, id uuid.UUID) error

	// HasChildren checks if a category has any children
	HasChildren(ctx context.Context, categoryID uuid.UUID) (bool, error)

	// HasProducts checks if a category has any associated products
	HasProducts(ctx context.Context, categoryID uuid.UUID) (bool, error)

	// Count counts categories matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByCode checks if a category with the given code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
