package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// CategoryService handles category-related business operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	productRepo  catalog.ProductRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(
	categoryRepo catalog.CategoryRepository,
	productRepo catalog.ProductRepository,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	exists, err := s.categoryRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this code already exists")
	}

	var category *catalog.Category

	if req.ParentID != nil {
		parent, err := s.categoryRepo.FindByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_PARENT", "Parent category not found")
			}
			return nil, err
		}

		category, err = catalog.NewChildCategory(req.Code, req.Name, parent)
		if err != nil {
			return nil, err
		}
	} else {
		category, err = catalog.NewCategory(req.Code, req.Name)
		if err != nil {
			return nil, err
		}
	}

	if req.Description != "" {
		if err := category.Update(req.Name, req.Description); err != nil {
			return nil, err
		}
	}
	if req.SortOrder != nil {
		category.SetSortOrder(*req.SortOrder)
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponse(category), nil
}

// List retrieves categories matching the filter
func (s *CategoryService) List(ctx context.Context, filter CategoryListFilter) ([]CategoryResponse, int64, error) {
	domainFilter := shared.Filter{
		Search:   filter.Search,
		OrderBy:  "sort_order",
		OrderDir: "asc",
		Filters:  make(map[string]interface{}),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}

	categories, err := s.categoryRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.categoryRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		responses[i] = *ToCategoryResponse(&cat)
	}
	return responses, total, nil
}

// Update updates an existing category
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		description := req.Description
		if description == "" {
			description = category.Description
		}
		if err := category.Update(req.Name, description); err != nil {
			return nil, err
		}
	} else if req.Description != "" {
		if err := category.Update(category.Name, req.Description); err != nil {
			return nil, err
		}
	}
	if req.SortOrder != nil {
		category.SetSortOrder(*req.SortOrder)
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	return ToCategoryResponse(category), nil
}

// Activate activates a category
func (s *CategoryService) Activate(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	return s.transition(ctx, id, (*catalog.Category).Activate)
}

// Deactivate deactivates a category
func (s *CategoryService) Deactivate(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	return s.transition(ctx, id, (*catalog.Category).Deactivate)
}

func (s *CategoryService) transition(ctx context.Context, id uuid.UUID, op func(*catalog.Category) error) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := op(category); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	return ToCategoryResponse(category), nil
}

// Delete deletes a category that has neither children nor products
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	hasChildren, err := s.categoryRepo.HasChildren(ctx, category.ID)
	if err != nil {
		return err
	}
	if hasChildren {
		return shared.NewDomainError("HAS_CHILDREN", "Cannot delete category with children")
	}

	hasProducts, err := s.categoryRepo.HasProducts(ctx, category.ID)
	if err != nil {
		return err
	}
	if hasProducts {
		return shared.NewDomainError("HAS_PRODUCTS", "Cannot delete category with associated products")
	}

	return s.categoryRepo.Delete(ctx, id)
}

// RefreshProductCounts recomputes the per-category product counters from the
// product table. Used after bulk product changes so tree payloads stay honest.
func (s *CategoryService) RefreshProductCounts(ctx context.Context) error {
	counts, err := s.productRepo.CountByCategory(ctx)
	if err != nil {
		return err
	}

	categories, err := s.categoryRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		return err
	}

	for i := range categories {
		category := &categories[i]
		category.SetProductCount(int(counts[category.ID]))
		if err := s.categoryRepo.Save(ctx, category); err != nil {
			return err
		}
	}
	return nil
}
