package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopadmin/backend/internal/domain/mapping"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// GormCategoryMappingRepository implements CategoryMappingRepository using GORM
type GormCategoryMappingRepository struct {
	db *gorm.DB
}

// NewGormCategoryMappingRepository creates a new GormCategoryMappingRepository
func NewGormCategoryMappingRepository(db *gorm.DB) *GormCategoryMappingRepository {
	return &GormCategoryMappingRepository{db: db}
}

// ---------------------------------------------------------------------------
// CategoryMappingReader implementation
// ---------------------------------------------------------------------------

// FindByID finds a mapping by its ID
func (r *GormCategoryMappingRepository) FindByID(ctx context.Context, id uuid.UUID) (*mapping.CategoryMapping, error) {
	var m mapping.CategoryMapping
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindByOurCategory finds all mappings attached to one of our categories
func (r *GormCategoryMappingRepository) FindByOurCategory(ctx context.Context, ourCategoryID string) ([]mapping.CategoryMapping, error) {
	var mappings []mapping.CategoryMapping
	if err := r.db.WithContext(ctx).
		Where("our_category_id = ?", ourCategoryID).
		Order("vendor_code ASC, vendor_category_id ASC").
		Find(&mappings).Error; err != nil {
		return nil, err
	}
	return mappings, nil
}

// FindByVendorCategory finds the mapping for a vendor category, if any
func (r *GormCategoryMappingRepository) FindByVendorCategory(ctx context.Context, vendorCode, vendorCategoryID string) (*mapping.CategoryMapping, error) {
	var m mapping.CategoryMapping
	if err := r.db.WithContext(ctx).
		Where("vendor_code = ? AND vendor_category_id = ?", vendorCode, vendorCategoryID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// ---------------------------------------------------------------------------
// CategoryMappingFinder implementation
// ---------------------------------------------------------------------------

// FindAll finds all mappings with optional filters
func (r *GormCategoryMappingRepository) FindAll(ctx context.Context, filter mapping.Filter) ([]mapping.CategoryMapping, error) {
	var mappings []mapping.CategoryMapping
	query := r.scope(r.db.WithContext(ctx).Model(&mapping.CategoryMapping{}), filter)

	if err := query.Find(&mappings).Error; err != nil {
		return nil, err
	}
	return mappings, nil
}

// Count counts mappings matching the filter
func (r *GormCategoryMappingRepository) Count(ctx context.Context, filter mapping.Filter) (int64, error) {
	var count int64
	query := r.constraints(r.db.WithContext(ctx).Model(&mapping.CategoryMapping{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByVendorCategory checks whether a vendor category is already mapped
func (r *GormCategoryMappingRepository) ExistsByVendorCategory(ctx context.Context, vendorCode, vendorCategoryID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&mapping.CategoryMapping{}).
		Where("vendor_code = ? AND vendor_category_id = ?", vendorCode, vendorCategoryID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ---------------------------------------------------------------------------
// CategoryMappingWriter implementation
// ---------------------------------------------------------------------------

// Save creates or updates a mapping
func (r *GormCategoryMappingRepository) Save(ctx context.Context, m *mapping.CategoryMapping) error {
	return r.db.WithContext(ctx).Save(m).Error
}

// SaveBatch creates or updates multiple mappings
func (r *GormCategoryMappingRepository) SaveBatch(ctx context.Context, mappings []*mapping.CategoryMapping) error {
	if len(mappings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Save(mappings).Error
}

// Delete deletes a mapping
func (r *GormCategoryMappingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&mapping.CategoryMapping{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return mapping.ErrMappingNotFound
	}
	return nil
}

// DeleteByVendorCategory deletes the mapping for a vendor category
func (r *GormCategoryMappingRepository) DeleteByVendorCategory(ctx context.Context, vendorCode, vendorCategoryID string) error {
	result := r.db.WithContext(ctx).
		Delete(&mapping.CategoryMapping{}, "vendor_code = ? AND vendor_category_id = ?", vendorCode, vendorCategoryID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return mapping.ErrMappingNotFound
	}
	return nil
}

func (r *GormCategoryMappingRepository) scope(query *gorm.DB, filter mapping.Filter) *gorm.DB {
	query = r.constraints(query, filter)
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	// Stable ordering so grouped rows come out in insertion order
	return query.Order("created_at ASC, id ASC")
}

func (r *GormCategoryMappingRepository) constraints(query *gorm.DB, filter mapping.Filter) *gorm.DB {
	if filter.VendorCode != "" {
		query = query.Where("vendor_code = ?", filter.VendorCode)
	}
	if len(filter.OurCategoryIDs) > 0 {
		query = query.Where("our_category_id IN ?", filter.OurCategoryIDs)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	query = applySearch(query, filter.SearchKeyword, "our_category_name", "vendor_category_name")
	return query
}

var _ mapping.CategoryMappingRepository = (*GormCategoryMappingRepository)(nil)
