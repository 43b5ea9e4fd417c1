package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/shopadmin/backend/internal/domain/vendor"
)

// GormFeedCategoryRepository implements FeedCategoryRepository using GORM
type GormFeedCategoryRepository struct {
	db *gorm.DB
}

// NewGormFeedCategoryRepository creates a new GormFeedCategoryRepository
func NewGormFeedCategoryRepository(db *gorm.DB) *GormFeedCategoryRepository {
	return &GormFeedCategoryRepository{db: db}
}

// FindByVendor returns all feed rows for a vendor
func (r *GormFeedCategoryRepository) FindByVendor(ctx context.Context, vendorCode string) ([]vendor.FeedCategory, error) {
	var rows []vendor.FeedCategory
	if err := r.db.WithContext(ctx).
		Where("vendor_code = ?", vendorCode).
		Order("sort_order ASC, name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ReplaceForVendor atomically swaps a vendor's feed rows for a new batch
func (r *GormFeedCategoryRepository) ReplaceForVendor(ctx context.Context, vendorCode string, rows []vendor.FeedCategory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&vendor.FeedCategory{}, "vendor_code = ?", vendorCode).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 200).Error
	})
}

// DeleteByVendor removes all feed rows for a vendor
func (r *GormFeedCategoryRepository) DeleteByVendor(ctx context.Context, vendorCode string) error {
	return r.db.WithContext(ctx).
		Delete(&vendor.FeedCategory{}, "vendor_code = ?", vendorCode).Error
}

// CountByVendor counts feed rows for a vendor
func (r *GormFeedCategoryRepository) CountByVendor(ctx context.Context, vendorCode string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&vendor.FeedCategory{}).
		Where("vendor_code = ?", vendorCode).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormFeedCategoryRepository implements FeedCategoryRepository
var _ vendor.FeedCategoryRepository = (*GormFeedCategoryRepository)(nil)
