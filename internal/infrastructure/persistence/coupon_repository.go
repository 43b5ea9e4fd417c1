package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopadmin/backend/internal/domain/promotion"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// GormCouponRepository implements CouponRepository using GORM
type GormCouponRepository struct {
	db *gorm.DB
}

// NewGormCouponRepository creates a new GormCouponRepository
func NewGormCouponRepository(db *gorm.DB) *GormCouponRepository {
	return &GormCouponRepository{db: db}
}

// FindByID finds a coupon by its ID
func (r *GormCouponRepository) FindByID(ctx context.Context, id uuid.UUID) (*promotion.Coupon, error) {
	var coupon promotion.Coupon
	if err := r.db.WithContext(ctx).First(&coupon, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &coupon, nil
}

// FindByCode finds a coupon by its code
func (r *GormCouponRepository) FindByCode(ctx context.Context, code string) (*promotion.Coupon, error) {
	var coupon promotion.Coupon
	if err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(code)).
		First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &coupon, nil
}

// FindAll finds all coupons matching the filter
func (r *GormCouponRepository) FindAll(ctx context.Context, filter shared.Filter) ([]promotion.Coupon, error) {
	var coupons []promotion.Coupon
	query := applyPaging(r.constraints(r.db.WithContext(ctx).Model(&promotion.Coupon{}), filter), filter, "created_at DESC")
	if err := query.Find(&coupons).Error; err != nil {
		return nil, err
	}
	return coupons, nil
}

// Save creates or updates a coupon
func (r *GormCouponRepository) Save(ctx context.Context, coupon *promotion.Coupon) error {
	return r.db.WithContext(ctx).Save(coupon).Error
}

// Delete deletes a coupon
func (r *GormCouponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&promotion.Coupon{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts coupons matching the filter
func (r *GormCouponRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.constraints(r.db.WithContext(ctx).Model(&promotion.Coupon{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormCouponRepository) constraints(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = applySearch(query, filter.Search, "code")
	for key, value := range filter.Filters {
		switch key {
		case "enabled":
			query = query.Where("enabled = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		}
	}
	return query
}

var _ promotion.CouponRepository = (*GormCouponRepository)(nil)
