package promotion

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopadmin/backend/internal/domain/promotion"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// CreateCouponRequest represents a request to create a new coupon
type CreateCouponRequest struct {
	Code       string          `json:"code" binding:"required,min=1,max=50"`
	Type       string          `json:"type" binding:"required,oneof=percent fixed"`
	Value      decimal.Decimal `json:"value" binding:"required"`
	MinTotal   decimal.Decimal `json:"min_total"`
	StartsAt   time.Time       `json:"starts_at" binding:"required"`
	ExpiresAt  time.Time       `json:"expires_at" binding:"required"`
	UsageLimit int             `json:"usage_limit" binding:"omitempty,min=0"`
}

// CouponResponse represents a coupon in API responses
type CouponResponse struct {
	ID         uuid.UUID       `json:"id"`
	Code       string          `json:"code"`
	Type       string          `json:"type"`
	Value      decimal.Decimal `json:"value"`
	MinTotal   decimal.Decimal `json:"min_total"`
	StartsAt   time.Time       `json:"starts_at"`
	ExpiresAt  time.Time       `json:"expires_at"`
	UsageLimit int             `json:"usage_limit"`
	UsedCount  int             `json:"used_count"`
	Enabled    bool            `json:"enabled"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ListFilter represents filter options for the coupon list
type ListFilter struct {
	Search   string `form:"search"`
	Enabled  *bool  `form:"enabled"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToCouponResponse converts a domain Coupon to CouponResponse
func ToCouponResponse(c *promotion.Coupon) *CouponResponse {
	return &CouponResponse{
		ID:         c.ID,
		Code:       c.Code,
		Type:       string(c.Type),
		Value:      c.Value,
		MinTotal:   c.MinTotal,
		StartsAt:   c.StartsAt,
		ExpiresAt:  c.ExpiresAt,
		UsageLimit: c.UsageLimit,
		UsedCount:  c.UsedCount,
		Enabled:    c.Enabled,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// Service handles coupon-related business operations
type Service struct {
	couponRepo promotion.CouponRepository
}

// NewService creates a new promotion Service
func NewService(couponRepo promotion.CouponRepository) *Service {
	return &Service{couponRepo: couponRepo}
}

// Create creates a new coupon
func (s *Service) Create(ctx context.Context, req CreateCouponRequest) (*CouponResponse, error) {
	exists, err := s.couponRepo.FindByCode(ctx, req.Code)
	if err == nil && exists != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Coupon with this code already exists")
	}

	coupon, err := promotion.NewCoupon(req.Code, promotion.CouponType(req.Type), req.Value, req.StartsAt, req.ExpiresAt)
	if err != nil {
		return nil, err
	}
	coupon.MinTotal = req.MinTotal
	coupon.UsageLimit = req.UsageLimit

	if err := s.couponRepo.Save(ctx, coupon); err != nil {
		return nil, err
	}
	return ToCouponResponse(coupon), nil
}

// GetByID retrieves a coupon by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*CouponResponse, error) {
	coupon, err := s.couponRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCouponResponse(coupon), nil
}

// List retrieves coupons matching the filter
func (s *Service) List(ctx context.Context, filter ListFilter) ([]CouponResponse, int64, error) {
	domainFilter := shared.Filter{
		Search:   filter.Search,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}
	if filter.Enabled != nil {
		domainFilter.Filters["enabled"] = *filter.Enabled
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}

	coupons, err := s.couponRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.couponRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CouponResponse, len(coupons))
	for i := range coupons {
		responses[i] = *ToCouponResponse(&coupons[i])
	}
	return responses, total, nil
}

// Enable turns a coupon on
func (s *Service) Enable(ctx context.Context, id uuid.UUID) error {
	coupon, err := s.couponRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	coupon.Enable()
	return s.couponRepo.Save(ctx, coupon)
}

// Disable turns a coupon off
func (s *Service) Disable(ctx context.Context, id uuid.UUID) error {
	coupon, err := s.couponRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	coupon.Disable()
	return s.couponRepo.Save(ctx, coupon)
}

// Delete deletes a coupon
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.couponRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.couponRepo.Delete(ctx, id)
}
