package promotion

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopadmin/backend/internal/domain/shared"
)

// CouponType determines how a coupon's value is applied
type CouponType string

const (
	// CouponTypePercent discounts a percentage of the order total
	CouponTypePercent CouponType = "percent"
	// CouponTypeFixed discounts a fixed amount
	CouponTypeFixed CouponType = "fixed"
)

// IsValid checks if the coupon type is known
func (t CouponType) IsValid() bool {
	return t == CouponTypePercent || t == CouponTypeFixed
}

// Coupon represents a discount coupon managed from the back office
type Coupon struct {
	shared.BaseAggregateRoot
	Code       string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Type       CouponType      `gorm:"type:varchar(20);not null"`
	Value      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	MinTotal   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	StartsAt   time.Time       `gorm:"not null"`
	ExpiresAt  time.Time       `gorm:"not null"`
	UsageLimit int             `gorm:"not null;default:0"` // 0 means unlimited
	UsedCount  int             `gorm:"not null;default:0"`
	Enabled    bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Coupon) TableName() string {
	return "coupons"
}

// NewCoupon creates a new coupon
func NewCoupon(code string, couponType CouponType, value decimal.Decimal, startsAt, expiresAt time.Time) (*Coupon, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Coupon code cannot be empty")
	}
	if !couponType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Unknown coupon type")
	}
	if value.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_VALUE", "Coupon value must be positive")
	}
	if couponType == CouponTypePercent && value.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_VALUE", "Percent coupon cannot exceed 100")
	}
	if !expiresAt.After(startsAt) {
		return nil, shared.NewDomainError("INVALID_WINDOW", "Coupon must expire after it starts")
	}

	return &Coupon{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Type:              couponType,
		Value:             value,
		MinTotal:          decimal.Zero,
		StartsAt:          startsAt,
		ExpiresAt:         expiresAt,
		Enabled:           true,
	}, nil
}

// IsUsable reports whether the coupon can be applied at the given time
func (c *Coupon) IsUsable(at time.Time) bool {
	if !c.Enabled {
		return false
	}
	if at.Before(c.StartsAt) || at.After(c.ExpiresAt) {
		return false
	}
	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		return false
	}
	return true
}

// Discount computes the discount this coupon grants on an order total.
// The result never exceeds the total itself.
func (c *Coupon) Discount(total decimal.Decimal) decimal.Decimal {
	if total.LessThan(c.MinTotal) {
		return decimal.Zero
	}

	var discount decimal.Decimal
	switch c.Type {
	case CouponTypePercent:
		discount = total.Mul(c.Value).Div(decimal.NewFromInt(100)).Round(2)
	case CouponTypeFixed:
		discount = c.Value
	default:
		return decimal.Zero
	}

	if discount.GreaterThan(total) {
		return total
	}
	return discount
}

// MarkUsed records one redemption of the coupon
func (c *Coupon) MarkUsed() error {
	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		return shared.NewDomainError("USAGE_EXHAUSTED", "Coupon usage limit reached")
	}
	c.UsedCount++
	c.UpdatedAt = time.Now()
	return nil
}

// Disable turns the coupon off
func (c *Coupon) Disable() {
	c.Enabled = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Enable turns the coupon back on
func (c *Coupon) Enable() {
	c.Enabled = true
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// CouponRepository defines the interface for coupon persistence
type CouponRepository interface {
	// FindByID finds a coupon by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Coupon, error)

	// FindByCode finds a coupon by its code
	FindByCode(ctx context.Context, code string) (*Coupon, error)

	// FindAll finds all coupons matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Coupon, error)

	// Save creates or updates a coupon
	Save(ctx context.Context, coupon *Coupon) error

	// Delete deletes a coupon
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts coupons matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
