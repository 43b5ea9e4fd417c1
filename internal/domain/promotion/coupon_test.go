package promotion

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCoupon(t *testing.T, couponType CouponType, value decimal.Decimal) *Coupon {
	t.Helper()
	c, err := NewCoupon("summer10", couponType, value, time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)
	return c
}

func TestNewCoupon(t *testing.T) {
	t.Run("Valid coupon uppercases the code", func(t *testing.T) {
		c := newTestCoupon(t, CouponTypePercent, decimal.NewFromInt(10))
		assert.Equal(t, "SUMMER10", c.Code)
		assert.True(t, c.Enabled)
	})

	t.Run("Unknown type rejected", func(t *testing.T) {
		_, err := NewCoupon("x", CouponType("bogus"), decimal.NewFromInt(10), time.Now(), time.Now().Add(time.Hour))
		assert.Error(t, err)
	})

	t.Run("Percent above 100 rejected", func(t *testing.T) {
		_, err := NewCoupon("x", CouponTypePercent, decimal.NewFromInt(150), time.Now(), time.Now().Add(time.Hour))
		assert.Error(t, err)
	})

	t.Run("Expiry before start rejected", func(t *testing.T) {
		_, err := NewCoupon("x", CouponTypeFixed, decimal.NewFromInt(5), time.Now(), time.Now().Add(-time.Hour))
		assert.Error(t, err)
	})
}

func TestCoupon_Discount(t *testing.T) {
	t.Run("Percent coupon", func(t *testing.T) {
		c := newTestCoupon(t, CouponTypePercent, decimal.NewFromInt(10))
		got := c.Discount(decimal.NewFromInt(200))
		assert.True(t, got.Equal(decimal.NewFromInt(20)))
	})

	t.Run("Fixed coupon capped at the total", func(t *testing.T) {
		c := newTestCoupon(t, CouponTypeFixed, decimal.NewFromInt(50))
		got := c.Discount(decimal.NewFromInt(30))
		assert.True(t, got.Equal(decimal.NewFromInt(30)))
	})

	t.Run("Below minimum total grants nothing", func(t *testing.T) {
		c := newTestCoupon(t, CouponTypeFixed, decimal.NewFromInt(5))
		c.MinTotal = decimal.NewFromInt(100)
		assert.True(t, c.Discount(decimal.NewFromInt(99)).IsZero())
	})
}

func TestCoupon_IsUsable(t *testing.T) {
	c := newTestCoupon(t, CouponTypeFixed, decimal.NewFromInt(5))

	assert.True(t, c.IsUsable(time.Now()))
	assert.False(t, c.IsUsable(time.Now().Add(-2*time.Hour)))
	assert.False(t, c.IsUsable(time.Now().Add(2*time.Hour)))

	c.Disable()
	assert.False(t, c.IsUsable(time.Now()))
	c.Enable()

	c.UsageLimit = 1
	require.NoError(t, c.MarkUsed())
	assert.False(t, c.IsUsable(time.Now()))
	assert.Error(t, c.MarkUsed())
}
