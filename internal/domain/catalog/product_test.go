package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("Valid product", func(t *testing.T) {
		product, err := NewProduct("sku-001", "Trail Runner", decimal.NewFromInt(89))
		require.NoError(t, err)
		assert.Equal(t, "SKU-001", product.Code)
		assert.Equal(t, "Trail Runner", product.Name)
		assert.True(t, product.Price.Equal(decimal.NewFromInt(89)))
		assert.True(t, product.IsActive())
	})

	t.Run("Empty code", func(t *testing.T) {
		_, err := NewProduct("", "Trail Runner", decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("Negative price", func(t *testing.T) {
		_, err := NewProduct("sku-001", "Trail Runner", decimal.NewFromInt(-1))
		assert.Error(t, err)
	})
}

func TestProduct_SetPrice(t *testing.T) {
	product, err := NewProduct("sku-001", "Trail Runner", decimal.NewFromInt(89))
	require.NoError(t, err)

	require.NoError(t, product.SetPrice(decimal.NewFromFloat(99.95)))
	assert.True(t, product.Price.Equal(decimal.NewFromFloat(99.95)))

	assert.Error(t, product.SetPrice(decimal.NewFromInt(-5)))
}

func TestProduct_Discontinue(t *testing.T) {
	product, err := NewProduct("sku-001", "Trail Runner", decimal.NewFromInt(89))
	require.NoError(t, err)

	require.NoError(t, product.Discontinue())
	assert.Equal(t, ProductStatusDiscontinued, product.Status)
	assert.False(t, product.IsActive())

	assert.Error(t, product.Discontinue())
}
