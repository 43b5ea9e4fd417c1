package mapping

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// CategoryMapping Tests
// ---------------------------------------------------------------------------

func TestNewCategoryMapping(t *testing.T) {
	t.Run("Valid mapping creation", func(t *testing.T) {
		m, err := NewCategoryMapping("cat-001", "northwind", "NW-77")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, m.ID)
		assert.Equal(t, "cat-001", m.OurCategoryID)
		assert.Equal(t, "northwind", m.VendorCode)
		assert.Equal(t, "NW-77", m.VendorCategoryID)
		assert.True(t, m.IsActive)
		assert.False(t, m.CreatedAt.IsZero())
	})

	t.Run("Empty our category ID", func(t *testing.T) {
		_, err := NewCategoryMapping("", "northwind", "NW-77")
		assert.ErrorIs(t, err, ErrInvalidOurCategoryID)
	})

	t.Run("Empty vendor code", func(t *testing.T) {
		_, err := NewCategoryMapping("cat-001", "", "NW-77")
		assert.ErrorIs(t, err, ErrInvalidVendorCode)
	})

	t.Run("Empty vendor category ID", func(t *testing.T) {
		_, err := NewCategoryMapping("cat-001", "northwind", "")
		assert.ErrorIs(t, err, ErrInvalidVendorCategoryID)
	})
}

func TestCategoryMapping_Validate(t *testing.T) {
	m, err := NewCategoryMapping("cat-001", "northwind", "NW-77")
	require.NoError(t, err)
	assert.NoError(t, m.Validate())

	m.VendorCategoryID = ""
	assert.ErrorIs(t, m.Validate(), ErrInvalidVendorCategoryID)
}

func TestCategoryMapping_ActivateDeactivate(t *testing.T) {
	m, err := NewCategoryMapping("cat-001", "northwind", "NW-77")
	require.NoError(t, err)

	m.Deactivate()
	assert.False(t, m.IsActive)

	m.Activate()
	assert.True(t, m.IsActive)
}
