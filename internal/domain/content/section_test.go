package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSection(t *testing.T) {
	t.Run("Valid section", func(t *testing.T) {
		s, err := NewSection(SectionTypeBanner, "Summer Sale")
		require.NoError(t, err)
		assert.Equal(t, SectionTypeBanner, s.Type)
		assert.Equal(t, "{}", s.Payload)
		assert.True(t, s.Visible)
	})

	t.Run("Unknown type rejected", func(t *testing.T) {
		_, err := NewSection(SectionType("footer"), "Summer Sale")
		assert.Error(t, err)
	})

	t.Run("Empty title rejected", func(t *testing.T) {
		_, err := NewSection(SectionTypeBanner, "")
		assert.Error(t, err)
	})
}

func TestSection_Mutations(t *testing.T) {
	s, err := NewSection(SectionTypeProductGrid, "Best Sellers")
	require.NoError(t, err)

	s.UpdatePayload(`{"productIds":["a","b"]}`)
	assert.JSONEq(t, `{"productIds":["a","b"]}`, s.Payload)

	s.UpdatePayload("")
	assert.Equal(t, "{}", s.Payload)

	s.SetSortOrder(3)
	assert.Equal(t, 3, s.SortOrder)

	s.Hide()
	assert.False(t, s.Visible)
	s.Show()
	assert.True(t, s.Visible)
}
