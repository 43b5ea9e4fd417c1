package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionToggle(t *testing.T) {
	a := Category{ID: "A", Name: "Shoes"}
	b := Category{ID: "B", Name: "Accessories"}

	t.Run("toggle adds then removes", func(t *testing.T) {
		s := NewSelection()
		s.Toggle(a)
		assert.True(t, s.Contains("A"))
		s.Toggle(a)
		assert.False(t, s.Contains("A"))
		assert.Zero(t, s.Len())
	})

	t.Run("double toggle restores the original list", func(t *testing.T) {
		s := NewSelection()
		s.Toggle(a)
		before := s.Items()

		s.Toggle(b)
		s.Toggle(b)
		assert.Equal(t, before, s.Items())
	})

	t.Run("removal matches by id even when other fields differ", func(t *testing.T) {
		s := NewSelection()
		s.Toggle(a)
		s.Toggle(Category{ID: "A", Name: "Renamed Shoes"})
		assert.Zero(t, s.Len())
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		s := NewSelection()
		s.Toggle(b)
		s.Toggle(a)
		assert.Equal(t, []string{"B", "A"}, s.IDs())
	})

	t.Run("code is the fallback identity", func(t *testing.T) {
		s := NewSelection()
		s.Toggle(Category{Code: "X9", Name: "No ID"})
		assert.True(t, s.Contains("X9"))
		s.Toggle(Category{Code: "X9"})
		assert.Zero(t, s.Len())
	})
}

func TestSelectionReset(t *testing.T) {
	s := NewSelection()
	s.Toggle(Category{ID: "A"})
	s.Toggle(Category{ID: "B"})
	require.Equal(t, 2, s.Len())

	s.Reset()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.IDs())
}
