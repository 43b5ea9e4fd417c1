package catalog

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("Valid root category", func(t *testing.T) {
		category, err := NewCategory("shoes", "Shoes")
		require.NoError(t, err)
		assert.Equal(t, "SHOES", category.Code)
		assert.Equal(t, "Shoes", category.Name)
		assert.Equal(t, 0, category.Level)
		assert.Equal(t, category.ID.String(), category.Path)
		assert.True(t, category.IsRoot())
		assert.True(t, category.IsActive())
	})

	t.Run("Empty code", func(t *testing.T) {
		_, err := NewCategory("", "Shoes")
		assert.Error(t, err)
	})

	t.Run("Empty name", func(t *testing.T) {
		_, err := NewCategory("shoes", "")
		assert.Error(t, err)
	})

	t.Run("Code with invalid characters", func(t *testing.T) {
		_, err := NewCategory("sh oes!", "Shoes")
		assert.Error(t, err)
	})

	t.Run("Name too long", func(t *testing.T) {
		_, err := NewCategory("shoes", strings.Repeat("a", 101))
		assert.Error(t, err)
	})
}

func TestNewChildCategory(t *testing.T) {
	parent, err := NewCategory("shoes", "Shoes")
	require.NoError(t, err)

	t.Run("Valid child category", func(t *testing.T) {
		child, err := NewChildCategory("sneakers", "Sneakers", parent)
		require.NoError(t, err)
		assert.Equal(t, 1, child.Level)
		assert.Equal(t, &parent.ID, child.ParentID)
		assert.Equal(t, parent.Path+"/"+child.ID.String(), child.Path)
		assert.False(t, child.IsRoot())
	})

	t.Run("Nil parent", func(t *testing.T) {
		_, err := NewChildCategory("sneakers", "Sneakers", nil)
		assert.Error(t, err)
	})

	t.Run("Max depth exceeded", func(t *testing.T) {
		current := parent
		for i := 1; i < MaxCategoryDepth; i++ {
			next, err := NewChildCategory("level", "Level", current)
			require.NoError(t, err)
			current = next
		}

		_, err := NewChildCategory("toodeep", "Too Deep", current)
		assert.Error(t, err)
	})
}

func TestCategory_Hierarchy(t *testing.T) {
	root, err := NewCategory("shoes", "Shoes")
	require.NoError(t, err)
	child, err := NewChildCategory("sneakers", "Sneakers", root)
	require.NoError(t, err)
	grandchild, err := NewChildCategory("running", "Running", child)
	require.NoError(t, err)

	t.Run("Ancestor IDs follow the materialized path", func(t *testing.T) {
		assert.Nil(t, root.GetAncestorIDs())
		assert.Equal(t, []uuid.UUID{root.ID}, child.GetAncestorIDs())
		assert.Equal(t, []uuid.UUID{root.ID, child.ID}, grandchild.GetAncestorIDs())
	})

	t.Run("IsAncestorOf and IsDescendantOf", func(t *testing.T) {
		assert.True(t, root.IsAncestorOf(grandchild))
		assert.True(t, grandchild.IsDescendantOf(root))
		assert.False(t, grandchild.IsAncestorOf(root))
		assert.False(t, root.IsAncestorOf(nil))
	})
}

func TestCategory_StatusTransitions(t *testing.T) {
	category, err := NewCategory("shoes", "Shoes")
	require.NoError(t, err)

	t.Run("Deactivate active category", func(t *testing.T) {
		require.NoError(t, category.Deactivate())
		assert.False(t, category.IsActive())
	})

	t.Run("Deactivate twice fails", func(t *testing.T) {
		assert.Error(t, category.Deactivate())
	})

	t.Run("Activate inactive category", func(t *testing.T) {
		require.NoError(t, category.Activate())
		assert.True(t, category.IsActive())
	})

	t.Run("Activate twice fails", func(t *testing.T) {
		assert.Error(t, category.Activate())
	})
}

func TestCategory_SetProductCount(t *testing.T) {
	category, err := NewCategory("shoes", "Shoes")
	require.NoError(t, err)

	category.SetProductCount(42)
	assert.Equal(t, 42, category.ProductCount)

	category.SetProductCount(-3)
	assert.Equal(t, 0, category.ProductCount)
}

func TestCategory_Update(t *testing.T) {
	category, err := NewCategory("shoes", "Shoes")
	require.NoError(t, err)
	initialVersion := category.GetVersion()

	require.NoError(t, category.Update("Footwear", "All kinds of footwear"))
	assert.Equal(t, "Footwear", category.Name)
	assert.Equal(t, "All kinds of footwear", category.Description)
	assert.Equal(t, initialVersion+1, category.GetVersion())

	assert.Error(t, category.Update("", "desc"))
}
