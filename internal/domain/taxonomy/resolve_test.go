package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveID(t *testing.T) {
	forest := sampleForest()

	t.Run("resolves a root without parent id", func(t *testing.T) {
		id, ok := ResolveID(forest, Category{ID: "A"})
		require.True(t, ok)
		assert.Equal(t, "A", id)
	})

	t.Run("resolves a child through its parent", func(t *testing.T) {
		id, ok := ResolveID(forest, Category{ID: "A1", ParentID: "A"})
		require.True(t, ok)
		assert.Equal(t, "A1", id)
	})

	t.Run("resolves a grandchild within the parent subtree", func(t *testing.T) {
		id, ok := ResolveID(forest, Category{ID: "A2a", ParentID: "A"})
		require.True(t, ok)
		assert.Equal(t, "A2a", id)
	})

	t.Run("falls back to full search when parent id matches no root", func(t *testing.T) {
		id, ok := ResolveID(forest, Category{ID: "B1", ParentID: "bogus-parent"})
		require.True(t, ok)
		assert.Equal(t, "B1", id)
	})

	t.Run("falls back when candidate is not under the claimed parent", func(t *testing.T) {
		id, ok := ResolveID(forest, Category{ID: "B1", ParentID: "A"})
		require.True(t, ok)
		assert.Equal(t, "B1", id)
	})

	t.Run("nested candidate without parent id is still found", func(t *testing.T) {
		id, ok := ResolveID(forest, Category{ID: "A2a"})
		require.True(t, ok)
		assert.Equal(t, "A2a", id)
	})

	t.Run("missing id reports not found", func(t *testing.T) {
		_, ok := ResolveID(forest, Category{ID: "nope", ParentID: "also-nope"})
		assert.False(t, ok)
	})

	t.Run("empty candidate reports not found", func(t *testing.T) {
		_, ok := ResolveID(forest, Category{})
		assert.False(t, ok)
	})

	t.Run("code serves as fallback identity", func(t *testing.T) {
		f := Forest{{ID: "R", Name: "Root", Children: []Category{{Code: "LEGACY", Name: "Old", ParentID: "R"}}}}
		id, ok := ResolveID(f, Category{Code: "LEGACY", ParentID: "R"})
		require.True(t, ok)
		assert.Equal(t, "LEGACY", id)
	})
}
