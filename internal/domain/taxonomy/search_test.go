package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleForest() Forest {
	return Forest{
		{
			ID:   "A",
			Name: "Shoes",
			Children: []Category{
				{ID: "A1", Name: "Sneakers", ParentID: "A"},
				{ID: "A2", Name: "Boots", ParentID: "A", Children: []Category{
					{ID: "A2a", Name: "Hiking Boots", ParentID: "A2"},
				}},
			},
		},
		{
			ID:   "B",
			Name: "Accessories",
			Children: []Category{
				{ID: "B1", Name: "Shoe Care", ParentID: "B"},
			},
		},
	}
}

func TestSearch(t *testing.T) {
	forest := sampleForest()

	t.Run("matches nested node with parent path", func(t *testing.T) {
		results := Search(forest, "sneak")
		require.Len(t, results, 1)
		assert.Equal(t, "A1", results[0].ID)
		assert.Equal(t, "Sneakers", results[0].Name)
		require.Len(t, results[0].ParentPath, 1)
		assert.Equal(t, "A", results[0].ParentPath[0].ID)
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		results := Search(forest, "BOOTS")
		require.Len(t, results, 2)
		assert.Equal(t, "A2", results[0].ID)
		assert.Equal(t, "A2a", results[1].ID)
	})

	t.Run("matching parent and descendant are emitted independently", func(t *testing.T) {
		results := Search(forest, "shoe")
		ids := make([]string, 0, len(results))
		for _, m := range results {
			ids = append(ids, m.ID)
		}
		assert.Equal(t, []string{"A", "B1"}, ids)
	})

	t.Run("deep match carries full ancestor chain", func(t *testing.T) {
		results := Search(forest, "hiking")
		require.Len(t, results, 1)
		require.Len(t, results[0].ParentPath, 2)
		assert.Equal(t, "A", results[0].ParentPath[0].ID)
		assert.Equal(t, "A2", results[0].ParentPath[1].ID)
	})

	t.Run("no matches yields empty result", func(t *testing.T) {
		assert.Empty(t, Search(forest, "garden"))
	})

	t.Run("empty term returns forest unchanged", func(t *testing.T) {
		results := Search(forest, "")
		require.Len(t, results, len(forest))
		for i, m := range results {
			assert.Equal(t, forest[i], m.Category)
			assert.Empty(t, m.ParentPath)
		}
	})

	t.Run("nameless nodes never match", func(t *testing.T) {
		f := Forest{{ID: "X", Name: "", Children: []Category{{ID: "X1", Name: "Named"}}}}
		results := Search(f, "name")
		require.Len(t, results, 1)
		assert.Equal(t, "X1", results[0].ID)
	})

	t.Run("every returned node contains the term and none are omitted", func(t *testing.T) {
		term := "o"
		results := Search(forest, term)

		for _, m := range results {
			assert.Contains(t, strings.ToLower(m.Name), term)
		}

		want := 0
		forest.Walk(func(node Category, _ []Category) bool {
			if strings.Contains(strings.ToLower(node.Name), term) {
				want++
			}
			return true
		})
		assert.Len(t, results, want)
	})
}

func TestForestFind(t *testing.T) {
	forest := sampleForest()

	node, ok := forest.Find("A2a")
	require.True(t, ok)
	assert.Equal(t, "Hiking Boots", node.Name)

	_, ok = forest.Find("missing")
	assert.False(t, ok)
}

func TestForestSize(t *testing.T) {
	assert.Equal(t, 6, sampleForest().Size())
	assert.Equal(t, 0, Forest{}.Size())
}
