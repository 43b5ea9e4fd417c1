package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopadmin/backend/internal/domain/taxonomy"
)

func sampleForest() taxonomy.Forest {
	return taxonomy.Forest{
		{
			ID:   "NW-1",
			Name: "Footwear",
			Children: []taxonomy.Category{
				{ID: "NW-2", Name: "Running", ParentID: "NW-1", ProductCount: 5},
			},
		},
	}
}

func TestInMemoryTreeCache(t *testing.T) {
	ctx := context.Background()

	t.Run("get returns miss for unknown vendor", func(t *testing.T) {
		c := NewInMemoryTreeCache(time.Minute)

		_, ok := c.Get(ctx, "northwind")
		assert.False(t, ok)
	})

	t.Run("set then get round trips the forest", func(t *testing.T) {
		c := NewInMemoryTreeCache(time.Minute)

		c.Set(ctx, "northwind", sampleForest())

		forest, ok := c.Get(ctx, "northwind")
		require.True(t, ok)
		require.Len(t, forest, 1)
		assert.Equal(t, "Footwear", forest[0].Name)
		assert.Len(t, forest[0].Children, 1)
	})

	t.Run("entries are scoped per vendor", func(t *testing.T) {
		c := NewInMemoryTreeCache(time.Minute)

		c.Set(ctx, "northwind", sampleForest())

		_, ok := c.Get(ctx, "acme")
		assert.False(t, ok)
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		c := NewInMemoryTreeCache(time.Minute)

		c.Set(ctx, "northwind", sampleForest())
		c.Invalidate(ctx, "northwind")

		_, ok := c.Get(ctx, "northwind")
		assert.False(t, ok)
	})

	t.Run("expired entries read as misses", func(t *testing.T) {
		c := NewInMemoryTreeCache(time.Millisecond)

		c.Set(ctx, "northwind", sampleForest())
		time.Sleep(5 * time.Millisecond)

		_, ok := c.Get(ctx, "northwind")
		assert.False(t, ok)
	})
}
