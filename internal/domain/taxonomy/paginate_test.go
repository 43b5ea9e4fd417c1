package taxonomy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item-%02d", i)
	}
	return items
}

func TestPaginate(t *testing.T) {
	t.Run("45 items with page size 20", func(t *testing.T) {
		items := makeItems(45)

		p1 := Paginate(items, 1, 20)
		assert.Equal(t, 3, p1.TotalPages)
		assert.Len(t, p1.Items, 20)

		p3 := Paginate(items, 3, 20)
		assert.Len(t, p3.Items, 5)

		p4 := Paginate(items, 4, 20)
		assert.Equal(t, 3, p4.TotalPages)
		assert.Empty(t, p4.Items)
	})

	t.Run("empty input still reports one page", func(t *testing.T) {
		p := Paginate([]string{}, 1, 20)
		assert.Equal(t, 1, p.TotalPages)
		assert.Empty(t, p.Items)
	})

	t.Run("zero size falls back to default", func(t *testing.T) {
		p := Paginate(makeItems(25), 2, 0)
		assert.Equal(t, 2, p.TotalPages)
		assert.Len(t, p.Items, 5)
	})

	t.Run("page below one is clamped", func(t *testing.T) {
		p := Paginate(makeItems(5), 0, 20)
		assert.Len(t, p.Items, 5)
	})

	t.Run("concatenating all pages reproduces the input", func(t *testing.T) {
		for _, n := range []int{0, 1, 19, 20, 21, 45, 100} {
			for _, size := range []int{1, 7, 20} {
				items := makeItems(n)
				total := Paginate(items, 1, size).TotalPages

				got := make([]string, 0, n)
				for page := 1; page <= total; page++ {
					got = append(got, Paginate(items, page, size).Items...)
				}
				require.Equal(t, items, got, "n=%d size=%d", n, size)
			}
		}
	})
}
