package client

import (
	"testing"

	"inventoryapi/models"

	"gotest.tools/assert"
)

func numberedProducts(n int) []models.Product {
	products := make([]models.Product, n)
	for i := range products {
		products[i] = models.Product{Id: i + 1}
	}
	return products
}

func TestTotalPages(t *testing.T) {
	p := NewPager()

	assert.Equal(t, 1, p.TotalPages(0))
	assert.Equal(t, 1, p.TotalPages(1))
	assert.Equal(t, 1, p.TotalPages(10))
	assert.Equal(t, 2, p.TotalPages(11))
	assert.Equal(t, 10, p.TotalPages(100))

	p.SetPageSize(20)
	assert.Equal(t, 5, p.TotalPages(100))
}

func TestSlicePartition(t *testing.T) {
	// concatenating all pages reproduces the list exactly once
	for _, n := range []int{0, 1, 9, 10, 11, 25, 100} {
		for _, size := range PageSizeOptions {
			p := NewPager()
			p.SetPageSize(size)
			items := numberedProducts(n)

			var rebuilt []models.Product
			for page := 1; page <= p.TotalPages(n); page++ {
				p.SetPage(page, n)
				rebuilt = append(rebuilt, p.Slice(items)...)
			}

			assert.Equal(t, n, len(rebuilt))
			for i, item := range rebuilt {
				assert.Equal(t, i+1, item.Id)
			}
		}
	}
}

func TestPagerResets(t *testing.T) {
	p := NewPager()
	items := numberedProducts(100)

	p.Resize(100)
	p.SetPage(5, 100)
	assert.Equal(t, 5, p.Page)

	// page size change resets to page 1
	p.SetPageSize(20)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)

	// unknown size is ignored
	p.SetPage(3, 100)
	p.SetPageSize(17)
	assert.Equal(t, 20, p.PageSize)
	assert.Equal(t, 3, p.Page)

	// count change (filter or delete) resets to page 1
	p.Resize(40)
	assert.Equal(t, 1, p.Page)

	// same count does not reset
	p.SetPage(2, 40)
	p.Resize(40)
	assert.Equal(t, 2, p.Page)

	// out-of-range navigation clamps
	p.SetPage(999, 40)
	assert.Equal(t, p.TotalPages(40), p.Page)
	p.SetPage(-1, 40)
	assert.Equal(t, 1, p.Page)

	// empty list still has one page and an empty slice
	p.Resize(0)
	assert.Equal(t, 1, p.TotalPages(0))
	assert.Equal(t, 0, len(p.Slice(items[:0])))
}

func TestPageNumbers(t *testing.T) {
	p := NewPager()

	// everything fits: no markers
	p.Resize(50)
	p.SetPage(3, 50)
	assert.DeepEqual(t, []int{1, 2, 3, 4, 5}, p.PageNumbers(50))

	// 20 pages, current in the middle
	p.Resize(200)
	p.SetPage(10, 200)
	assert.DeepEqual(t, []int{1, Ellipsis, 9, 10, 11, Ellipsis, 20}, p.PageNumbers(200))

	// current at the start: one trailing marker
	p.SetPage(1, 200)
	assert.DeepEqual(t, []int{1, 2, Ellipsis, 20}, p.PageNumbers(200))

	// current at the end
	p.SetPage(20, 200)
	assert.DeepEqual(t, []int{1, Ellipsis, 19, 20}, p.PageNumbers(200))

	// neighbor adjacent to the first page: no gap to mark
	p.SetPage(3, 200)
	assert.DeepEqual(t, []int{1, 2, 3, 4, Ellipsis, 20}, p.PageNumbers(200))
}
