package client

import "inventoryapi/models"

// Ellipsis marks a collapsed run of page numbers in PageNumbers
// output. It is a marker, not a navigable page.
const Ellipsis = -1

// DefaultPageSize and PageSizeOptions match the table's size picker.
const DefaultPageSize = 10

var PageSizeOptions = []int{10, 20, 30, 50}

const maxVisiblePages = 7

// Pager slices a filtered sequence into pages. Changing the page size
// or the underlying item count resets to the first page.
type Pager struct {
	Page     int
	PageSize int

	lastCount int
}

func NewPager() *Pager {
	return &Pager{Page: 1, PageSize: DefaultPageSize, lastCount: -1}
}

// TotalPages is at least 1, even for an empty list.
func (p *Pager) TotalPages(count int) int {
	if count <= 0 {
		return 1
	}

	pages := count / p.PageSize
	if count%p.PageSize != 0 {
		pages++
	}
	return pages
}

// SetPage navigates to the given page, clamped to the valid range.
func (p *Pager) SetPage(page, count int) {
	total := p.TotalPages(count)
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	p.Page = page
}

// SetPageSize switches to one of the configured sizes and resets to
// the first page. Unknown sizes are ignored.
func (p *Pager) SetPageSize(size int) {
	for _, option := range PageSizeOptions {
		if size == option {
			p.PageSize = size
			p.Page = 1
			return
		}
	}
}

// Resize resets to the first page whenever the underlying item count
// changes, e.g. after a filter or a delete.
func (p *Pager) Resize(count int) {
	if count != p.lastCount {
		p.lastCount = count
		p.Page = 1
	}
}

// Slice returns the items of the current page.
func (p *Pager) Slice(items []models.Product) []models.Product {
	start := (p.Page - 1) * p.PageSize
	if start >= len(items) {
		return nil
	}

	end := start + p.PageSize
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// PageNumbers returns the compact page-number list: every page when
// the total fits in maxVisiblePages, otherwise the first page, the
// last page, the current page with its immediate neighbors, and a
// single Ellipsis marker per gap.
func (p *Pager) PageNumbers(count int) []int {
	total := p.TotalPages(count)

	if total <= maxVisiblePages {
		numbers := make([]int, total)
		for i := range numbers {
			numbers[i] = i + 1
		}
		return numbers
	}

	include := func(page int) bool {
		if page == 1 || page == total {
			return true
		}
		return page >= p.Page-1 && page <= p.Page+1
	}

	var numbers []int
	lastIncluded := 0
	for page := 1; page <= total; page++ {
		if !include(page) {
			continue
		}

		if lastIncluded != 0 && page-lastIncluded > 1 {
			numbers = append(numbers, Ellipsis)
		}

		numbers = append(numbers, page)
		lastIncluded = page
	}

	return numbers
}
