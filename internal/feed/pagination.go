// Package feed assembles the read side of the application: ordered post
// listings, profile and group pages, and their pagination.
package feed

// PageSize is the number of posts on every feed page.
const PageSize = 10

// Meta describes where a page sits inside the full result set.
type Meta struct {
	Number      int  `json:"number"`
	NumPages    int  `json:"num_pages"`
	Count       int  `json:"count"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// Paginate slices one page out of the materialized result set. Page numbers
// are 1-based; out-of-range numbers clamp to the nearest valid page instead
// of failing, so an empty set yields a single empty page.
func Paginate[T any](items []T, number int) ([]T, Meta) {
	count := len(items)
	numPages := (count + PageSize - 1) / PageSize
	if numPages < 1 {
		numPages = 1
	}

	if number < 1 {
		number = 1
	}
	if number > numPages {
		number = numPages
	}

	start := (number - 1) * PageSize
	end := start + PageSize
	if start > count {
		start = count
	}
	if end > count {
		end = count
	}

	return items[start:end], Meta{
		Number:      number,
		NumPages:    numPages,
		Count:       count,
		HasNext:     number < numPages,
		HasPrevious: number > 1,
	}
}
