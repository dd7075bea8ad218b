package repository

// DefaultPageSize is the fixed page size of public article listings.
const DefaultPageSize = 5

// Window converts a 1-based page number into an offset. Page numbers below
// 1 clamp to the first page; a page beyond the last simply yields an empty
// result from the store, never an error.
func Window(page, pageSize int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return (page - 1) * pageSize, pageSize
}

// PageCount returns the number of pages needed for total rows.
func PageCount(total int64, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
