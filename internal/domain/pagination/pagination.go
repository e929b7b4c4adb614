package pagination

// TotalPages = ceil(total / size). Returns 0 for an empty result.
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// ClampPage удерживает страницу в [1, max(1, totalPages)]
func ClampPage(page, total, size int) int {
	last := max(1, TotalPages(total, size))
	return min(max(page, 1), last)
}
