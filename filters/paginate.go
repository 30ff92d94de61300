package filters

// Paginate devuelve la página (base 0) de tamaño limit y el total
func Paginate[T any](records []T, page, limit int) ([]T, int) {
	total := len(records)
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		return records, total
	}
	start := page * limit
	if start >= total {
		return []T{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return records[start:end], total
}
