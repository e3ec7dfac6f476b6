package query

// DefaultPageSize is the fixed page size used when no override is
// configured.
const DefaultPageSize = 20

// Page is one bounded window of an ordered collection plus its metadata.
// Number is one-indexed.
type Page[T any] struct {
	Items          []T
	Number         int
	TotalPages     int
	TotalInstances int
}

// Paginate slices the ordered collection at the requested page. Requests
// below page 1 clamp to the first page, requests beyond the last page clamp
// to the last. An empty collection still reports one (empty) page.
func Paginate[T any](items []T, requested, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := requested
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:          items[start:end],
		Number:         page,
		TotalPages:     totalPages,
		TotalInstances: total,
	}
}
