package taxonomy

// DefaultPageSize is the page size used when callers pass size <= 0.
const DefaultPageSize = 20

// Page is one slice of a flattened, filtered listing.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalPages int `json:"totalPages"`
}

// Paginate slices items into fixed-size pages. Pages are 1-indexed;
// TotalPages is ceil(len/size) clamped to at least 1 so an empty listing
// still reports one (empty) page. An out-of-range page yields an empty
// slice, not an error; callers clamp the requested page and reset to page
// 1 whenever the filtered set changes.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := (len(items) + size - 1) / size
	if total < 1 {
		total = 1
	}

	start := (page - 1) * size
	if start >= len(items) {
		return Page[T]{Items: []T{}, TotalPages: total}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return Page[T]{Items: items[start:end], TotalPages: total}
}
