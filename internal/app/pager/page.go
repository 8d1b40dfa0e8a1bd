package pager

// Page is one page of a paginated listing.
type Page[T any] struct {
	Number     int
	TotalPages int
	Items      []T
	Window     Window
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool {
	return p.Number > 1
}

// HasNext reports whether a next page exists.
func (p Page[T]) HasNext() bool {
	return p.Number < p.TotalPages
}

// Offset returns the index of the first item of the page within the full listing.
func (p Page[T]) Offset(size int) int {
	return (p.Number - 1) * size
}

// Paginate slices items into the requested page. The page number is clamped
// first, so the result never points past the end.
func Paginate[T any](items []T, page, size, maxVisible int) Page[T] {
	if size < 1 {
		size = 1
	}
	total := TotalPages(len(items), size)
	page = Clamp(page, total)

	start := (page - 1) * size
	end := min(len(items), start+size)
	slice := make([]T, 0, max(0, end-start))
	if start < end {
		slice = append(slice, items[start:end]...)
	}

	return Page[T]{
		Number:     page,
		TotalPages: total,
		Items:      slice,
		Window:     NewWindow(page, total, maxVisible),
	}
}
