// Package pager provides page arithmetic and the sliding page-number window.
package pager

// Window is an inclusive range of page numbers to display.
// The empty window is {Start: 1, End: 0}.
type Window struct {
	Start int
	End   int
}

// Len returns the number of pages in the window.
func (w Window) Len() int {
	if w.End < w.Start {
		return 0
	}
	return w.End - w.Start + 1
}

// Pages returns the page numbers in the window.
func (w Window) Pages() []int {
	pages := make([]int, 0, w.Len())
	for p := w.Start; p <= w.End; p++ {
		pages = append(pages, p)
	}
	return pages
}

// Contains reports whether page is inside the window.
func (w Window) Contains(page int) bool {
	return page >= w.Start && page <= w.End
}

// NewWindow computes the page window around current.
// The window holds min(maxVisible, total) pages, is centered on current where
// possible and is pinned to the first or last page near the edges.
func NewWindow(current, total, maxVisible int) Window {
	if total <= 0 {
		return Window{Start: 1, End: 0}
	}
	if maxVisible < 1 {
		maxVisible = 1
	}
	current = Clamp(current, total)

	half := maxVisible / 2
	start := max(1, current-half)
	end := min(total, start+maxVisible-1)
	if end-start < maxVisible-1 {
		start = max(1, end-maxVisible+1)
	}
	return Window{Start: start, End: end}
}

// Clamp bounds page to [1, total]. A non-positive total clamps to 1.
func Clamp(page, total int) int {
	if total < 1 {
		total = 1
	}
	if page > total {
		return total
	}
	if page < 1 {
		return 1
	}
	return page
}

// TotalPages returns max(1, ceil(n/size)). A non-positive size counts as 1.
func TotalPages(n, size int) int {
	if size < 1 {
		size = 1
	}
	if n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}
