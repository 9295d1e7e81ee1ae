// Package pager slices result buckets into fixed-size pages and computes the
// page-number display window with ellipsis compression.
package pager

// Ellipsis is the marker value inside a Window result for a compressed gap.
const Ellipsis = 0

// TotalPages returns the page count for totalItems at pageSize, never less
// than 1 so an empty bucket still has a valid page 1.
func TotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	n := (totalItems + pageSize - 1) / pageSize
	if n < 1 {
		return 1
	}
	return n
}

// Clamp forces page into [1, totalPages]. Out-of-range requests are clamped,
// never rejected.
func Clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Slice returns the items of the requested page, clamping the page index
// first. A bucket with fewer pages than a shared page index simply yields its
// last page rather than erroring.
func Slice[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return items
	}
	p := Clamp(page, TotalPages(len(items), pageSize))
	start := (p - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Window returns the ordered page labels to display: always page 1 and the
// last page, the current page and its immediate neighbors, the two-away
// neighbors once the count exceeds 10, with every gap larger than one
// compressed to a single Ellipsis. Up to 7 pages the window is simply every
// page.
func Window(current, total int) []int {
	if total < 1 {
		total = 1
	}
	current = Clamp(current, total)

	if total <= 7 {
		out := make([]int, total)
		for i := range out {
			out[i] = i + 1
		}
		return out
	}

	want := map[int]struct{}{
		1:           {},
		total:       {},
		current:     {},
		current - 1: {},
		current + 1: {},
	}
	if total > 10 {
		want[current-2] = struct{}{}
		want[current+2] = struct{}{}
	}

	pages := make([]int, 0, len(want))
	for p := 1; p <= total; p++ {
		if _, ok := want[p]; ok {
			pages = append(pages, p)
		}
	}

	out := make([]int, 0, 2*len(pages))
	for i, p := range pages {
		if i > 0 && p-pages[i-1] > 1 {
			out = append(out, Ellipsis)
		}
		out = append(out, p)
	}
	return out
}
