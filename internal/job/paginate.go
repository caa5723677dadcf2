package job

// PageEllipsis is the sentinel emitted by PageNumbers where a run of
// page links is collapsed; templates render it as "…".
const PageEllipsis = -1

// Paginate slices the filtered sequence into the fixed-size window for
// the requested page. The requested index is clamped into
// [1, totalPages] (page 1 when the sequence is empty), so a stale link
// to a page beyond the end returns the last page instead of an empty
// one. It never mutates the input.
func Paginate(listings []Listing, page, perPage int) (items []Listing, currentPage, totalPages int) {
	if perPage < 1 {
		perPage = 1
	}
	totalPages = (len(listings) + perPage - 1) / perPage
	if totalPages == 0 {
		return []Listing{}, 1, 0
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * perPage
	end := start + perPage
	if end > len(listings) {
		end = len(listings)
	}
	return listings[start:end], page, totalPages
}

// PageNumbers returns the page links to display. Up to five pages are
// shown in full; longer sets are windowed around the current page with
// the first and last page always visible:
//
//	current <= 3:        1 2 3 4 … last
//	current >= last-2:   1 … last-3 last-2 last-1 last
//	otherwise:           1 … current-1 current current+1 … last
func PageNumbers(currentPage, totalPages int) []int {
	if totalPages <= 0 {
		return []int{}
	}
	if totalPages <= 5 {
		pages := make([]int, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			pages = append(pages, i)
		}
		return pages
	}
	switch {
	case currentPage <= 3:
		return []int{1, 2, 3, 4, PageEllipsis, totalPages}
	case currentPage >= totalPages-2:
		return []int{1, PageEllipsis, totalPages - 3, totalPages - 2, totalPages - 1, totalPages}
	default:
		return []int{1, PageEllipsis, currentPage - 1, currentPage, currentPage + 1, PageEllipsis, totalPages}
	}
}
