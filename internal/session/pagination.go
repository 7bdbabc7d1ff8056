package session

// TotalPages returns ceil(total / pageSize), or 0 for a non-positive page size.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Control is one element of the pagination bar: a page button or a gap.
type Control struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
	Current  bool `json:"current,omitempty"`
}

// Controls returns the pagination bar for current out of totalPages, or nil
// when there is at most one page.
//
// The current page and its neighbours are always shown. Page 1 and the last
// page are shown when they are not already among them. A skipped run of
// pages collapses into an ellipsis only when it holds more than one page;
// a single skipped page is shown instead.
func Controls(current, totalPages int) []Control {
	if totalPages <= 1 {
		return nil
	}
	current = min(max(current, 1), totalPages)

	var out []Control
	page := func(p int) {
		out = append(out, Control{Page: p, Current: p == current})
	}
	gap := func(skipped, only int) {
		switch {
		case skipped > 1:
			out = append(out, Control{Ellipsis: true})
		case skipped == 1:
			page(only)
		}
	}

	if current > 2 {
		page(1)
		gap(current-3, 2)
	}
	if current > 1 {
		page(current - 1)
	}
	page(current)
	if current < totalPages {
		page(current + 1)
	}
	if current < totalPages-1 {
		gap(totalPages-current-2, totalPages-1)
		page(totalPages)
	}
	return out
}
