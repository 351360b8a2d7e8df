package service

import "github.com/VladPetriv/busbooker/pkg/errs"

const (
	firstPage = 1
	// MaxPageLimit is the maximum number of items returned on a single page.
	MaxPageLimit = 100
)

// ErrInvalidPagination happens when page or limit is out of range.
var ErrInvalidPagination = errs.New("page and limit must be positive, limit must not exceed 100")

// Pagination represents a page of a list. Page numbers start from 1.
type Pagination struct {
	Page  int
	Limit int
}

// NewPagination returns pagination for the given page and limit.
// Zero page means the first page.
func NewPagination(page, limit int) (*Pagination, error) {
	if page == 0 {
		page = firstPage
	}

	if page < firstPage || limit < 1 || limit > MaxPageLimit {
		return nil, ErrInvalidPagination
	}

	return &Pagination{
		Page:  page,
		Limit: limit,
	}, nil
}

// Offset returns the number of items skipped before the page.
func (p Pagination) Offset() int {
	if p.Page <= firstPage {
		return 0
	}

	return (p.Page - 1) * p.Limit
}
