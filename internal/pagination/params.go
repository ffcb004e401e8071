package pagination

import (
	"errors"
	"fmt"
)

// Paging defaults and validation limits.
const (
	DefaultPage     = 1
	MinPage         = 1
	DefaultPageSize = 5
	MinPageSize     = 1
	MaxPageSize     = 100
)

// Common validation errors.
var (
	ErrInvalidPage     = errors.New("page must be >= 1")
	ErrInvalidPageSize = fmt.Errorf("page-size must be between %d and %d", MinPageSize, MaxPageSize)
)

// Params holds a 1-based page number and the page size.
type Params struct {
	// Page is the 1-based page number.
	Page int

	// PageSize is the number of items per page.
	PageSize int
}

// NewParams creates Params with default values.
func NewParams() Params {
	return Params{Page: DefaultPage, PageSize: DefaultPageSize}
}

// Validate checks that the page and page size are inside the accepted ranges.
// It is meant for input boundaries (flags, config); Window itself accepts any
// values.
func (p Params) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	return nil
}

// Offset returns the index of the first item of the page, before clipping.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Window returns the half-open index range [start, end) of the page within a
// sequence of total items. The range is clipped to [0, total]; pages before
// the first or past the last yield an empty range. It never wraps.
//
//nolint:nonamedreturns // Named returns document the half-open range.
func (p Params) Window(total int) (start, end int) {
	if p.PageSize <= 0 || total <= 0 || p.Page < MinPage {
		return 0, 0
	}
	// Guard the multiplication for very large page numbers.
	if p.Page-1 > total/p.PageSize {
		return total, total
	}

	start = p.Offset()
	if start > total {
		start = total
	}
	end = start + p.PageSize
	if end > total {
		end = total
	}
	return start, end
}

// TotalPages returns ceil(total / pageSize), or 0 when there is nothing to
// page or the page size is not positive.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Slice returns the page window of items. The result shares the backing
// array with items but is capped so appends cannot clobber later elements.
func Slice[T any](items []T, p Params) []T {
	start, end := p.Window(len(items))
	return items[start:end:end]
}
