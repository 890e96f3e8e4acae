// Package ports defines the repository contracts the rental core consumes.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
//
// Convention: finders that look up a single entity by identifier return
// (nil, nil) when nothing matches — absence is a normal result, not an
// error. Action calls report repository-detected conflicts through
// errs.ConflictError carrying a stable code, and connectivity failures
// through errs.TransientError.
package ports

import "math"

const (
	// DefaultPage is the page number used when a request does not name one.
	DefaultPage = 1

	// DefaultPageLimit is the page size used when a request does not name one.
	DefaultPageLimit = 20
)

// PageRequest selects one page of a listing.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize replaces missing or non-positive fields with the defaults.
func (r PageRequest) Normalize() PageRequest {
	if r.Page <= 0 {
		r.Page = DefaultPage
	}
	if r.Limit <= 0 {
		r.Limit = DefaultPageLimit
	}
	return r
}

// Offset returns the number of rows to skip for this page.
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// Page is one page of a listing plus the totals a client needs to paginate.
type Page[T any] struct {
	Data       []T
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// NewPage assembles a Page from one page of data and the pre-pagination
// total.
func NewPage[T any](data []T, total int64, request PageRequest) Page[T] {
	request = request.Normalize()

	return Page[T]{
		Data:       data,
		Total:      total,
		Page:       request.Page,
		Limit:      request.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(request.Limit))),
	}
}
