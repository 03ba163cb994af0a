package pagination

import "errors"

// ErrBadPageRequest rejects page selections before any store call is made.
var ErrBadPageRequest = errors.New("page number or page size cannot be 0 or less")

// PageRequest is the caller-supplied, 1-based page selection shared by every
// paginated lookup.
type PageRequest struct {
	Number int
	Size   int
}

// Default mirrors the query-parameter defaults of the HTTP surface.
func Default() PageRequest {
	return PageRequest{Number: 1, Size: 10}
}

// Validate enforces the request gate: both values must be strictly positive.
func (p PageRequest) Validate() error {
	if p.Number <= 0 || p.Size <= 0 {
		return ErrBadPageRequest
	}
	return nil
}

// Offset returns the row offset the store should skip for this page.
func (p PageRequest) Offset() int {
	return (p.Number - 1) * p.Size
}

// TotalPages derives the page count reported alongside a result set.
func TotalPages(totalElements int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int((totalElements + int64(pageSize) - 1) / int64(pageSize))
}
