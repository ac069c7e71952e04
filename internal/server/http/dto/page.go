package dto

// Page wraps a list endpoint response with pagination metadata.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// NewPage assembles a page envelope, deriving the page count.
func NewPage[T any](items []T, page, size int, total int64) Page[T] {
	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Page: page, Size: size, TotalCount: total, TotalPages: pages}
}
