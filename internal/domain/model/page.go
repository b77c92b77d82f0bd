package model

// Page is one zero-based page of a listing plus the totals across all pages.
type Page[T any] struct {
	Content          []T   `json:"content"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	NumberOfElements int   `json:"numberOfElements"`
}

// NewPage derives the page count. A non-positive size is treated as a
// single page holding everything.
func NewPage[T any](content []T, number, size int, totalElements int64) *Page[T] {
	if content == nil {
		content = []T{}
	}

	var totalPages int
	switch {
	case totalElements == 0:
	case size <= 0:
		totalPages = 1
	default:
		totalPages = int((totalElements + int64(size) - 1) / int64(size))
	}

	return &Page[T]{
		Content:          content,
		Number:           number,
		Size:             size,
		TotalElements:    totalElements,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
	}
}

// Last reports whether no page follows this one.
func (p Page[T]) Last() bool {
	return p.Number+1 >= p.TotalPages
}
