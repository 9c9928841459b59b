// Package pagination slices ordered result sets into fixed-size pages.
//
// Page numbers are 1-based. A number that is missing, not an integer, or
// below 1 resolves to the first page; a number past the end resolves to the
// last page. An empty result set still has one (empty) page.
package pagination

import (
	"errors"
	"strconv"
	"strings"
)

// Window locates one page inside a result set of Total items.
type Window struct {
	Number     int   `json:"number"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewWindow resolves the raw page parameter against total items.
func NewWindow(total int64, size int, rawPage string) Window {
	if size <= 0 {
		size = 1
	}
	if total < 0 {
		total = 0
	}

	pages := int((total + int64(size) - 1) / int64(size))
	if pages < 1 {
		pages = 1
	}

	raw := strings.TrimSpace(rawPage)
	number, err := strconv.Atoi(raw)
	var numErr *strconv.NumError
	switch {
	case errors.As(err, &numErr) && numErr.Err == strconv.ErrRange:
		// an integer too large for int is still past one end
		number = pages
		if strings.HasPrefix(raw, "-") {
			number = 1
		}
	case err != nil, number < 1:
		number = 1
	case number > pages:
		number = pages
	}

	return Window{Number: number, Size: size, Total: total, TotalPages: pages}
}

func (w Window) Offset() int {
	return (w.Number - 1) * w.Size
}

func (w Window) Limit() int {
	return w.Size
}

func (w Window) HasPrevious() bool {
	return w.Number > 1
}

func (w Window) HasNext() bool {
	return w.Number < w.TotalPages
}

// Page is one window of items together with its position.
type Page[T any] struct {
	Items []T `json:"items"`
	Window
	HasPrevPage bool `json:"has_previous"`
	HasNextPage bool `json:"has_next"`
}

// NewPage wraps items already fetched for w.
func NewPage[T any](items []T, w Window) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Window: w, HasPrevPage: w.HasPrevious(), HasNextPage: w.HasNext()}
}

// Paginate returns the requested page of items.
func Paginate[T any](items []T, size int, rawPage string) Page[T] {
	w := NewWindow(int64(len(items)), size, rawPage)
	start := w.Offset()
	end := start + w.Size
	if end > len(items) {
		end = len(items)
	}
	return NewPage(items[start:end], w)
}
