package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestNewWindow(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		size       int
		raw        string
		wantNumber int
		wantPages  int
	}{
		{"missing page", 25, 10, "", 1, 3},
		{"second page", 25, 10, "2", 2, 3},
		{"not a number", 25, 10, "abc", 1, 3},
		{"zero clamps to first", 25, 10, "0", 1, 3},
		{"negative clamps to first", 25, 10, "-4", 1, 3},
		{"past the end clamps to last", 25, 10, "99", 3, 3},
		{"overflowing number clamps to last", 25, 10, "100000000000000000000", 3, 3},
		{"overflowing negative clamps to first", 25, 10, "-100000000000000000000", 1, 3},
		{"empty set has one page", 0, 10, "5", 1, 1},
		{"exact multiple", 14, 7, "2", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWindow(tt.total, tt.size, tt.raw)
			assert.Equal(t, tt.wantNumber, w.Number)
			assert.Equal(t, tt.wantPages, w.TotalPages)
			assert.Equal(t, (tt.wantNumber-1)*tt.size, w.Offset())
			assert.Equal(t, tt.size, w.Limit())
		})
	}
}

func TestPaginate_TwelveItemsByTen(t *testing.T) {
	items := seq(12)

	p1 := Paginate(items, 10, "1")
	assert.Len(t, p1.Items, 10)
	assert.False(t, p1.HasPrevPage)
	assert.True(t, p1.HasNextPage)

	p2 := Paginate(items, 10, "2")
	assert.Equal(t, []int{11, 12}, p2.Items)
	assert.True(t, p2.HasPrevPage)
	assert.False(t, p2.HasNextPage)

	huge := Paginate(items, 10, "100000000000000000000")
	assert.Equal(t, 2, huge.Number)
	assert.Equal(t, []int{11, 12}, huge.Items)

	p3 := Paginate(items, 10, "3")
	assert.Equal(t, 2, p3.Number)
	assert.Equal(t, p2.Items, p3.Items)
}

func TestPaginate_Empty(t *testing.T) {
	p := Paginate([]string(nil), 10, "")
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
	assert.Equal(t, 1, p.TotalPages)
}
