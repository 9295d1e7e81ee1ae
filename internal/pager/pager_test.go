package pager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		items    int
		pageSize int
		want     int
	}{
		{"empty bucket has one page", 0, 8, 1},
		{"exact fit", 16, 8, 2},
		{"remainder adds a page", 17, 8, 3},
		{"single item", 1, 4, 1},
		{"zero page size", 10, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.items, tt.pageSize))
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 5))
	assert.Equal(t, 1, Clamp(-3, 5))
	assert.Equal(t, 5, Clamp(9, 5))
	assert.Equal(t, 3, Clamp(3, 5))
}

func TestSlice(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	assert.Equal(t, []string{"a", "b"}, Slice(items, 1, 2))
	assert.Equal(t, []string{"c", "d"}, Slice(items, 2, 2))
	assert.Equal(t, []string{"e"}, Slice(items, 3, 2))

	// An out-of-range page clamps to the last page instead of erroring.
	assert.Equal(t, []string{"e"}, Slice(items, 9, 2))

	// Three items at page size 8 fit a single page whatever page was asked.
	assert.Equal(t, []string{"a", "b", "c"}, Slice([]string{"a", "b", "c"}, 5, 8))

	assert.Empty(t, Slice([]string{}, 1, 4))
}

func TestWindowSmallTotalsShowEveryPage(t *testing.T) {
	assert.Equal(t, []int{1}, Window(1, 1))
	assert.Equal(t, []int{1, 2, 3}, Window(2, 3))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, Window(4, 7))
}

func TestWindowCompressesGaps(t *testing.T) {
	// Mid-range current page on a large total shows two-away neighbors.
	assert.Equal(t, []int{1, Ellipsis, 3, 4, 5, 6, 7, Ellipsis, 12}, Window(5, 12))

	// Totals in (7, 10] show only immediate neighbors.
	assert.Equal(t, []int{1, Ellipsis, 4, 5, 6, Ellipsis, 10}, Window(5, 10))

	// Current page at the edge keeps page 1 without a leading ellipsis.
	assert.Equal(t, []int{1, 2, Ellipsis, 8}, Window(1, 8))
}

func TestWindowClampsCurrent(t *testing.T) {
	assert.Equal(t, Window(12, 12), Window(99, 12))
	assert.Equal(t, Window(1, 12), Window(-5, 12))
}
