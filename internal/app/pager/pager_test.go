package pager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWindow(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		total      int
		maxVisible int
		expected   Window
	}{
		{name: "fewer pages than window", current: 2, total: 3, maxVisible: 5, expected: Window{Start: 1, End: 3}},
		{name: "centered", current: 6, total: 10, maxVisible: 5, expected: Window{Start: 4, End: 8}},
		{name: "pinned to first page", current: 1, total: 10, maxVisible: 5, expected: Window{Start: 1, End: 5}},
		{name: "pinned to last page", current: 10, total: 10, maxVisible: 5, expected: Window{Start: 6, End: 10}},
		{name: "near the end", current: 9, total: 10, maxVisible: 5, expected: Window{Start: 6, End: 10}},
		{name: "even window", current: 5, total: 10, maxVisible: 4, expected: Window{Start: 3, End: 6}},
		{name: "single page", current: 1, total: 1, maxVisible: 5, expected: Window{Start: 1, End: 1}},
		{name: "no pages", current: 1, total: 0, maxVisible: 5, expected: Window{Start: 1, End: 0}},
		{name: "negative total", current: 3, total: -2, maxVisible: 5, expected: Window{Start: 1, End: 0}},
		{name: "zero max visible", current: 4, total: 10, maxVisible: 0, expected: Window{Start: 4, End: 4}},
		{name: "current past end", current: 50, total: 10, maxVisible: 5, expected: Window{Start: 6, End: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewWindow(tt.current, tt.total, tt.maxVisible))
		})
	}
}

func TestNewWindow_Bounds(t *testing.T) {
	for total := 1; total <= 20; total++ {
		for maxVisible := 1; maxVisible <= 7; maxVisible++ {
			for current := 1; current <= total; current++ {
				w := NewWindow(current, total, maxVisible)
				require.GreaterOrEqual(t, w.Start, 1)
				require.LessOrEqual(t, w.Start, w.End)
				require.LessOrEqual(t, w.End, total)
				require.Equal(t, min(maxVisible, total), w.Len())
				require.True(t, w.Contains(current))
			}
		}
	}
}

func TestWindow_Pages(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Window{Start: 1, End: 3}.Pages())
	assert.Empty(t, Window{Start: 1, End: 0}.Pages())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 3))
	assert.Equal(t, 3, Clamp(7, 3))
	assert.Equal(t, 2, Clamp(2, 3))
	assert.Equal(t, 1, Clamp(5, 0))
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		size     int
		expected int
	}{
		{name: "37 artists by 15", n: 37, size: 15, expected: 3},
		{name: "exact multiple", n: 30, size: 15, expected: 2},
		{name: "empty", n: 0, size: 15, expected: 1},
		{name: "zero size", n: 4, size: 0, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TotalPages(tt.n, tt.size))
		})
	}
}

func TestPaginate(t *testing.T) {
	items := make([]int, 37)
	for i := range items {
		items[i] = i + 1
	}

	p := Paginate(items, 2, 15, 5)
	assert.Equal(t, 2, p.Number)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, Window{Start: 1, End: 3}, p.Window)
	assert.Equal(t, 16, p.Items[0])
	assert.Len(t, p.Items, 15)
	assert.True(t, p.HasPrev())
	assert.True(t, p.HasNext())
	assert.Equal(t, 15, p.Offset(15))

	last := Paginate(items, 99, 15, 5)
	assert.Equal(t, 3, last.Number)
	assert.Equal(t, []int{31, 32, 33, 34, 35, 36, 37}, last.Items)
	assert.False(t, last.HasNext())

	empty := Paginate([]string{}, 4, 30, 5)
	assert.Equal(t, 1, empty.Number)
	assert.Equal(t, 1, empty.TotalPages)
	assert.Empty(t, empty.Items)
	assert.False(t, empty.HasPrev())
}
